// Package block implements the brace-balance scanner used to delimit a
// Spoke `{ ... }` body (spec §4.3).
package block

import "strings"

// Collect scans lines starting at startIdx for the first `{`, then
// accumulates lines until the brace counter it opened returns to zero. The
// returned body excludes the line that drives the counter back to zero, and
// next is the index of the line following the closing brace.
//
// If no `{` is found at or after startIdx, Collect returns an empty body and
// startIdx unchanged — the caller treats that as a syntax error.
func Collect(lines []string, startIdx int) (body []string, next int) {
	idx := startIdx
	braceCount := 0
	foundOpening := false

	for idx < len(lines) {
		line := strings.TrimSpace(lines[idx])
		if strings.Contains(line, "{") {
			braceCount = 1
			foundOpening = true
			idx++
			break
		}
		idx++
	}

	if !foundOpening {
		return []string{}, startIdx
	}

	for idx < len(lines) && braceCount > 0 {
		line := strings.TrimSpace(lines[idx])

		braceCount += strings.Count(line, "{") - strings.Count(line, "}")

		if line != "" && braceCount > 0 {
			body = append(body, line)
		}

		idx++
	}

	if body == nil {
		body = []string{}
	}

	return body, idx
}
