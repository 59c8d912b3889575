package interp

import (
	"strings"

	"github.com/Bean-Pringles/Spoke/internal/condition"
	"github.com/Bean-Pringles/Spoke/internal/lexer"
)

// branch is one arm of an if/else-if/else chain: either a guarded body
// (cond non-nil) or the trailing else body (isElse true).
type branch struct {
	cond   []string
	isElse bool
	body   []string
}

// execIfChain implements spec §4.6 using the block-collect-then-pick-first-
// true strategy: every branch's body is collected up front, then branches
// are evaluated in order and the first matching one (or a trailing else) is
// executed, with the rest never evaluated or run (spec §8 property 5).
func (in *Interpreter) execIfChain(lines []string, startIdx, lineOffset int) (int, error) {
	headerNum := lineOffset + startIdx + 1
	headerLine := strings.TrimSpace(lines[startIdx])
	headerTokens := lexer.Lex(headerLine)

	cond, ok := conditionTokens(headerTokens, 0)
	if !ok {
		return startIdx, in.syntaxErr(headerNum, headerLine, "malformed if condition")
	}

	branches := []branch{{cond: cond}}

	idx := startIdx + 1
	for {
		body, boundary, next := collectBranchBody(lines, idx)
		branches[len(branches)-1].body = body
		idx = next

		bTokens := lexer.Lex(boundary)
		switch {
		case len(bTokens) == 1 && bTokens[0] == "}":
			return idx, in.evaluateBranches(branches, headerNum, headerLine, lineOffset)

		case len(bTokens) >= 3 && bTokens[0] == "}" && bTokens[1] == "else" && bTokens[2] == "if":
			nextCond, ok := conditionTokens(bTokens, 2)
			if !ok {
				return idx, in.syntaxErr(lineOffset+idx, boundary, "malformed else-if condition")
			}
			branches = append(branches, branch{cond: nextCond})

		case len(bTokens) >= 2 && bTokens[0] == "}" && bTokens[1] == "else":
			branches = append(branches, branch{isElse: true})

		default:
			return idx, in.syntaxErr(lineOffset+idx, boundary, "malformed if-chain")
		}
	}
}

func (in *Interpreter) evaluateBranches(branches []branch, headerNum int, headerLine string, lineOffset int) error {
	for _, b := range branches {
		if b.isElse {
			return in.ExecuteLines(b.body, lineOffset)
		}
		matched, err := condition.Evaluate(b.cond, in.Env.Lookup())
		if err != nil {
			return in.syntaxErr(headerNum, headerLine, err.Error())
		}
		if matched {
			return in.ExecuteLines(b.body, lineOffset)
		}
	}
	return nil
}

// conditionTokens expects tokens[ifIdx] == "if" and returns the tokens
// between its parentheses, requiring a "then" to immediately follow the
// closing paren.
func conditionTokens(tokens []string, ifIdx int) ([]string, bool) {
	if ifIdx >= len(tokens) || tokens[ifIdx] != "if" {
		return nil, false
	}
	rest := tokens[ifIdx:]
	open, close, ok := findParens(rest)
	if !ok {
		return nil, false
	}
	if close+1 >= len(rest) || rest[close+1] != "then" {
		return nil, false
	}
	return rest[open+1 : close], true
}

// collectBranchBody accumulates lines starting at idx until it finds a line
// beginning with "}" at brace depth 1 — the boundary between one branch and
// the next ("}", "} else {" or "} else if (...) then {"). That boundary
// line is not part of body; it is returned separately as boundary, and next
// is the index just past it, matching block.Collect's convention.
func collectBranchBody(lines []string, idx int) (body []string, boundary string, next int) {
	depth := 1
	for idx < len(lines) {
		line := strings.TrimSpace(lines[idx])
		if depth == 1 && strings.HasPrefix(line, "}") {
			return body, line, idx + 1
		}
		depth += strings.Count(line, "{") - strings.Count(line, "}")
		if line != "" {
			body = append(body, line)
		}
		idx++
	}
	return body, "", idx
}
