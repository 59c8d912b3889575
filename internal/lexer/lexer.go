// Package lexer tokenizes a single Spoke source line into an ordered token
// stream. The lexer is a pure function of its input: the same line always
// yields the same tokens, and there is no cross-line state.
package lexer

import "regexp"

// tokenPattern is the single compiled alternation that drives tokenization.
// Alternatives are tried in order for each match, so longer operators must
// precede their single-character prefixes (e.g. "<<" before "<").
var tokenPattern = regexp.MustCompile(
	`"[^"]*"` + // double-quoted string
		`|'[^']*'` + // single-quoted string
		`|-?\d+\.?\d*` + // optionally-signed integer or float literal
		`|<<|>>|<=|>=|==|!=|=<|=>` + // two-character operators
		`|\w+` + // identifier (also matches bare digit runs, handled above first)
		`|[=+*/()%<>{}:!@#$^&-]`, // single punctuation
)

// Lex splits line into tokens using the grammar of spec §4.1. Unmatched
// characters (anything the alternation skips over, such as stray quote
// characters that never close) are simply absent from the result. Lex(s)
// always returns the same slice for the same s.
func Lex(line string) []string {
	matches := tokenPattern.FindAllString(line, -1)
	if matches == nil {
		return []string{}
	}
	return matches
}
