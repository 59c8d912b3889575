package interp

import (
	"strings"

	"github.com/Bean-Pringles/Spoke/internal/block"
	"github.com/Bean-Pringles/Spoke/internal/lexer"
	"github.com/Bean-Pringles/Spoke/internal/runtime"
)

// ExecuteLines walks lines, dispatching each one per spec §4.5. lineOffset
// is added to the 1-based index within lines to compute the absolute source
// line number used in diagnostics, so a recursive call (function body,
// if-chain branch) still reports positions relative to the original file.
func (in *Interpreter) ExecuteLines(lines []string, lineOffset int) error {
	i := 0
	for i < len(lines) {
		raw := lines[i]
		line := strings.TrimSpace(raw)
		actualLineNum := lineOffset + i + 1

		in.currentLine = line
		in.currentLineNum = actualLineNum

		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "@") {
			i++
			continue
		}
		if strings.HasPrefix(line, "} else") {
			i++
			continue
		}

		tokens := lexer.Lex(line)
		if len(tokens) == 0 {
			i++
			continue
		}
		verb := tokens[0]

		switch {
		case verb == "function" && len(tokens) >= 4 && tokens[2] == "(" && containsToken(tokens, ")") && strings.Contains(line, "{"):
			next, err := in.defineFunction(tokens, lines, i, actualLineNum, line)
			if err != nil {
				return err
			}
			i = next

		case in.Functions.Has(verb) && len(tokens) >= 3 && tokens[1] == "(":
			if err := in.callFunction(verb, tokens, lineOffset, actualLineNum, line); err != nil {
				return err
			}
			i++

		case verb == "if" && containsToken(tokens, "then") && strings.Contains(line, "{"):
			next, err := in.execIfChain(lines, i, lineOffset)
			if err != nil {
				return err
			}
			i = next

		case line == "}":
			i++

		case verb == "let":
			if err := in.execLet(tokens, actualLineNum, line); err != nil {
				return err
			}
			i++

		case verb == "print":
			if err := in.execPrint(tokens, actualLineNum, line); err != nil {
				return err
			}
			i++

		default:
			api := in.hostAPI(actualLineNum, line)
			ok, found := in.Dispatcher.Invoke(verb, tokens, api)
			if !found {
				return in.syntaxErr(actualLineNum, line, "unresolved verb '"+verb+"'")
			}
			if !ok {
				return in.handlerErr(actualLineNum, line, api)
			}
			i++
		}
	}
	return nil
}

func (in *Interpreter) defineFunction(tokens []string, lines []string, idx, lineNum int, line string) (int, error) {
	parenStart, parenEnd, ok := findParens(tokens)
	if !ok {
		return idx, in.syntaxErr(lineNum, line, "malformed function definition")
	}

	var params []string
	for j := parenStart + 1; j < parenEnd; j++ {
		if tokens[j] != "," {
			params = append(params, tokens[j])
		}
	}

	body, next := block.Collect(lines, idx)
	in.Functions.Define(tokens[1], runtime.Function{Params: params, Body: body})
	return next, nil
}

// containsToken reports whether needle appears among tokens.
func containsToken(tokens []string, needle string) bool {
	for _, t := range tokens {
		if t == needle {
			return true
		}
	}
	return false
}

// indexOfToken returns the first index of needle in tokens, or -1.
func indexOfToken(tokens []string, needle string) int {
	for i, t := range tokens {
		if t == needle {
			return i
		}
	}
	return -1
}

// findParens returns the index of the first "(" and the first ")" that
// follows it.
func findParens(tokens []string) (open, close int, ok bool) {
	open = indexOfToken(tokens, "(")
	if open < 0 {
		return 0, 0, false
	}
	for j := open + 1; j < len(tokens); j++ {
		if tokens[j] == ")" {
			return open, j, true
		}
	}
	return 0, 0, false
}
