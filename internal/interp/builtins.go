package interp

import (
	"fmt"
	"strings"

	"github.com/Bean-Pringles/Spoke/internal/value"
)

// execLet implements spec §4.8's `let` forms: a plain assignment
// `let NAME = EXPR` or an arithmetic assignment `let NAME = L OP R`, the
// latter evaluated via value.Arith.
func (in *Interpreter) execLet(tokens []string, lineNum int, line string) error {
	if len(tokens) < 4 || tokens[2] != "=" {
		return in.syntaxErr(lineNum, line, "malformed let statement")
	}
	name := tokens[1]

	switch len(tokens) {
	case 4:
		in.Env.Set(name, value.GetVal(tokens[3], in.Env.Lookup()))
		return nil

	case 6:
		left := value.GetVal(tokens[3], in.Env.Lookup())
		right := value.GetVal(tokens[5], in.Env.Lookup())
		result, err := value.Arith(left, tokens[4], right)
		if err != nil {
			return in.runtimeErr(lineNum, line, err.Error())
		}
		in.Env.Set(name, result)
		return nil

	default:
		return in.syntaxErr(lineNum, line, "malformed let statement")
	}
}

// execPrint implements spec §4.8's `print` forms: a parenthesized,
// free-form token sequence printed space-separated with quotes stripped, or
// a bare operand: a variable name, a quoted string or a number. A bare name
// that is not bound is a runtime error. The parenthesized form treats its contents as
// literals — tokens are never resolved against the environment, matching
// original_source/Spoke-Shell/spoke.py's print branch ("Don't process
// variables in parentheses - treat as literals").
func (in *Interpreter) execPrint(tokens []string, lineNum int, line string) error {
	if len(tokens) < 2 {
		return in.syntaxErr(lineNum, line, "print requires an argument")
	}

	if tokens[1] == "(" {
		_, close, ok := findParens(tokens)
		if !ok {
			return in.syntaxErr(lineNum, line, "unbalanced parentheses in print")
		}
		parts := make([]string, 0, close-2)
		for j := 2; j < close; j++ {
			parts = append(parts, stripQuotes(tokens[j]))
		}
		fmt.Fprintln(in.out, strings.Join(parts, " "))
		return nil
	}

	v := value.GetVal(tokens[1], in.Env.Lookup())
	if v.Kind == value.KindString && v.Str == tokens[1] && !in.Env.Has(tokens[1]) {
		return in.runtimeErr(lineNum, line, "variable not found: "+tokens[1])
	}
	fmt.Fprintln(in.out, v.String())
	return nil
}

// stripQuotes removes a single matching pair of surrounding double or single
// quotes, leaving every other token exactly as written.
func stripQuotes(token string) string {
	if len(token) >= 2 {
		if (strings.HasPrefix(token, `"`) && strings.HasSuffix(token, `"`)) ||
			(strings.HasPrefix(token, "'") && strings.HasSuffix(token, "'")) {
			return token[1 : len(token)-1]
		}
	}
	return token
}
