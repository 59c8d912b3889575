// Package condition evaluates the compound boolean expressions Spoke's
// if-chain and command modules use: `[not] L op R {and|or ...}` (spec §4.4).
package condition

import "github.com/Bean-Pringles/Spoke/internal/value"

// operators compatible with the ordering/equality operators of spec §4.4.
// "<=" and "=<" are synonyms, as are ">=" and "=>".
const (
	opEq    = "=="
	opNe    = "!="
	opLt    = "<<"
	opGt    = ">>"
	opLe    = "<="
	opLeAlt = "=<"
	opGe    = ">="
	opGeAlt = "=>"
)

// normalizeOp maps the synonym spellings onto their canonical form.
func normalizeOp(op string) (string, bool) {
	switch op {
	case opEq, opNe, opLt, opGt:
		return op, true
	case opLe, opLeAlt:
		return opLe, true
	case opGe, opGeAlt:
		return opGe, true
	default:
		return "", false
	}
}

// Compare evaluates `left op right` to a boolean using the semantics of
// spec §4.4: numeric operands compare numerically after promotion, mixed
// numeric/string comparison yields false for "==" and true for "!=", and
// any ordering operator applied across disjoint types reports ok=false so
// the caller can downgrade the term to false without aborting the chain.
func Compare(left value.Value, op string, right value.Value) (result bool, ok bool) {
	canonical, known := normalizeOp(op)
	if !known {
		return false, false
	}

	switch canonical {
	case opEq:
		return left.Equal(right), true
	case opNe:
		return !left.Equal(right), true
	case opLt:
		lt, ordOK := left.Less(right)
		return lt, ordOK
	case opGt:
		gt, ordOK := right.Less(left)
		return gt, ordOK
	case opLe:
		lt, ordOK := left.Less(right)
		if !ordOK {
			return false, false
		}
		return lt || left.Equal(right), true
	case opGe:
		gt, ordOK := right.Less(left)
		if !ordOK {
			return false, false
		}
		return gt || left.Equal(right), true
	}
	return false, false
}

// Evaluate walks tokens left to right as `term ((and|or) term)*`, where each
// term is `not? operand op operand`. Operands are resolved via lookup
// (value.GetVal). Associativity is strictly left-to-right with no
// precedence distinction between "and" and "or" — `A and B or C` groups as
// `((A and B) or C)` — this is spec §4.4's explicit, intentionally
// non-conventional rule, also covered by spec §8 property tests.
//
// A term whose comparison cannot be evaluated (ordering across disjoint
// types) degrades to false rather than aborting the whole expression, per
// spec §7's one exception to "errors are not recoverable".
func Evaluate(tokens []string, lookup value.Lookup) (bool, error) {
	if len(tokens) < 3 {
		return false, &SyntaxError{Tokens: tokens}
	}

	i := 0
	var result bool
	haveResult := false
	pendingOp := ""

	for i < len(tokens) {
		negate := false
		if tokens[i] == "not" {
			negate = true
			i++
		}

		if i+2 >= len(tokens) {
			return false, &SyntaxError{Tokens: tokens}
		}

		left := value.GetVal(tokens[i], lookup)
		op := tokens[i+1]
		right := value.GetVal(tokens[i+2], lookup)
		i += 3

		cond, ok := Compare(left, op, right)
		if !ok {
			cond = false
		}
		if negate {
			cond = !cond
		}

		if !haveResult {
			result = cond
			haveResult = true
		} else {
			switch pendingOp {
			case "and":
				result = result && cond
			case "or":
				result = result || cond
			}
		}

		if i < len(tokens) && (tokens[i] == "and" || tokens[i] == "or") {
			pendingOp = tokens[i]
			i++
		} else {
			break
		}
	}

	return result, nil
}

// SyntaxError reports a malformed condition token run.
type SyntaxError struct {
	Tokens []string
}

func (e *SyntaxError) Error() string {
	return "malformed condition"
}
