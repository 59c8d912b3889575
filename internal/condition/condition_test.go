package condition

import (
	"testing"

	"github.com/Bean-Pringles/Spoke/internal/value"
)

func noLookup(string) (value.Value, bool) { return value.Value{}, false }

func TestEvaluateSimpleTerm(t *testing.T) {
	ok, err := Evaluate([]string{"1", "==", "1"}, noLookup)
	if err != nil || !ok {
		t.Fatalf("expected true, got %v err=%v", ok, err)
	}

	ok, err = Evaluate([]string{"1", ">>", "2"}, noLookup)
	if err != nil || ok {
		t.Fatalf("expected false, got %v err=%v", ok, err)
	}
}

func TestEvaluateNotPrefix(t *testing.T) {
	ok, err := Evaluate([]string{"not", "1", "==", "2"}, noLookup)
	if err != nil || !ok {
		t.Fatalf("expected true (not false), got %v err=%v", ok, err)
	}
}

func TestEvaluateLeftToRightNoPrecedence(t *testing.T) {
	// A and B or C groups as ((A and B) or C).
	// A=false, B=true, C=true -> (false and true) or true = true
	tokens := []string{
		"1", "==", "2", "and",
		"1", "==", "1", "or",
		"1", "==", "1",
	}
	ok, err := Evaluate(tokens, noLookup)
	if err != nil || !ok {
		t.Fatalf("expected true, got %v err=%v", ok, err)
	}

	// "A and B or C" groups the same way under conventional precedence, so
	// use "A or B and C", where the two readings differ:
	// A=true, B=false, C=false.
	// Conventional: true or (false and false) = true.
	// Left-to-right: (true or false) and false = false.
	tokens = []string{
		"1", "==", "1", "or",
		"1", "==", "2", "and",
		"1", "==", "2",
	}
	ok, err = Evaluate(tokens, noLookup)
	if err != nil || ok {
		t.Fatalf("expected left-to-right grouping to yield false, got %v err=%v", ok, err)
	}
}

func TestSynonymOperators(t *testing.T) {
	le1, _ := Compare(value.Int64(1), "<=", value.Int64(2))
	le2, _ := Compare(value.Int64(1), "=<", value.Int64(2))
	if le1 != le2 {
		t.Fatalf("<= and =< must agree: %v vs %v", le1, le2)
	}

	ge1, _ := Compare(value.Int64(2), ">=", value.Int64(1))
	ge2, _ := Compare(value.Int64(2), "=>", value.Int64(1))
	if ge1 != ge2 {
		t.Fatalf(">= and => must agree: %v vs %v", ge1, ge2)
	}
}

func TestOrderingAcrossDisjointTypesDegradesToFalse(t *testing.T) {
	ok, err := Evaluate([]string{"1", "!=", `"a"`}, noLookup)
	if err != nil || !ok {
		t.Fatalf("!= across disjoint types should be true, got %v err=%v", ok, err)
	}

	ok, err = Evaluate([]string{"1", "==", `"a"`}, noLookup)
	if err != nil || ok {
		t.Fatalf("== across disjoint types should be false, got %v err=%v", ok, err)
	}

	// ordering across disjoint types degrades the term to false but does not
	// abort the chain — the "or" branch should still be able to rescue it.
	ok, err = Evaluate([]string{"1", "<<", `"a"`, "or", "1", "==", "1"}, noLookup)
	if err != nil || !ok {
		t.Fatalf("expected chain to continue past degraded term, got %v err=%v", ok, err)
	}
}
