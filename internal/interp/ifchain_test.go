package interp

import (
	"reflect"
	"testing"

	"github.com/Bean-Pringles/Spoke/internal/lexer"
)

func TestConditionTokensExtractsBetweenParens(t *testing.T) {
	tokens := lexer.Lex(`if ( x == 5 ) then {`)
	cond, ok := conditionTokens(tokens, 0)
	if !ok {
		t.Fatal("expected condition to parse")
	}
	want := []string{"x", "==", "5"}
	if !reflect.DeepEqual(cond, want) {
		t.Fatalf("expected %v, got %v", want, cond)
	}
}

func TestConditionTokensRequiresThen(t *testing.T) {
	tokens := lexer.Lex(`if ( x == 5 ) {`)
	if _, ok := conditionTokens(tokens, 0); ok {
		t.Fatal("expected missing 'then' to fail parsing")
	}
}

func TestConditionTokensAtOffsetForElseIf(t *testing.T) {
	tokens := lexer.Lex(`} else if ( y != 2 ) then {`)
	cond, ok := conditionTokens(tokens, 2)
	if !ok {
		t.Fatal("expected else-if condition to parse")
	}
	want := []string{"y", "!=", "2"}
	if !reflect.DeepEqual(cond, want) {
		t.Fatalf("expected %v, got %v", want, cond)
	}
}

func TestCollectBranchBodyStopsAtBoundary(t *testing.T) {
	lines := []string{
		`print "a"`,
		`print "b"`,
		`} else {`,
		`print "c"`,
		`}`,
	}
	body, boundary, next := collectBranchBody(lines, 0)
	if len(body) != 2 || body[0] != `print "a"` || body[1] != `print "b"` {
		t.Fatalf("unexpected body: %v", body)
	}
	if boundary != "} else {" {
		t.Fatalf("expected boundary '} else {', got %q", boundary)
	}
	if next != 3 {
		t.Fatalf("expected next=3, got %d", next)
	}
}

func TestCollectBranchBodySkipsBlankLines(t *testing.T) {
	lines := []string{
		`print "a"`,
		``,
		`}`,
	}
	body, boundary, _ := collectBranchBody(lines, 0)
	if len(body) != 1 {
		t.Fatalf("expected blank line skipped, got body %v", body)
	}
	if boundary != "}" {
		t.Fatalf("expected boundary '}', got %q", boundary)
	}
}
