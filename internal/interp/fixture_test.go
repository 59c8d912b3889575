package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestSpokeFixtures runs representative Spoke programs end to end and
// snapshots their stdout, the same go-snaps harness the teacher project
// uses for its language fixture suite, scaled down to Spoke's much smaller
// surface (no on-disk fixture corpus, so the programs live inline).
func TestSpokeFixtures(t *testing.T) {
	fixtures := []struct {
		name string
		src  string
	}{
		{
			name: "arithmetic_and_print",
			src: `let a = 4
let b = 3
let sum = a + b
print sum`,
		},
		{
			name: "print_parentheses_are_literal",
			src: `let sum = 5
print ( "sum is" sum )`,
		},
		{
			name: "if_else_chain",
			src: `let score = 72
if ( score >= 90 ) then {
print "A"
} else if ( score >= 70 ) then {
print "B"
} else {
print "C"
}`,
		},
		{
			name: "function_with_restored_scope",
			src: `let total = 0
function add ( total , amount ) {
let total = total + amount
print total
}
add ( 10 , 5 )
print total`,
		},
		{
			name: "string_concatenation",
			src: `let greeting = "hello"
let name = "world"
let message = greeting + name
print message`,
		},
		{
			name: "boolean_left_to_right",
			src: `let x = 5
if ( x == 1 and x == 5 or x == 5 ) then {
print "matched"
} else {
print "no match"
}`,
		},
		{
			name: "external_command_delegation",
			src: `let flag = 0
toggle flag
print flag
delete flag`,
		},
	}

	for _, fx := range fixtures {
		t.Run(fx.name, func(t *testing.T) {
			var out bytes.Buffer
			in := New(&out, t.TempDir())
			err := in.Run(strings.Split(fx.src, "\n"))
			if err != nil {
				t.Fatalf("unexpected error running %s: %v", fx.name, err)
			}
			snaps.MatchSnapshot(t, out.String())
		})
	}
}
