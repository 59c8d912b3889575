// Package commands implements the external command dispatcher of spec §4.7:
// verb resolution, the host API shim handed to every handler, and the
// built-in verbs spec §4.8 permits moving out of the control-flow executor
// (everything except function, if, let and print).
package commands

import (
	"github.com/Bean-Pringles/Spoke/internal/runtime"
	"github.com/Bean-Pringles/Spoke/internal/value"
)

// Handler is the Go realization of spec §4.7's run() contract:
//
//	run(tokens, variables, functions, get_val, error_line, line_num, line) -> truthy/falsy
//
// tokens is the full token list for the line, including the verb as
// tokens[0]. api bundles the remaining six positional arguments into one
// struct-of-callbacks, per Design Notes §9 ("Host-API aggregation"). A
// falsy (false) return triggers the line-level error the executor (package
// interp) builds from api's recorded failure message, if any.
type Handler func(tokens []string, api *HostAPI) bool

// HostAPI is the stable host surface every command handler receives: the
// shared mutable environment, the (by-convention read-only) function table,
// the §4.2 coercion function, a line-position pair for diagnostics, and a
// Fail callback a handler uses instead of constructing its own error.
//
// Fail does not terminate the process itself — unlike the original
// interpreter's error_line, which calls the host language's process exit
// directly from inside a command module, Fail only records a message. The
// executor (package interp) is the single place that turns a failed line
// into an error that ends the run (the CLI then exits), so every lower layer
// stays a plain function
// returning a value, matching Go's explicit-error-return idiom rather than
// burying os.Exit calls inside library code.
type HostAPI struct {
	Env       *runtime.Environment
	Functions *runtime.FunctionTable
	LineNum   int
	Line      string

	failMessage string
}

// GetVal resolves token via spec §4.2's coercion rules, using Env for
// variable lookup.
func (a *HostAPI) GetVal(token string) value.Value {
	return value.GetVal(token, a.Env.Lookup())
}

// Fail records message as the reason this line failed and returns false, so
// a handler can write `return api.Fail("wrong argument count")`.
func (a *HostAPI) Fail(message string) bool {
	a.failMessage = message
	return false
}

// FailMessage returns the message passed to Fail, or "" if Fail was never
// called (e.g. the handler just returned false with no detail).
func (a *HostAPI) FailMessage() string {
	return a.failMessage
}
