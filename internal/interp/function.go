package interp

import (
	"github.com/Bean-Pringles/Spoke/internal/runtime"
	"github.com/Bean-Pringles/Spoke/internal/value"
)

// callFunction implements spec §4.5's user-defined-function-call branch: it
// resolves arguments, saves and rebinds each parameter, executes the body,
// then restores every parameter name to its pre-call binding — removing it
// if it did not previously exist (spec §3 Invariants, verified by spec §8
// property 6).
func (in *Interpreter) callFunction(name string, tokens []string, lineOffset, lineNum int, line string) error {
	fn, _ := in.Functions.Lookup(name)

	_, parenEnd, ok := findParens(tokens)
	if !ok {
		return in.syntaxErr(lineNum, line, "malformed call to '"+name+"'")
	}

	var args []value.Value
	for j := 2; j < parenEnd; j++ {
		if tokens[j] != "," {
			args = append(args, value.GetVal(tokens[j], in.Env.Lookup()))
		}
	}

	if len(args) != len(fn.Params) {
		return in.syntaxErr(lineNum, line, "argument count does not match parameter count for '"+name+"'")
	}

	snapshots := make([]runtime.Snapshot, len(fn.Params))
	for idx, param := range fn.Params {
		snapshots[idx] = in.Env.Save(param)
		in.Env.Set(param, args[idx])
	}

	defer func() {
		for _, s := range snapshots {
			in.Env.Restore(s)
		}
	}()

	return in.ExecuteLines(fn.Body, lineOffset)
}
