// Package interp implements the control-flow executor of spec §4.5: it
// walks a line list, drives function definition/invocation and the
// if/else-if/else chain inline (spec §4.8 requires function, if, let and
// print to live here), and delegates every other verb to package commands.
package interp

import (
	"fmt"
	"io"

	"github.com/Bean-Pringles/Spoke/internal/commands"
	"github.com/Bean-Pringles/Spoke/internal/errors"
	"github.com/Bean-Pringles/Spoke/internal/runtime"
)

// Interpreter holds the process-global state a Spoke program runs against:
// the shared environment and function table (package runtime), the
// external command dispatcher (package commands), and the output stream
// `print` writes to.
type Interpreter struct {
	Env        *runtime.Environment
	Functions  *runtime.FunctionTable
	Dispatcher *commands.Dispatcher
	out        io.Writer

	// currentLine/currentLineNum track the line being processed so a
	// recovered panic (spec §7's Internal error kind) can still report a
	// position.
	currentLine    string
	currentLineNum int
}

// New creates an interpreter with an empty environment and function table,
// writing `print` output to out and resolving external verbs against
// commandsDir.
func New(out io.Writer, commandsDir string) *Interpreter {
	return &Interpreter{
		Env:        runtime.NewEnvironment(),
		Functions:  runtime.NewFunctionTable(),
		Dispatcher: commands.NewDispatcher(commandsDir),
		out:        out,
	}
}

// Run executes an entire program's line list from the top, converting any
// unexpected panic inside the executor into spec §7's Internal error kind
// instead of crashing the process uncontrolled.
func (in *Interpreter) Run(lines []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New(errors.KindInternal, in.currentLineNum, in.currentLine, fmt.Sprintf("%v", r))
		}
	}()

	return in.ExecuteLines(lines, 0)
}

func (in *Interpreter) hostAPI(lineNum int, line string) *commands.HostAPI {
	return &commands.HostAPI{
		Env:       in.Env,
		Functions: in.Functions,
		LineNum:   lineNum,
		Line:      line,
	}
}

func (in *Interpreter) syntaxErr(lineNum int, line, message string) error {
	return errors.New(errors.KindSyntax, lineNum, line, message)
}

func (in *Interpreter) runtimeErr(lineNum int, line, message string) error {
	return errors.New(errors.KindRuntime, lineNum, line, message)
}

func (in *Interpreter) handlerErr(lineNum int, line string, api *commands.HostAPI) error {
	message := api.FailMessage()
	if message == "" {
		message = "command reported failure"
	}
	return errors.New(errors.KindHandler, lineNum, line, message)
}
