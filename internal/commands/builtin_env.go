package commands

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/Bean-Pringles/Spoke/internal/value"
)

// clearHandler implements `clear`, shelling out to the platform's screen
// clear command, matching Spoke-Shell/spoke.py's clear branch.
func clearHandler(tokens []string, api *HostAPI) bool {
	if len(tokens) != 1 {
		return api.Fail("clear takes no arguments")
	}

	var c *exec.Cmd
	if runtime.GOOS == "windows" {
		c = exec.Command("cmd", "/c", "cls")
	} else {
		c = exec.Command("clear")
	}
	c.Stdout = os.Stdout
	_ = c.Run()
	return true
}

// quitHandler implements `quit [loud|silent]`. Unlike every other handler,
// quit is specified to terminate the process immediately (spec §5
// Cancellation) rather than returning a truthy/falsy outcome for the
// executor to interpret — so it calls os.Exit itself, the one deliberate
// exception to Fail-based error reporting in this package.
func quitHandler(tokens []string, api *HostAPI) bool {
	switch len(tokens) {
	case 1:
	case 2:
		switch tokens[1] {
		case "loud":
			fmt.Println("Quitting...")
			fmt.Println("Quit Succsessful")
		case "silent":
		default:
			fmt.Println("Unknown Quit Arguement, Fatal Error")
		}
	default:
		return api.Fail("quit takes at most one argument")
	}

	os.Exit(0)
	return true
}

// deleteHandler implements `delete <var>`.
func deleteHandler(tokens []string, api *HostAPI) bool {
	if len(tokens) != 2 {
		return api.Fail("delete requires exactly one argument")
	}
	if !api.Env.Has(tokens[1]) {
		return api.Fail("variable not found: " + tokens[1])
	}
	api.Env.Delete(tokens[1])
	return true
}

// toggleHandler implements `toggle <var>`, flipping a 0/1 integer or a
// "true"/"false" string, matching Spoke-Shell/spoke.py's toggle branch.
func toggleHandler(tokens []string, api *HostAPI) bool {
	if len(tokens) != 2 {
		return api.Fail("toggle requires exactly one argument")
	}

	v, ok := api.Env.Get(tokens[1])
	if !ok {
		return api.Fail("variable not found: " + tokens[1])
	}

	switch {
	case v.Kind == value.KindInt && (v.Int == 0 || v.Int == 1):
		api.Env.Set(tokens[1], value.Int64(1-v.Int))
	case v.Kind == value.KindString && v.Str == "true":
		api.Env.Set(tokens[1], value.String("false"))
	case v.Kind == value.KindString && v.Str == "false":
		api.Env.Set(tokens[1], value.String("true"))
	default:
		return api.Fail("variable cannot be toggled: " + tokens[1])
	}
	return true
}

// swapHandler implements `swap <varA> <varB>`.
func swapHandler(tokens []string, api *HostAPI) bool {
	if len(tokens) != 3 {
		return api.Fail("swap requires exactly two arguments")
	}

	a, aok := api.Env.Get(tokens[1])
	b, bok := api.Env.Get(tokens[2])
	if !aok || !bok {
		return api.Fail("variables don't exist")
	}

	api.Env.Set(tokens[1], b)
	api.Env.Set(tokens[2], a)
	return true
}

// compareHandler implements `compare <varA> <varB> [verbose]`, matching
// Spoke-Shell/spoke.py's compare branch. A disjoint-type comparison (e.g.
// int vs. string) cannot be ordered, so it is reported as a handler error
// rather than silently picking a direction.
func compareHandler(tokens []string, api *HostAPI) bool {
	if len(tokens) != 3 && len(tokens) != 4 {
		return api.Fail("wrong number of arguments to compare")
	}

	a, aok := api.Env.Get(tokens[1])
	b, bok := api.Env.Get(tokens[2])
	if !aok || !bok {
		return api.Fail("variables don't exist")
	}

	verbose := len(tokens) == 4

	if a.Equal(b) {
		printCompareResult(verbose, tokens[1], tokens[2], "Equal", "is Equal to")
		return true
	}

	lt, ok := a.Less(b)
	if !ok {
		return api.Fail("cannot order variables of different types")
	}
	if lt {
		printCompareResult(verbose, tokens[1], tokens[2], "Less than", "is Less than")
	} else {
		printCompareResult(verbose, tokens[1], tokens[2], "Greater Than", "is Greater than")
	}
	return true
}

func printCompareResult(verbose bool, left, right, short, long string) {
	if verbose {
		fmt.Println(left + " " + long + " " + right)
		return
	}
	fmt.Println(short)
}

// lengthHandler implements `length <var> <loud|silent> [outvar]`, matching
// Spoke-Shell/spoke.py's length branch: the mode token gates printing, the
// optional 4th token always receives the computed length.
func lengthHandler(tokens []string, api *HostAPI) bool {
	if len(tokens) != 3 && len(tokens) != 4 {
		return api.Fail("invalid argument(s) to length")
	}

	v, ok := api.Env.Get(tokens[1])
	if !ok {
		return api.Fail("variable not found: " + tokens[1])
	}

	length := int64(len([]rune(v.String())))

	if tokens[2] == "loud" {
		fmt.Println(length)
	}

	if len(tokens) == 4 {
		api.Env.Set(tokens[3], value.Int64(length))
	}
	return true
}
