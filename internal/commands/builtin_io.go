package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/Bean-Pringles/Spoke/internal/value"
)

var stdinReader = bufio.NewReader(os.Stdin)

// pauseHandler implements `pause [loud|silent] [prompt]`, grounded on
// Spoke-Shell/spoke.py's pause branch. silent is the default Loud/Silent
// modifier (spec glossary).
func pauseHandler(tokens []string, api *HostAPI) bool {
	args := tokens[1:]
	if len(args) == 0 {
		args = []string{"silent"}
	}

	switch len(args) {
	case 1:
		if args[0] == "loud" {
			fmt.Print("Press Enter to continue")
		} else if args[0] != "silent" {
			return api.Fail("invalid argument to pause")
		}
	case 2:
		if args[0] != "loud" {
			return api.Fail("invalid argument to pause")
		}
		fmt.Print(args[1])
	default:
		return api.Fail("invalid argument(s) to pause")
	}

	_, _ = stdinReader.ReadString('\n')
	return true
}

// sleepHandler implements `sleep <seconds>`.
func sleepHandler(tokens []string, api *HostAPI) bool {
	if len(tokens) != 2 {
		return api.Fail("sleep requires exactly one argument")
	}
	n := api.GetVal(tokens[1])
	if n.Kind != value.KindInt {
		return api.Fail("sleep requires an integer argument")
	}
	sleepSeconds(n.Int)
	return true
}

// countdownHandler implements `countdown <seconds> [message]`.
func countdownHandler(tokens []string, api *HostAPI) bool {
	if len(tokens) != 2 && len(tokens) != 3 {
		return api.Fail("countdown requires 1 or 2 arguments")
	}
	n := api.GetVal(tokens[1])
	if n.Kind != value.KindInt || n.Int < 0 {
		return api.Fail("countdown requires a non-negative integer argument")
	}

	for remaining := n.Int; remaining > 0; remaining-- {
		fmt.Println(remaining)
		sleepSeconds(1)
	}

	if len(tokens) == 3 {
		fmt.Println(tokens[2])
	}
	return true
}

// inputHandler implements `input <var> [prompt...]`, restoring
// Spoke-Shell/spoke.py's int-coercion fallback (spec.md §4.2 notes input is
// the one verb allowed to turn a string into a number implicitly).
func inputHandler(tokens []string, api *HostAPI) bool {
	if len(tokens) < 2 {
		return api.Fail("input requires a variable name")
	}

	varName := tokens[1]
	prompt := "? "
	if len(tokens) >= 3 {
		prompt = strings.Join(tokens[2:], "") + " "
	}

	fmt.Print(prompt)
	line, _ := stdinReader.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")

	api.Env.Set(varName, value.ParseInputLine(line))
	return true
}
