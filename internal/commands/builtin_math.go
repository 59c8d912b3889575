package commands

import (
	"fmt"

	"github.com/Bean-Pringles/Spoke/internal/value"
)

// mathHandler implements `math <left> <op> <right> [silent|loud] [outvar]`,
// grounded on Spoke-Shell/spoke.py's math branch. loud is the default
// Loud/Silent modifier when the mode token is omitted.
func mathHandler(tokens []string, api *HostAPI) bool {
	if len(tokens) < 4 || len(tokens) > 6 {
		return api.Fail("math requires 3 to 5 arguments")
	}

	if len(tokens) == 4 {
		tokens = append(append([]string{}, tokens...), "loud")
	}

	mode := tokens[4]
	if mode != "silent" && mode != "loud" {
		return api.Fail("math mode must be 'silent' or 'loud'")
	}

	left := api.GetVal(tokens[1])
	op := tokens[2]
	right := api.GetVal(tokens[3])

	result, err := value.Arith(left, op, right)
	if err != nil {
		return api.Fail(err.Error())
	}

	if mode == "loud" {
		fmt.Println(result.String())
	}

	if len(tokens) == 6 {
		api.Env.Set(tokens[5], result)
	}

	return true
}
