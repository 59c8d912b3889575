package commands

import (
	"fmt"
	"math/rand/v2"

	"github.com/Bean-Pringles/Spoke/internal/value"
)

// randomHandler implements `random ( low , high ) var [loud|silent]`,
// grounded on original_source/Interpreter/commands/random.py's standalone
// module form. The lexer emits no "," token, so commas are optional here and
// ignored when present.
func randomHandler(tokens []string, api *HostAPI) bool {
	args := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok != "," {
			args = append(args, tok)
		}
	}
	tokens = args

	if len(tokens) < 6 {
		return api.Fail("random requires '( low , high ) var'")
	}
	if tokens[1] != "(" || tokens[4] != ")" {
		return api.Fail("random requires '( low , high ) var'")
	}

	low := api.GetVal(tokens[2])
	high := api.GetVal(tokens[3])
	if low.Kind != value.KindInt || high.Kind != value.KindInt {
		return api.Fail("random range values must be integers")
	}
	if low.Int > high.Int {
		return api.Fail("random range is empty")
	}

	varName := tokens[5]
	n := low.Int + rand.Int64N(high.Int-low.Int+1)
	api.Env.Set(varName, value.Int64(n))

	mode := "silent"
	if len(tokens) >= 7 {
		mode = tokens[6]
	}
	if mode == "loud" {
		fmt.Println(n)
	}
	return true
}

// shuffleHandler implements `shuffle <var> [loud|silent] [outvar]`,
// grounded on original_source/Interpreter/commands/shuffle.py: it shuffles
// the character sequence of a variable's string form.
func shuffleHandler(tokens []string, api *HostAPI) bool {
	if len(tokens) < 2 || len(tokens) > 4 {
		return api.Fail("invalid argument(s) to shuffle")
	}

	v, ok := api.Env.Get(tokens[1])
	if !ok {
		return api.Fail("variable not found: " + tokens[1])
	}

	chars := []rune(v.String())
	rand.Shuffle(len(chars), func(i, j int) { chars[i], chars[j] = chars[j], chars[i] })
	shuffled := string(chars)

	mode := "silent"
	if len(tokens) >= 3 {
		mode = tokens[2]
	}
	switch mode {
	case "loud":
		fmt.Println(shuffled)
	case "silent":
	default:
		return api.Fail("invalid argument to shuffle")
	}

	if len(tokens) == 4 {
		api.Env.Set(tokens[3], value.String(shuffled))
	}
	return true
}
