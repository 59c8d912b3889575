package commands

// staticBuiltins returns the compiled-in verb table: every verb spec §4.8
// permits moving out of the control-flow executor (everything except
// function, if, let and print, which live in package interp). Each entry is
// grounded on the corresponding branch of
// original_source/Spoke-Shell/spoke.py's execute_lines, or — for random and
// shuffle — their standalone module form under
// original_source/Interpreter/commands/.
func staticBuiltins() map[string]Handler {
	return map[string]Handler{
		"pause":     pauseHandler,
		"sleep":     sleepHandler,
		"countdown": countdownHandler,
		"clear":     clearHandler,
		"quit":      quitHandler,
		"delete":    deleteHandler,
		"toggle":    toggleHandler,
		"swap":      swapHandler,
		"compare":   compareHandler,
		"length":    lengthHandler,
		"shuffle":   shuffleHandler,
		"random":    randomHandler,
		"time":      timeHandler,
		"math":      mathHandler,
		"input":     inputHandler,
	}
}
