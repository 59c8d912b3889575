package commands

import (
	"fmt"
	"time"

	"github.com/Bean-Pringles/Spoke/internal/value"
)

func sleepSeconds(n int64) {
	time.Sleep(time.Duration(n) * time.Second)
}

// timeHandler implements `time [var]`: prints the current timestamp, or
// stores it into var, matching Spoke-Shell/spoke.py's time branch.
func timeHandler(tokens []string, api *HostAPI) bool {
	stamp := time.Now().Format("2006-01-02 15:04:05")

	switch len(tokens) {
	case 1:
		fmt.Println(stamp)
	case 2:
		api.Env.Set(tokens[1], value.String(stamp))
	default:
		return api.Fail("invalid argument(s) to time")
	}
	return true
}
