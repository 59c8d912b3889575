package main

import (
	"fmt"
	"os"

	"github.com/Bean-Pringles/Spoke/cmd/spoke/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Spec §6 Standard I/O routes every error kind (§7), including CLI
		// usage mistakes cobra itself rejects (wrong argument count), to
		// stdout rather than stderr.
		fmt.Fprintln(os.Stdout, err)
		os.Exit(1)
	}
}
