package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Bean-Pringles/Spoke/internal/errors"
	"github.com/Bean-Pringles/Spoke/internal/interp"
	"github.com/spf13/cobra"
)

var commandsDir string

var runCmd = &cobra.Command{
	Use:   "run <file.spk>",
	Short: "Run a Spoke script",
	Long: `Execute a Spoke script from a .spk file.

Example:
  spoke run script.spk`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&commandsDir, "commands", "commands", "directory to resolve external command modules from")
}

func runScript(_ *cobra.Command, args []string) error {
	path := args[0]
	if !strings.HasSuffix(path, ".spk") {
		exitWithError(&errors.UsageError{Message: "usage: spoke run <file.spk>"})
	}

	content, err := os.ReadFile(path)
	if err != nil {
		exitWithError(&errors.UsageError{Message: fmt.Sprintf("usage: spoke run <file.spk>: %v", err)})
	}

	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")

	interpreter := interp.New(os.Stdout, commandsDir)
	if runErr := interpreter.Run(lines); runErr != nil {
		exitWithError(runErr)
	}
	return nil
}
