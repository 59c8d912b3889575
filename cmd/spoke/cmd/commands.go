package cmd

import (
	"fmt"

	"github.com/Bean-Pringles/Spoke/internal/commands"
	"github.com/spf13/cobra"
)

var commandsListDir string

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List every verb the interpreter can currently resolve",
	Long: `List the compiled-in builtin verbs plus any command module files
found in the commands directory, restoring in spirit what the original
interpreter's directory-listing command did.`,
	RunE: listCommands,
}

func init() {
	rootCmd.AddCommand(commandsCmd)
	commandsCmd.Flags().StringVar(&commandsListDir, "commands", "commands", "directory to look for command modules in")
}

func listCommands(_ *cobra.Command, args []string) error {
	d := commands.NewDispatcher(commandsListDir)
	for _, verb := range d.Verbs() {
		fmt.Println(verb)
	}
	return nil
}
