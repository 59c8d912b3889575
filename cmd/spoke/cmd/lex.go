package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Bean-Pringles/Spoke/internal/lexer"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file.spk>",
	Short: "Tokenize a Spoke file and print its tokens",
	Long: `Tokenize a Spoke script line by line and print the resulting token
list for each line. Useful for debugging the lexer.`,
	Args: cobra.ExactArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func lexScript(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", args[0], err)
	}

	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		tokens := lexer.Lex(trimmed)
		fmt.Printf("%4d: %v\n", i+1, tokens)
	}
	return nil
}
