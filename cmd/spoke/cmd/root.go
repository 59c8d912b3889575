package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "spoke",
	Short: "Spoke script interpreter",
	Long: `spoke runs Spoke scripts: a small, line-based imperative language with
dynamically-typed scalars, if/else-if/else chains, user-defined functions,
and an externally-extensible command verb system.

Verbs not built into the interpreter are resolved against on-disk command
modules, loaded from the commands directory at runtime.`,
	Version: Version,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

// exitWithError prints a script or usage error and terminates the process.
// Spec §6 Standard I/O routes every error kind (§7) to stdout, not stderr,
// matching original_source/Spoke-Shell/spoke.py's errorLine, which uses
// print rather than sys.stderr.write.
func exitWithError(err error) {
	fmt.Fprintln(os.Stdout, err)
	os.Exit(1)
}
