package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes: there is no partial success, so every failure — usage,
// malformed payload, unwritable destination — maps to the same code.
const (
	ExitSuccess = 0
	ExitError   = 1
)

var rootCmd = &cobra.Command{
	Use:   "crwrite <output-path> <json-comments>",
	Short: "Write code review comments for the Local Differ viewer",
	Long: `Crwrite converts a JSON payload of per-file review comments into the
versioned review document consumed by the Local Differ viewer. Each line
comment receives a fresh 7-character identifier and the whole batch shares
one timestamp. The destination file is fully replaced on every run.

Pass "-" as the payload argument to read it from stdin.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		exitCode = runWrite(os.Stdout, args[0], args[1])
	},
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(versionCmd)

	// Usage and diagnostics go to stdout so callers only need to watch one
	// stream for the absence of the success message.
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stdout)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error and usage
		return ExitError
	}

	return exitCode
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print crwrite version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "crwrite version %s\n", version)
	},
}
