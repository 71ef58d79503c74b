package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/dshills/crwrite/internal/output"
	"github.com/dshills/crwrite/internal/store"
	"github.com/spf13/cobra"
)

var flagShowFormat string

var showCmd = &cobra.Command{
	Use:   "show <review-file>",
	Short: "Summarize an existing review file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitCode = runShow(os.Stdout, args[0], flagShowFormat)
	},
}

func init() {
	showCmd.Flags().StringVar(&flagShowFormat, "format", "text", "Output format (text, json)")
}

// runShow renders the review document at path to stdout and returns the
// process exit code.
func runShow(stdout io.Writer, path, format string) int {
	w, err := output.GetWriter(format)
	if err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return ExitError
	}

	doc, err := store.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return ExitError
	}

	if err := w.Write(stdout, doc); err != nil {
		fmt.Fprintf(stdout, "Error rendering review: %v\n", err)
		return ExitError
	}
	return ExitSuccess
}
