package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dshills/crwrite/internal/config"
	"github.com/dshills/crwrite/internal/logging"
	"github.com/dshills/crwrite/internal/redact"
	"github.com/dshills/crwrite/internal/review"
	"github.com/dshills/crwrite/internal/store"
)

var flagRedact bool

func init() {
	rootCmd.Flags().BoolVar(&flagRedact, "redact", false, "Scrub secret-looking strings from comment text before writing")
}

// runWrite transcodes payload into a review document at outPath and prints
// the report to stdout. It returns the process exit code.
func runWrite(stdout io.Writer, outPath, payload string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stdout, "Error loading configuration: %v\n", err)
		return ExitError
	}
	logger := logging.NewLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))

	if payload == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(stdout, "Error reading payload from stdin: %v\n", err)
			return ExitError
		}
		payload = string(data)
	}

	set, err := review.Parse(payload)
	if err != nil {
		// The one fatal payload error: the destination is left untouched.
		fmt.Fprintf(stdout, "Error parsing JSON: %v\n", err)
		return ExitError
	}
	logger.Debug("parsed payload", "files", len(set.Files))

	if flagRedact || cfg.Redact {
		redact.CommentSet(set)
		logger.Debug("redacted comment text")
	}

	// One timestamp for the whole batch: every comment written in this run
	// shares createdAt, updatedAt, and lastModified.
	doc := store.Build(set, time.Now(), cfg.Source)

	if err := doc.WriteFile(outPath); err != nil {
		fmt.Fprintf(stdout, "Error writing review: %v\n", err)
		return ExitError
	}
	logger.Debug("wrote review document", "path", outPath, "files", doc.FileCount(), "comments", doc.CommentCount())

	fmt.Fprintf(stdout, "Review written to %s\n", outPath)
	fmt.Fprintf(stdout, "Total files: %d\n", doc.FileCount())
	fmt.Fprintf(stdout, "Total comments: %d\n", doc.CommentCount())
	return ExitSuccess
}
