// Package cli wires together the Cobra command tree for the crwrite binary.
//
// The root command performs the write itself: it takes a destination path
// and a JSON payload, transcodes the payload into a review document, and
// persists it. Subcommands cover inspecting an existing review file (show)
// and printing the version. Any failure exits with code 1; success prints
// the destination path and comment counts to stdout and exits 0.
package cli
