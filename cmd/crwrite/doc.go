// Crwrite converts code review comments into the JSON review store consumed
// by the Local Differ viewer.
//
// It takes a destination path and a JSON payload of per-file comments,
// assigns each line comment a unique identifier and timestamps, groups
// entries by file path and staged status, and writes a versioned review
// document that fully replaces any previous file at the destination.
//
// Usage:
//
//	crwrite <output-path> <json-comments>   # write a review file
//	crwrite <output-path> -                 # read the payload from stdin
//	crwrite show <output-path>              # summarize an existing review file
//
// See https://github.com/dshills/crwrite for the payload format.
package main
