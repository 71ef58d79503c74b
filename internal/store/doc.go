// Package store builds and persists the versioned review document consumed
// by the Local Differ viewer.
//
// A document maps composite keys ("<filePath>:<staged>") to per-file comment
// groups. Building is a single pass over the parsed payload: every line
// comment receives a fresh identifier, and all records produced by one
// invocation share one timestamp (batch semantics, not per-comment
// wall-clock precision). Writing fully replaces the destination file; there
// is no merging with previous runs and no locking against concurrent
// writers.
package store
