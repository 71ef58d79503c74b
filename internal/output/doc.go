// Package output renders persisted review documents for inspection.
//
// Two formats are supported:
//   - text — human-readable per-file summary (default)
//   - json — the document re-serialized as indented JSON
//
// Use [GetWriter] to obtain a [Writer] for a format string, then call
// [Writer.Write] with an [io.Writer] and a [*store.Document].
package output
