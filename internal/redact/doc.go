// Package redact removes secret-looking strings from review comments before
// they are persisted.
//
// Detection uses regex heuristics for common secret shapes: API keys, AWS
// credentials, bearer tokens, JWTs, private key blocks, and GitHub tokens.
// Redaction rewrites lineContent, which weakens the viewer's line matching
// for affected comments, so it is opt-in.
package redact
