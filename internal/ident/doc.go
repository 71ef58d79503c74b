// Package ident generates the 7-character lowercase-alphanumeric identifiers
// assigned to line comments in a review document.
//
// Identifiers only need to be distinct within a single written file, so a
// uniform non-cryptographic sampler is sufficient. There is no retry on
// collision and no uniqueness guarantee across invocations.
package ident
