// Package review defines the comment payload accepted by crwrite and the
// tolerant decoder that normalizes it.
//
// The decoder is deliberately forgiving: only an unparseable payload, a
// non-object top level, or a non-array "comments" value is fatal. Every
// missing or wrong-shaped sub-field is replaced with its documented default
// so that a partially formed payload still produces a usable review file.
package review
