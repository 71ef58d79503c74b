package ident

import "math/rand/v2"

// alphabet matches the identifier format used by the Local Differ viewer.
const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Length is the number of characters in a comment identifier.
const Length = 7

// New returns a fresh comment identifier: Length characters drawn uniformly
// and independently from lowercase letters and digits.
func New() string {
	buf := make([]byte, Length)
	for i := range buf {
		buf[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(buf)
}
