/*
Package cipher implements substitution-cipher primitives and decoders:
an alphabet-permutation codec, a brute-force shift decoder scored by a
letter-bigram model, and a best-first search decoder for general
permutation ciphers.
*/
package cipher

import "strings"

// Alphabet is the 26-letter target alphabet.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// Encode applies code, a permutation of Alphabet, to text. Uppercase
// and lowercase letters translate independently with case preserved;
// anything outside both alphabets passes through unchanged.
func Encode(text, code string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteByte(code[r-'a'])
		case r >= 'A' && r <= 'Z':
			b.WriteByte(code[r-'A'] - 'a' + 'A')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ShiftEncode encodes text with the alphabet rotated left by n.
// ShiftEncode("abc z", 1) is "bcd a".
func ShiftEncode(text string, n int) string {
	n = ((n % 26) + 26) % 26
	return Encode(text, Alphabet[n:]+Alphabet[:n])
}

// Rot13 rotates letters by 13 places. It is its own inverse on input
// containing only letters and spaces.
func Rot13(text string) string {
	return ShiftEncode(text, 13)
}
