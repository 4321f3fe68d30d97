package model

import (
	"regexp"
	"strings"
)

// wordPattern matches lowercase alphanumeric runs. Initialized once,
// never mutated at runtime.
var wordPattern = regexp.MustCompile(`[a-z0-9]+`)

// Words lowercases text and returns its alphanumeric runs, dropping
// punctuation entirely.
func Words(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// Canonicalize reduces text to lowercase letters and digits separated by
// single spaces.
func Canonicalize(text string) string {
	return strings.Join(Words(text), " ")
}

// Bigrams returns every adjacent two-rune window of text.
func Bigrams(text string) []string {
	runes := []rune(text)
	if len(runes) < 2 {
		return nil
	}
	out := make([]string, 0, len(runes)-1)
	for i := 0; i+2 <= len(runes); i++ {
		out = append(out, string(runes[i:i+2]))
	}
	return out
}
