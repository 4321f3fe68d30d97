package model

import (
	"reflect"
	"testing"
)

func TestWords(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"``EGAD!'' Edgar cried.", []string{"egad", "edgar", "cried"}},
		{"It was the best of times", []string{"it", "was", "the", "best", "of", "times"}},
		{"route66 ok", []string{"route66", "ok"}},
		{"", nil},
		{"?!...", nil},
	}

	for _, tt := range tests {
		if got := Words(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Words(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCanonicalize(t *testing.T) {
	if got := Canonicalize("``EGAD!'' Edgar cried."); got != "egad edgar cried" {
		t.Errorf("Canonicalize = %q, want %q", got, "egad edgar cried")
	}
	if got := Canonicalize(""); got != "" {
		t.Errorf("Canonicalize(\"\") = %q, want empty", got)
	}
}

func TestBigrams(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"this", []string{"th", "hi", "is"}},
		{"ab", []string{"ab"}},
		{"a", nil},
		{"", nil},
		{"a b", []string{"a ", " b"}},
	}

	for _, tt := range tests {
		if got := Bigrams(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Bigrams(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
