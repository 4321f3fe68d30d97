package cipher

import (
	"errors"
	"testing"
)

func TestMappingImmutable(t *testing.T) {
	var base Mapping

	child := base.With('a', 'z')
	if base.Size() != 0 {
		t.Fatalf("parent mapping mutated: size %d", base.Size())
	}
	if child.Size() != 1 {
		t.Fatalf("child size = %d, want 1", child.Size())
	}
	if p, ok := child.Get('a'); !ok || p != 'z' {
		t.Errorf("child.Get(a) = %q, %v", p, ok)
	}
	if _, ok := base.Get('a'); ok {
		t.Errorf("parent sees child's entry")
	}
	if !child.Used('z') || base.Used('z') {
		t.Errorf("used-target bookkeeping leaked between states")
	}
}

func TestMappingKeyDistinguishesStates(t *testing.T) {
	a := Mapping{}.With('a', 'x')
	b := Mapping{}.With('a', 'y')
	c := Mapping{}.With('b', 'x')

	if a.Key() == b.Key() || a.Key() == c.Key() || b.Key() == c.Key() {
		t.Errorf("mapping keys collide: %q %q %q", a.Key(), b.Key(), c.Key())
	}
}

func TestPermutationScorerDomain(t *testing.T) {
	sc, err := NewPermutationScorer("some training words", "The CAT! sat.")
	if err != nil {
		t.Fatalf("NewPermutationScorer error: %v", err)
	}

	domain := sc.Domain()
	want := map[byte]bool{'t': true, 'h': true, 'e': true, 'c': true, 'a': true, 's': true}
	if len(domain) != len(want) {
		t.Fatalf("domain = %q, want %d distinct letters", domain, len(want))
	}
	for _, c := range domain {
		if !want[c] {
			t.Errorf("unexpected domain letter %q", c)
		}
	}
}

func TestPermutationScorerUnsupportedDomain(t *testing.T) {
	// Digits survive canonicalization but cannot be covered by the
	// 26-letter alphabet.
	_, err := NewPermutationScorer("training", "agent 007")
	var domainErr *UnsupportedDomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("got %v, want UnsupportedDomainError", err)
	}
}

func TestPermutationScorerIdentityFallback(t *testing.T) {
	sc, err := NewPermutationScorer("the cat", "the cat")
	if err != nil {
		t.Fatalf("NewPermutationScorer error: %v", err)
	}

	// An empty mapping decodes every letter as itself.
	if got := sc.Apply(Mapping{}); got != "the cat" {
		t.Errorf("Apply(empty) = %q, want %q", got, "the cat")
	}

	m := Mapping{}.With('t', 'z')
	if got := sc.Apply(m); got != "zhe caz" {
		t.Errorf("Apply(t->z) = %q, want %q", got, "zhe caz")
	}

	// The fallback makes the empty mapping score exactly like the full
	// identity mapping.
	identity := Mapping{}
	for _, c := range sc.Domain() {
		identity = identity.With(c, c)
	}
	if se, si := sc.Score(Mapping{}), sc.Score(identity); se != si {
		t.Errorf("empty scored %v, identity %v; fallback should equalize them", se, si)
	}
}

func TestPermutationScorerPrefersTrainedText(t *testing.T) {
	sc, err := NewPermutationScorer("dog dog dog cat", "eph")
	if err != nil {
		t.Fatalf("NewPermutationScorer error: %v", err)
	}

	decoded := Mapping{}.With('e', 'd').With('p', 'o').With('h', 'g')
	garbled := Mapping{}.With('e', 'q').With('p', 'x').With('h', 'j')

	if sd, sg := sc.Score(decoded), sc.Score(garbled); sd >= sg {
		t.Errorf("decoded cost %v, garbled cost %v; want decoded lower", sd, sg)
	}
}

func TestMostFrequentLetterOrdering(t *testing.T) {
	sc, err := NewPermutationScorer("eee ee e t", "tex")
	if err != nil {
		t.Fatalf("NewPermutationScorer error: %v", err)
	}

	got := MostFrequentLetter([]byte{'t', 'e', 'x'}, sc.Letters())
	if got != 'e' {
		t.Errorf("ordering picked %q, want e (most frequent plain letter)", got)
	}

	// All-unseen candidates fall back to the first in occurrence order.
	got = MostFrequentLetter([]byte{'q', 'z'}, sc.Letters())
	if got != 'q' {
		t.Errorf("ordering picked %q, want q (insertion order on ties)", got)
	}
}

func TestPermutationDecodeSingleLetter(t *testing.T) {
	got, m, err := NewPermutationDecoder("a a a a").Decode("b")
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if got != "a" {
		t.Errorf("Decode(b) = %q, want a", got)
	}
	if p, ok := m.Get('b'); !ok || p != 'a' {
		t.Errorf("mapping b->%q, want b->a", p)
	}
}

func TestPermutationDecodeIdentity(t *testing.T) {
	got, m, err := NewPermutationDecoder("dog dog dog").Decode("dog")
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if got != "dog" {
		t.Errorf("Decode(dog) = %q, want dog", got)
	}
	if m.Size() != 3 {
		t.Errorf("mapping size = %d, want full 3-letter domain", m.Size())
	}
}

func TestPermutationDecodeShiftedWord(t *testing.T) {
	ciphertext := ShiftEncode("dog dog dog", 1) // "eph eph eph"

	got, _, err := NewPermutationDecoder("dog dog dog cat").Decode(ciphertext)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if got != "dog dog dog" {
		t.Errorf("Decode(%q) = %q, want %q", ciphertext, got, "dog dog dog")
	}
}

// The winning mapping is a bijection over exactly the ciphertext's
// character domain, and never scores worse than leaving everything as
// identity.
func TestPermutationDecodeBijection(t *testing.T) {
	training := "the cat sat on the mat the cat ran"
	ciphertext := ShiftEncode("the cat sat", 3)

	_, m, err := NewPermutationDecoder(training).Decode(ciphertext)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}

	sc, err := NewPermutationScorer(training, ciphertext)
	if err != nil {
		t.Fatalf("NewPermutationScorer error: %v", err)
	}

	domain := sc.Domain()
	if m.Size() != len(domain) {
		t.Fatalf("mapping covers %d letters, domain has %d", m.Size(), len(domain))
	}
	seen := map[byte]bool{}
	for _, pair := range m.Pairs() {
		if seen[pair[1]] {
			t.Errorf("target %q used twice", pair[1])
		}
		seen[pair[1]] = true
	}

	if sd, si := sc.Score(m), sc.Score(Mapping{}); sd > si {
		t.Errorf("decoded cost %v worse than identity %v", sd, si)
	}
}
