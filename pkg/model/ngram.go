package model

import "strings"

// Tokenization selects how an n-gram model reads its training sequences.
type Tokenization int

const (
	// WordTokens treats each sequence element as one symbol.
	WordTokens Tokenization = iota
	// CharTokens windows over the characters of each element, prefixed
	// with a boundary marker so word-initial statistics are learned too.
	CharTokens
)

// BoundaryMarker is prepended to every word in CharTokens mode before
// windowing.
const BoundaryMarker = " "

// NgramModel is a distribution over fixed-length symbol tuples paired
// with a conditional table mapping each (n-1)-prefix to a distribution
// over the next symbol. Every counted n-tuple has a matching increment
// in its prefix's conditional distribution.
//
// n=1 collapses the conditional table: the model degenerates to a plain
// unigram distribution and Generate draws independent samples.
type NgramModel struct {
	*CountingDist

	n    int
	mode Tokenization
	cond map[string]*CountingDist
}

// NewNgramModel creates an empty n-gram model. defaultProb is the
// probability reported for unseen tuples.
func NewNgramModel(n int, mode Tokenization, defaultProb float64) *NgramModel {
	return &NgramModel{
		CountingDist: NewCountingDist(defaultProb),
		n:            n,
		mode:         mode,
		cond:         make(map[string]*CountingDist),
	}
}

// NewUnigramWordModel builds a word unigram model from tokens.
func NewUnigramWordModel(tokens []string, defaultProb float64) *NgramModel {
	m := NewNgramModel(1, WordTokens, defaultProb)
	m.AddSequence(tokens)
	return m
}

// NewUnigramCharModel builds a character unigram model from tokens.
// The degenerate n=1 case carries no boundary marker and no
// conditional table.
func NewUnigramCharModel(tokens []string, defaultProb float64) *NgramModel {
	m := NewNgramModel(1, CharTokens, defaultProb)
	m.AddSequence(tokens)
	return m
}

// N returns the tuple width.
func (m *NgramModel) N() int { return m.n }

// Mode returns the model's tokenization mode.
func (m *NgramModel) Mode() Tokenization { return m.mode }

// key flattens a tuple into a map key. Word symbols never contain
// spaces and char symbols are single runes, so both joins are
// unambiguous.
func (m *NgramModel) key(tokens []string) string {
	if m.mode == CharTokens {
		return strings.Join(tokens, "")
	}
	return strings.Join(tokens, " ")
}

// splitKey reverses key.
func (m *NgramModel) splitKey(key string) []string {
	if m.mode == CharTokens {
		runes := []rune(key)
		out := make([]string, len(runes))
		for i, r := range runes {
			out[i] = string(r)
		}
		return out
	}
	return strings.Split(key, " ")
}

// AddSequence slides an n-wide window across the sequence, incrementing
// the tuple distribution and the conditional entry for each window. In
// CharTokens mode each element is windowed per character with a leading
// boundary marker; n=1 counts bare characters only.
func (m *NgramModel) AddSequence(tokens []string) {
	if m.mode == WordTokens {
		m.addWindows(tokens)
		return
	}
	for _, word := range tokens {
		if m.n == 1 {
			for _, r := range word {
				m.Add(string(r))
			}
			continue
		}
		chars := []rune(BoundaryMarker + word)
		seq := make([]string, len(chars))
		for i, r := range chars {
			seq[i] = string(r)
		}
		m.addWindows(seq)
	}
}

func (m *NgramModel) addWindows(seq []string) {
	if m.n == 1 {
		for _, s := range seq {
			m.Add(s)
		}
		return
	}
	for i := 0; i+m.n <= len(seq); i++ {
		window := seq[i : i+m.n]
		m.Add(m.key(window))
		m.addCond(window)
	}
}

// addCond increments the conditional distribution P(last | prefix).
func (m *NgramModel) addCond(window []string) {
	prefix := m.key(window[:len(window)-1])
	dist, ok := m.cond[prefix]
	if !ok {
		dist = NewCountingDist(0)
		m.cond[prefix] = dist
	}
	dist.Add(window[len(window)-1])
}

// ProbabilityTuple reports the probability of an exact n-tuple. Unseen
// tuples return the configured default, like any probability query.
func (m *NgramModel) ProbabilityTuple(tokens ...string) float64 {
	return m.Probability(m.key(tokens))
}

// Cond returns the distribution over next symbols after prefix. Unlike
// a probability query this needs an actual distribution object, so a
// never-trained prefix is an UnseenContextError.
func (m *NgramModel) Cond(prefix ...string) (*CountingDist, error) {
	dist, ok := m.cond[m.key(prefix)]
	if !ok {
		return nil, &UnseenContextError{Prefix: prefix}
	}
	return dist, nil
}

// Generate produces a sequence of length symbols: an initial tuple drawn
// from the tuple distribution, then repeated conditional samples keyed by
// the most recent n-1 symbols. length < n returns the initial tuple
// truncated. Sampling an empty model or walking into a never-trained
// context fails fast rather than corrupting the output.
func (m *NgramModel) Generate(length int) ([]string, error) {
	if length <= 0 {
		return nil, nil
	}
	if m.n == 1 {
		out := make([]string, 0, length)
		for i := 0; i < length; i++ {
			s, err := m.Sample()
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	}

	first, err := m.Sample()
	if err != nil {
		return nil, err
	}
	out := m.splitKey(first)
	if length < m.n {
		return out[:length], nil
	}

	for len(out) < length {
		prefix := out[len(out)-(m.n-1):]
		dist, err := m.Cond(prefix...)
		if err != nil {
			return nil, err
		}
		next, err := dist.Sample()
		if err != nil {
			return nil, err
		}
		out = append(out, next)
	}
	return out, nil
}

// GenerateText joins Generate output with the mode's natural separator:
// spaces between words, nothing between characters.
func (m *NgramModel) GenerateText(length int) (string, error) {
	tokens, err := m.Generate(length)
	if err != nil {
		return "", err
	}
	if m.mode == CharTokens {
		return strings.Join(tokens, ""), nil
	}
	return strings.Join(tokens, " "), nil
}
