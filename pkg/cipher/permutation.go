package cipher

import (
	"math"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/wordcrack/pkg/model"
	"github.com/bastiangx/wordcrack/pkg/search"
)

// Epsilon floors added before taking logs, one per model so no term
// ever becomes log(0). Changing them changes search guidance.
const (
	wordEpsilon   = 1e-20
	letterEpsilon = 1e-5
	bigramEpsilon = 1e-10
)

// Mapping is a partial injective cipher-letter to plain-letter mapping.
// It is an immutable value object: With derives a new Mapping and never
// touches its receiver, so a search frontier can safely share
// ancestors. Injectivity holds because action generation skips targets
// already in use.
type Mapping struct {
	to   [26]byte // cipher letter index -> plain letter, 0 when unmapped
	used [26]bool // plain letters already claimed as targets
	size int
}

// With returns a copy of m extended by cipher->plain. Mapping an
// already-mapped cipher letter or reusing a claimed plain letter is a
// programming error upstream; the search never generates such actions.
func (m Mapping) With(cipher, plain byte) Mapping {
	next := m
	next.to[cipher-'a'] = plain
	next.used[plain-'a'] = true
	next.size++
	return next
}

// Get looks up the plain letter for cipher, reporting whether it is
// mapped yet.
func (m Mapping) Get(cipher byte) (byte, bool) {
	p := m.to[cipher-'a']
	return p, p != 0
}

// Used reports whether plain is already a target of the mapping.
func (m Mapping) Used(plain byte) bool {
	return m.used[plain-'a']
}

// Size returns the number of mapped letters.
func (m Mapping) Size() int {
	return m.size
}

// Key uniquely identifies the mapping contents.
func (m Mapping) Key() string {
	return string(m.to[:])
}

// Pairs returns the mapping as cipher->plain byte pairs in alphabet
// order.
func (m Mapping) Pairs() [][2]byte {
	out := make([][2]byte, 0, m.size)
	for i, p := range m.to {
		if p != 0 {
			out = append(out, [2]byte{byte('a' + i), p})
		}
	}
	return out
}

// PermutationScorer scores partial mappings against three models
// trained from one corpus: word unigrams, letter unigrams, and letter
// bigrams.
type PermutationScorer struct {
	words   *model.NgramModel
	letters *model.NgramModel
	pairs   *model.NgramModel

	ciphertext string // canonicalized
	domain     []byte // distinct ciphertext letters, first-occurrence order
}

// NewPermutationScorer trains the three models from trainingText and
// fixes the ciphertext the scorer evaluates against. The ciphertext is
// canonicalized; its character domain excludes the space.
func NewPermutationScorer(trainingText, ciphertext string) (*PermutationScorer, error) {
	tokens := model.Words(trainingText)

	words := model.NewUnigramWordModel(tokens, 0)
	letters := model.NewUnigramCharModel(tokens, 0)
	pairs := model.NewNgramModel(2, model.CharTokens, 0)
	pairs.AddSequence(tokens)

	canon := model.Canonicalize(ciphertext)
	domain, err := charDomain(canon)
	if err != nil {
		return nil, err
	}

	return &PermutationScorer{
		words:      words,
		letters:    letters,
		pairs:      pairs,
		ciphertext: canon,
		domain:     domain,
	}, nil
}

// charDomain collects the distinct non-space symbols of canonical
// text. Anything the 26-letter alphabet cannot cover makes the
// permutation goal unreachable.
func charDomain(canon string) ([]byte, error) {
	var seen [26]bool
	var domain []byte
	for _, r := range canon {
		if r == ' ' {
			continue
		}
		if r < 'a' || r > 'z' {
			return nil, &UnsupportedDomainError{Symbol: r}
		}
		if !seen[r-'a'] {
			seen[r-'a'] = true
			domain = append(domain, byte(r))
		}
	}
	return domain, nil
}

// Domain returns the ciphertext's character domain in first-occurrence
// order.
func (sc *PermutationScorer) Domain() []byte {
	out := make([]byte, len(sc.domain))
	copy(out, sc.domain)
	return out
}

// Ciphertext returns the canonicalized ciphertext under evaluation.
func (sc *PermutationScorer) Ciphertext() string {
	return sc.ciphertext
}

// Letters exposes the plain-letter unigram model for the ordering
// heuristic.
func (sc *PermutationScorer) Letters() *model.NgramModel {
	return sc.letters
}

// Apply translates the ciphertext under m completed with the identity
// fallback: unmapped domain letters decode as themselves and space maps
// to space.
func (sc *PermutationScorer) Apply(m Mapping) string {
	var b strings.Builder
	b.Grow(len(sc.ciphertext))
	for _, r := range sc.ciphertext {
		if r == ' ' {
			b.WriteByte(' ')
			continue
		}
		if p, ok := m.Get(byte(r)); ok {
			b.WriteByte(p)
		} else {
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}

// Score evaluates a partial mapping: complete it with the identity
// fallback, decode the ciphertext, and combine the three model
// log-probabilities. The result is -exp(logP), so lower (more
// negative) is better and the search maximum is the most probable
// decoding.
//
// The identity fallback conflates "undecided" with "decodes to
// itself", which can bias partial-state scores toward identity-like
// mappings.
func (sc *PermutationScorer) Score(m Mapping) float64 {
	text := sc.Apply(m)

	logP := 0.0
	for _, w := range strings.Fields(text) {
		logP += math.Log(sc.words.Probability(w) + wordEpsilon)
	}
	for _, c := range text {
		logP += math.Log(sc.letters.Probability(string(c)) + letterEpsilon)
	}
	for _, bi := range model.Bigrams(text) {
		logP += math.Log(sc.pairs.Probability(bi) + bigramEpsilon)
	}
	return -math.Exp(logP)
}

// Ordering picks which unmapped cipher letter the search assigns next.
// candidates is non-empty and in first-occurrence order.
type Ordering func(candidates []byte, letters *model.NgramModel) byte

// MostFrequentLetter is the fixed default ordering: the unmapped cipher
// letter with the highest unigram probability under the plain-letter
// model. It deliberately ignores local context; swapping in a smarter
// strategy changes which branches the search commits to first.
func MostFrequentLetter(candidates []byte, letters *model.NgramModel) byte {
	best := candidates[0]
	bestP := letters.Probability(string(best))
	for _, c := range candidates[1:] {
		if p := letters.Probability(string(c)); p > bestP {
			best = c
			bestP = p
		}
	}
	return best
}

// assignment is one search action: map Cipher to Plain.
type assignment struct {
	Cipher byte
	Plain  byte
}

// permutationProblem adapts the scorer into the formal search problem:
// states are partial mappings, actions extend the chosen letter by one
// target, the goal is full domain coverage. Stateless across searches.
type permutationProblem struct {
	scorer   *PermutationScorer
	ordering Ordering
}

func (p *permutationProblem) InitialState() search.State {
	return Mapping{}
}

// Actions picks the single next cipher letter via the ordering
// heuristic and yields one action per unused target letter. The
// shrinking target pool bounds branching, turning 26! permutations
// into a depth-bounded tree.
func (p *permutationProblem) Actions(state search.State) []any {
	m := state.(Mapping)

	var unmapped []byte
	for _, c := range p.scorer.domain {
		if _, ok := m.Get(c); !ok {
			unmapped = append(unmapped, c)
		}
	}
	if len(unmapped) == 0 {
		return nil
	}

	cipherChar := p.ordering(unmapped, p.scorer.letters)

	var actions []any
	for i := 0; i < len(Alphabet); i++ {
		plain := Alphabet[i]
		if !m.Used(plain) {
			actions = append(actions, assignment{Cipher: cipherChar, Plain: plain})
		}
	}
	return actions
}

func (p *permutationProblem) Result(state search.State, action any) search.State {
	a := action.(assignment)
	return state.(Mapping).With(a.Cipher, a.Plain)
}

func (p *permutationProblem) GoalTest(state search.State) bool {
	return state.(Mapping).Size() == len(p.scorer.domain)
}

// PermutationDecoder searches the space of partial letter mappings for
// the decoding its models score highest.
type PermutationDecoder struct {
	trainingText string
	ordering     Ordering
}

// NewPermutationDecoder prepares a decoder over trainingText with the
// default letter ordering.
func NewPermutationDecoder(trainingText string) *PermutationDecoder {
	return &PermutationDecoder{
		trainingText: trainingText,
		ordering:     MostFrequentLetter,
	}
}

// SetOrdering swaps the variable-ordering heuristic. Extension point
// only; the default is part of the decoder's documented behavior.
func (d *PermutationDecoder) SetOrdering(o Ordering) {
	d.ordering = o
}

// Decode searches for the most probable decoding of ciphertext and
// returns the plaintext together with the winning mapping, which is a
// bijection over exactly the ciphertext's character domain.
func (d *PermutationDecoder) Decode(ciphertext string) (string, Mapping, error) {
	scorer, err := NewPermutationScorer(d.trainingText, ciphertext)
	if err != nil {
		return "", Mapping{}, err
	}

	problem := &permutationProblem{scorer: scorer, ordering: d.ordering}
	eval := func(s search.State) float64 {
		return scorer.Score(s.(Mapping))
	}

	log.Debugf("permutation search over %d-letter domain", len(scorer.domain))
	node, err := search.BestFirst(problem, eval)
	if err != nil {
		return "", Mapping{}, err
	}

	m := node.State.(Mapping)
	log.Debugf("permutation search finished at depth %d", node.Depth)
	return scorer.Apply(m), m, nil
}

// DecodePermutation trains a decoder on trainingText and decodes
// ciphertext in one step.
func DecodePermutation(ciphertext, trainingText string) (string, error) {
	text, _, err := NewPermutationDecoder(trainingText).Decode(ciphertext)
	return text, err
}
