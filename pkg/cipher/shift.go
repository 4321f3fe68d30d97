package cipher

import (
	"github.com/bastiangx/wordcrack/pkg/model"
)

// ShiftDecoder recovers shift-cipher plaintext by trying all 26 shifts
// and keeping the one a letter-bigram model likes best.
type ShiftDecoder struct {
	bigrams *model.CountingDist
}

// NewShiftDecoder trains a bigram model over the canonicalized training
// text. Unseen bigrams get one pseudo-observation's worth of
// probability so no candidate ever scores exactly zero.
func NewShiftDecoder(trainingText string) *ShiftDecoder {
	pairs := model.Bigrams(model.Canonicalize(trainingText))

	defaultProb := 1.0
	if len(pairs) > 0 {
		defaultProb = 1.0 / float64(len(pairs))
	}
	dist := model.NewCountingDist(defaultProb)
	for _, p := range pairs {
		dist.Add(p)
	}
	return &ShiftDecoder{bigrams: dist}
}

// Score is the product of the bigram probabilities of plaintext.
func (d *ShiftDecoder) Score(plaintext string) float64 {
	s := 1.0
	for _, bi := range model.Bigrams(plaintext) {
		s *= d.bigrams.Probability(bi)
	}
	return s
}

// Decode returns the highest-scoring of the 26 shift decodings of
// ciphertext. Ties resolve to the smallest shift index.
func (d *ShiftDecoder) Decode(ciphertext string) string {
	best := ciphertext
	bestScore := -1.0
	for shift := 0; shift < 26; shift++ {
		candidate := ShiftEncode(ciphertext, shift)
		if score := d.Score(candidate); score > bestScore {
			best = candidate
			bestScore = score
		}
	}
	return best
}

// DecodeShift trains a decoder on trainingText and decodes ciphertext
// in one step.
func DecodeShift(ciphertext, trainingText string) string {
	return NewShiftDecoder(trainingText).Decode(ciphertext)
}
