/*
Package segment splits an unspaced character stream into its
maximum-likelihood word sequence under a unigram word model.
*/
package segment

import "github.com/bastiangx/wordcrack/pkg/model"

// Segment finds the best split of text into words, maximizing the
// product of per-word probabilities over all possible splits.
// Out-of-vocabulary spans score at the model's configured default, so
// segmentation always completes, degrading to whole unknown spans at
// worst. Empty input yields an empty sequence with probability 1.
//
// Forward dynamic programming over end positions, O(N^2) in the text
// length. On a score tie the longer candidate word wins: a later start
// position overwrites an earlier equal-score one.
func Segment(text string, words *model.NgramModel) ([]string, float64) {
	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return nil, 1.0
	}

	// best[i] is the probability of the best split of runes[:i],
	// lengths[i] the length of the winning word ending at i.
	best := make([]float64, n+1)
	lengths := make([]int, n+1)
	best[0] = 1.0

	for i := 1; i <= n; i++ {
		// j runs high to low so equal scores settle on the longer word,
		// and an all-default stretch collapses into one unknown span.
		for j := i - 1; j >= 0; j-- {
			w := string(runes[j:i])
			score := words.Probability(w) * best[j]
			if score >= best[i] {
				best[i] = score
				lengths[i] = i - j
			}
		}
	}

	var sequence []string
	for i := n; i > 0; i -= lengths[i] {
		sequence = append(sequence, string(runes[i-lengths[i]:i]))
	}
	for l, r := 0, len(sequence)-1; l < r; l, r = l+1, r-1 {
		sequence[l], sequence[r] = sequence[r], sequence[l]
	}
	return sequence, best[n]
}
