/*
Package model implements frequency-based probability distributions over
discrete symbols, from plain counting distributions to n-gram models with
conditional tables, plus the tokenizers the rest of wordcrack shares.

Models are built once from a training corpus and are read-only afterwards.
Counts only grow during training; probability lookups never fail and fall
back to a configurable default for unseen symbols.
*/
package model

import (
	"math/rand"
	"sort"
)

// CountingDist is a discrete probability distribution backed by raw
// observation counts. The zero default makes unseen symbols impossible;
// a small positive default keeps downstream log scoring finite.
type CountingDist struct {
	counts      map[string]int
	order       []string // first-insertion order, breaks ties in Top
	total       int
	defaultProb float64
}

// NewCountingDist creates an empty distribution. defaultProb is returned
// by Probability for symbols that were never added.
func NewCountingDist(defaultProb float64) *CountingDist {
	return &CountingDist{
		counts:      make(map[string]int),
		defaultProb: defaultProb,
	}
}

// NewCountingDistOf builds a distribution from a batch of observations.
func NewCountingDistOf(observations []string, defaultProb float64) *CountingDist {
	d := NewCountingDist(defaultProb)
	for _, s := range observations {
		d.Add(s)
	}
	return d
}

// Add records one observation of symbol.
func (d *CountingDist) Add(symbol string) {
	if _, seen := d.counts[symbol]; !seen {
		d.order = append(d.order, symbol)
	}
	d.counts[symbol]++
	d.total++
}

// AddN records n observations of symbol at once, for callers that
// already hold aggregated counts. n < 1 is a no-op.
func (d *CountingDist) AddN(symbol string, n int) {
	if n < 1 {
		return
	}
	if _, seen := d.counts[symbol]; !seen {
		d.order = append(d.order, symbol)
	}
	d.counts[symbol] += n
	d.total += n
}

// Count returns the raw observation count for symbol.
func (d *CountingDist) Count(symbol string) int {
	return d.counts[symbol]
}

// Total returns the number of observations across all symbols.
func (d *CountingDist) Total() int {
	return d.total
}

// Default returns the probability assigned to unseen symbols.
func (d *CountingDist) Default() float64 {
	return d.defaultProb
}

// Probability returns count/total for seen symbols and the configured
// default otherwise. It never fails, which keeps scoring a total function.
func (d *CountingDist) Probability(symbol string) float64 {
	c, seen := d.counts[symbol]
	if !seen || d.total == 0 {
		return d.defaultProb
	}
	return float64(c) / float64(d.total)
}

// Sample draws a symbol at random, weighted by observation count.
func (d *CountingDist) Sample() (string, error) {
	if d.total == 0 {
		return "", &EmptyModelError{Op: "sample"}
	}
	target := rand.Intn(d.total)
	for _, symbol := range d.order {
		target -= d.counts[symbol]
		if target < 0 {
			return symbol, nil
		}
	}
	// Unreachable while counts stay in sync with total.
	return d.order[len(d.order)-1], nil
}

// Samples draws n symbols independently and joins them with spaces,
// producing random text under the distribution.
func (d *CountingDist) Samples(n int) (string, error) {
	out := make([]byte, 0, n*6)
	for i := 0; i < n; i++ {
		s, err := d.Sample()
		if err != nil {
			return "", err
		}
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, s...)
	}
	return string(out), nil
}

// Top returns the k highest-count symbols, ties broken by
// first-insertion order. Fewer than k symbols returns all of them.
func (d *CountingDist) Top(k int) []string {
	ranked := make([]string, len(d.order))
	copy(ranked, d.order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return d.counts[ranked[i]] > d.counts[ranked[j]]
	})
	if k < len(ranked) {
		ranked = ranked[:k]
	}
	return ranked
}

// Symbols returns every observed symbol in first-insertion order.
func (d *CountingDist) Symbols() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}
