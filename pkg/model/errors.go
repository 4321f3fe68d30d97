package model

import (
	"fmt"
	"strings"
)

// EmptyModelError is returned when a sample is requested from a
// distribution that has no observations yet.
type EmptyModelError struct {
	Op string
}

func (e *EmptyModelError) Error() string {
	return fmt.Sprintf("%s: distribution has no observations", e.Op)
}

// UnseenContextError is returned when a conditional distribution is
// requested for a prefix that never occurred in training. Probability
// queries silently fall back to the configured default; generation needs
// an actual distribution to sample from, so it fails instead.
type UnseenContextError struct {
	Prefix []string
}

func (e *UnseenContextError) Error() string {
	return fmt.Sprintf("no conditional distribution for prefix %q", strings.Join(e.Prefix, " "))
}
