package cipher

import "fmt"

// UnsupportedDomainError is returned when a ciphertext's character
// domain cannot be covered by the 26-letter target alphabet, which
// makes the permutation search goal unreachable.
type UnsupportedDomainError struct {
	Symbol rune
	Size   int
}

func (e *UnsupportedDomainError) Error() string {
	if e.Symbol != 0 {
		return fmt.Sprintf("ciphertext symbol %q is outside the 26-letter alphabet", e.Symbol)
	}
	return fmt.Sprintf("ciphertext domain of %d symbols exceeds the 26-letter alphabet", e.Size)
}
