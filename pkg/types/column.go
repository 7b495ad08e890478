package types

import (
	"fmt"
	"strings"
)

// ColumnLetters converts a 1-based column number to its letter form
// (1 -> "A", 26 -> "Z", 27 -> "AA"). The mapping is bijective base-26.
func ColumnLetters(n int) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("%w: column number must be positive: %d", ErrValidation, n)
	}
	var b []byte
	for n > 0 {
		n--
		b = append([]byte{byte('A' + n%26)}, b...)
		n /= 26
	}
	return string(b), nil
}

// ColumnNumber converts column letters to their 1-based number
// ("A" -> 1, "Z" -> 26, "AA" -> 27). Lowercase letters are accepted.
func ColumnNumber(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty column letters", ErrValidation)
	}
	n := 0
	for _, r := range strings.ToUpper(s) {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("%w: column letters must be A-Z: %q", ErrValidation, s)
		}
		n = n*26 + int(r-'A') + 1
	}
	return n, nil
}
