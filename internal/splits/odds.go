package splits

import (
	"strconv"
	"strings"
)

// ParsePercent converts a "62%" style string to its numeric value.
// Malformed text parses to 0 rather than failing the bet.
func ParsePercent(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, "%", ""))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseOdds converts an American-odds string ("+250", "-150") to a
// signed integer. The source occasionally emits U+2212 instead of an
// ASCII minus; anything still non-numeric after normalization is 0.
func ParseOdds(s string) int {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "−", "-")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
