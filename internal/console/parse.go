package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidInput marks console input that could not be parsed.
var ErrInvalidInput = errors.New("invalid input")

// ParsePair parses "AxB" (case-insensitive x, spaces around either number
// allowed) into two positive integers. Exactly one separator is accepted.
func ParsePair(s string) (int, int, error) {
	first, second, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok || strings.Contains(second, "x") {
		return 0, 0, fmt.Errorf("%w: %q, want format AxB", ErrInvalidInput, s)
	}
	var out [2]int
	for i, p := range []string{first, second} {
		p = strings.TrimSpace(p)
		if p == "" {
			return 0, 0, fmt.Errorf("%w: %q, want format AxB", ErrInvalidInput, s)
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 {
			return 0, 0, fmt.Errorf("%w: %q is not a positive number", ErrInvalidInput, p)
		}
		out[i] = n
	}
	return out[0], out[1], nil
}

// ParseChoice parses a menu number.
func ParseChoice(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q is not a menu option", ErrInvalidInput, s)
	}
	return n, nil
}
