package dsl

import "strings"

// splitTop splits s on commas that sit outside any parentheses or
// square brackets, trimming surrounding whitespace from each piece.
// Unbalanced nesting yields a ParseError so malformed operands never
// silently split in the wrong place.
func splitTop(s string) ([]string, error) {
	var (
		parts []string
		depth int
		start int
	)
	for i, r := range s {
		switch r {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
			if depth < 0 {
				return nil, parseErrf(s, keyUnbalanced)
			}
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, parseErrf(s, keyUnbalanced)
	}
	parts = append(parts, strings.TrimSpace(s[start:]))
	return parts, nil
}

// matchClose returns the index of the closing rune matching the opener
// at index open, or -1 when the input is unbalanced. Both bracket pairs
// nest freely inside each other.
func matchClose(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
