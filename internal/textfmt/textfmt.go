// Package textfmt holds the pure string transforms behind the fun commands.
package textfmt

import "strings"

// Mock alternates letter case across the input, uppercasing odd positions.
func Mock(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range []rune(s) {
		if i%2 == 1 {
			b.WriteString(strings.ToUpper(string(r)))
		} else {
			b.WriteString(strings.ToLower(string(r)))
		}
	}
	return b.String()
}

// Vaporwave maps printable ASCII onto the fullwidth Unicode block.
// Space becomes an ideographic space; everything else passes through.
func Vaporwave(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == ' ':
			b.WriteRune('　')
		case r > ' ' && r <= '~':
			b.WriteRune(0xFF00 + (r - 0x20))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Reverse reverses the input rune-wise.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// SplitChoices splits a comma separated list, trimming each item and
// dropping empties.
func SplitChoices(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		item := strings.TrimSpace(p)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
