package engine

import "strings"

// normalized is the output of the normalization step: the bare digit
// sequence and whether the input carried an explicit leading +.
type normalized struct {
	digits       string
	explicitPlus bool
}

// normalize strips formatting noise from raw input. Only ASCII digits
// survive, plus a single leading +; a + anywhere else is noise, not an
// error. Zero remaining digits is ErrEmptyInput.
func normalize(raw string) (normalized, error) {
	var b strings.Builder
	b.Grow(len(raw))

	var out normalized
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && b.Len() == 0 && !out.explicitPlus:
			out.explicitPlus = true
		}
	}

	out.digits = b.String()
	if out.digits == "" {
		return normalized{}, ErrEmptyInput
	}
	return out, nil
}
