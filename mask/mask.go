// Package mask matches values against masked-input patterns.
//
// A mask is a template string in which a few characters stand for character
// classes and everything else is a literal:
//
//	9  one digit
//	a  one letter
//	*  one letter or digit
//	\  treat the next mask character as a literal
//
// Match requires the whole value to satisfy the whole mask; there is no
// partial or prefix matching.
package mask

import "unicode"

// Match reports whether value satisfies the mask pattern. An empty pattern
// matches only the empty value.
func Match(pattern, value string) bool {
	mr := []rune(pattern)
	vr := []rune(value)

	vi := 0
	for mi := 0; mi < len(mr); mi++ {
		m := mr[mi]

		literal := false
		if m == '\\' {
			if mi == len(mr)-1 {
				// Trailing backslash has nothing to escape; treat it literally.
				literal = true
			} else {
				mi++
				m = mr[mi]
				literal = true
			}
		}

		if vi >= len(vr) {
			return false
		}
		v := vr[vi]

		if !runeMatches(m, v, literal) {
			return false
		}
		vi++
	}
	return vi == len(vr)
}

func runeMatches(m, v rune, literal bool) bool {
	if literal {
		return v == m
	}
	switch m {
	case '9':
		return unicode.IsDigit(v)
	case 'a':
		return unicode.IsLetter(v)
	case '*':
		return unicode.IsLetter(v) || unicode.IsDigit(v)
	default:
		return v == m
	}
}
