package domain

// MaxTokenLen is the longest Roman token accepted from an input line.
const MaxTokenLen = 49

// romanValue returns the value of a single numeral letter, case-insensitive.
// Only ASCII letters qualify.
func romanValue(r rune) (int, bool) {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	switch r {
	case 'I':
		return 1, true
	case 'V':
		return 5, true
	case 'X':
		return 10, true
	case 'L':
		return 50, true
	case 'C':
		return 100, true
	case 'D':
		return 500, true
	case 'M':
		return 1000, true
	default:
		return 0, false
	}
}

// IsValidRoman reports whether every letter of token belongs to the numeral
// alphabet {I,V,X,L,C,D,M}, ignoring case. The empty token is valid: there is
// nothing to reject.
//
// Only the alphabet is checked. Non-canonical forms such as "IIII" or "VX" pass.
func IsValidRoman(token string) bool {
	for _, r := range token {
		if _, ok := romanValue(r); !ok {
			return false
		}
	}
	return true
}

// RomanToDecimal decodes token with the pairwise subtractive rule: scanning left
// to right, a letter followed by a strictly greater letter is subtracted,
// otherwise it is added. Canonical form is not enforced, so "IIII" is 4 and "IM"
// is 999.
//
// A letter outside the alphabet yields ErrInvalidNumeral.
func RomanToDecimal(token string) (int, error) {
	values := make([]int, 0, len(token))
	for _, r := range token {
		v, ok := romanValue(r)
		if !ok {
			return 0, &OpError{
				Op:   "roman.decode",
				Kind: KindInvalidInput,
				Err:  ErrInvalidNumeral,
			}
		}
		values = append(values, v)
	}

	total := 0
	for i, v := range values {
		if i+1 < len(values) && values[i+1] > v {
			total -= v
			continue
		}
		total += v
	}
	return total, nil
}
