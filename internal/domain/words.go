package domain

import (
	"fmt"
	"strings"
)

var (
	unitWords  = [...]string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}
	teenWords  = [...]string{"Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}
	tensWords  = [...]string{"", "Ten", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
	placeWords = [...]string{"", "Thousand", "Million", "Billion"}
)

// wordsLimit is the first magnitude that would need a place name past Billion.
const wordsLimit = 1_000_000_000_000

// NumberToWords renders n in English words, e.g. 1994 becomes
// "One Thousand Nine Hundred Ninety Four" and -5 becomes "Negative Five".
// Magnitudes of one trillion and above return ErrOutOfRange.
func NumberToWords(n int) (string, error) {
	if n == 0 {
		return "Zero", nil
	}
	if n >= wordsLimit || n <= -wordsLimit {
		return "", &OpError{
			Op:   "words.render",
			Kind: KindInvalidInput,
			Err:  fmt.Errorf("%d: %w", n, ErrOutOfRange),
		}
	}

	negative := n < 0
	if negative {
		n = -n
	}

	// Chunks are peeled least significant first and prepended.
	var parts []string
	for place := 0; n > 0; place++ {
		chunk := n % 1000
		n /= 1000
		if chunk == 0 {
			continue
		}

		words := chunkWords(chunk)
		if place > 0 {
			words = append(words, placeWords[place])
		}
		parts = append([]string{strings.Join(words, " ")}, parts...)
	}

	out := strings.Join(parts, " ")
	if negative {
		out = "Negative " + out
	}
	return out, nil
}

// chunkWords renders 1..999. Zero digits are omitted rather than spelled out.
func chunkWords(chunk int) []string {
	var words []string

	if h := chunk / 100; h > 0 {
		words = append(words, unitWords[h], "Hundred")
	}

	rem := chunk % 100
	if rem > 10 && rem < 20 {
		return append(words, teenWords[rem-11])
	}
	if t := rem / 10; t > 0 {
		words = append(words, tensWords[t])
	}
	if u := rem % 10; u > 0 {
		words = append(words, unitWords[u])
	}
	return words
}
