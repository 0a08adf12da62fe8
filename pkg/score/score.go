// Package score holds the arithmetic and keyword matching shared by the
// bio and vision scorers.
package score

import (
	"strconv"
	"strings"
	"unicode"
)

// Max is the ceiling for every 0-10 score.
const Max = 10.0

// Cap limits val to ceil.
func Cap(val, ceil float64) float64 {
	if val > ceil {
		return ceil
	}
	return val
}

// Round rounds num to precision decimal places using the shortest decimal
// form of the float, ties to even on the exact binary value.
func Round(num float64, precision int) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(num, 'f', precision, 64), 64)
	if err != nil {
		return num
	}
	return v
}

// ContainsAny reports whether text contains any of terms as a substring.
func ContainsAny(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}

// CountContains returns how many of terms occur in text as substrings.
func CountContains(text string, terms []string) int {
	n := 0
	for _, t := range terms {
		if strings.Contains(text, t) {
			n++
		}
	}
	return n
}

// Words splits text into word tokens. A word is a run of letters, digits
// or underscores, so punctuation and symbols act as boundaries.
func Words(text string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsMark(r) && r != '_'
	}) {
		words[w] = true
	}
	return words
}

// HasWord reports whether any of terms is a whole word in words.
func HasWord(words map[string]bool, terms []string) bool {
	for _, t := range terms {
		if words[t] {
			return true
		}
	}
	return false
}
