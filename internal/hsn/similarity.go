package hsn

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Similarity returns the Ratcliff/Obershelp ratio of a and b in [0, 1],
// compared rune by rune. Two empty strings are identical.
func Similarity(a, b string) float64 {
	return difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, "")).Ratio()
}

// bestSimilarity is the highest ratio between term and any of the first
// window words.
func bestSimilarity(term string, words []string, window int) float64 {
	if window >= 0 && len(words) > window {
		words = words[:window]
	}
	best := 0.0
	for _, w := range words {
		if r := Similarity(term, w); r > best {
			best = r
		}
	}
	return best
}
