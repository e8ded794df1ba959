package lexer

import (
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SuggestKeyword returns the keyword that word most likely misspells, such as
// "return" for "retrun". Keywords themselves and words too far from every
// keyword yield no suggestion.
func SuggestKeyword(word string) (string, bool) {
	if len(word) < 3 {
		return "", false
	}
	if _, ok := LookupKeyword(word); ok {
		return "", false
	}

	limit := 1
	if len(word) > 4 {
		limit = 2
	}

	best, bestDist := "", limit+1
	for _, e := range keywords {
		d := fuzzy.LevenshteinDistance(word, e.text)
		if d < bestDist {
			best, bestDist = e.text, d
		}
	}
	return best, best != ""
}
