package search

import (
	"github.com/tastory/tastory/core"
	"github.com/tastory/tastory/vocab"
)

// lexicalOverlap returns the fraction of query tokens that appear in the
// recipe's name or ingredient list. Returns 0 when the query has no
// tokens left after stop-word filtering.
func lexicalOverlap(queryTokens []string, recipe *core.Recipe) float64 {
	if len(queryTokens) == 0 {
		return 0
	}

	docSet := make(map[string]bool)
	for _, token := range vocab.Tokenize(recipe.Name) {
		docSet[token] = true
	}
	for _, ingredient := range recipe.Ingredients {
		for _, token := range vocab.Tokenize(ingredient) {
			docSet[token] = true
		}
	}

	hits := 0
	for _, token := range queryTokens {
		if docSet[token] {
			hits++
		}
	}

	return float64(hits) / float64(len(queryTokens))
}
