// Copyright 2025 Tastory Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package vocab

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/tastory/tastory/core"
	"github.com/tastory/tastory/storage"
)

// Stop words excluded from the vocabulary. Corrections and suggestions
// should never surface these.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "to": true, "of": true, "and": true, "in": true, "that": true,
	"have": true, "it": true, "for": true, "not": true, "on": true, "with": true,
	"as": true, "you": true, "do": true, "at": true, "this": true, "but": true,
	"by": true, "from": true,
}

// Entry is a vocabulary term with its corpus frequency.
type Entry struct {
	Term      string
	Frequency int
}

// Index is an immutable vocabulary built from the recipe corpus. Lookups
// are safe for concurrent use; a new corpus requires building a new Index.
type Index struct {
	entries map[string]int

	// terms sorted lexicographically, for prefix scans and deterministic
	// iteration order.
	sorted []string

	// terms bucketed by rune length, for edit-distance candidate pruning.
	byLength map[int][]string

	builtAt time.Time
}

// Tokenize splits text into lowercase words, trims surrounding punctuation,
// and drops stop words and empty tokens.
func Tokenize(text string) []string {
	words := strings.Fields(text)
	filtered := make([]string, 0, len(words))

	for _, word := range words {
		cleaned := strings.ToLower(strings.Trim(word, ".,!?;:'\"-()[]{}"))

		if cleaned != "" && !stopWords[cleaned] {
			filtered = append(filtered, cleaned)
		}
	}

	return filtered
}

// BuildIndex scans every recipe in the repository and builds a vocabulary
// from recipe names and ingredient lists. Term frequency counts every
// occurrence, not distinct recipes.
func BuildIndex(ctx context.Context, recipes storage.RecipeRepository) (*Index, error) {
	counts := make(map[string]int)

	err := recipes.IterateRecipes(ctx, func(recipe *core.Recipe) (bool, error) {
		for _, term := range Tokenize(recipe.Name) {
			counts[term]++
		}
		for _, ingredient := range recipe.Ingredients {
			for _, term := range Tokenize(ingredient) {
				counts[term]++
			}
		}
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("building vocabulary: %w", err)
	}

	index := newIndex(counts)

	slog.Debug("vocabulary built",
		slog.String("component", "vocab"),
		slog.Int("terms", len(index.sorted)))

	return index, nil
}

// NewIndexFromCounts builds an Index directly from a term frequency map.
// Mostly useful in tests.
func NewIndexFromCounts(counts map[string]int) *Index {
	copied := make(map[string]int, len(counts))
	for term, freq := range counts {
		copied[term] = freq
	}
	return newIndex(copied)
}

func newIndex(counts map[string]int) *Index {
	sorted := make([]string, 0, len(counts))
	byLength := make(map[int][]string)

	for term := range counts {
		sorted = append(sorted, term)
		length := len([]rune(term))
		byLength[length] = append(byLength[length], term)
	}
	sort.Strings(sorted)
	for _, terms := range byLength {
		sort.Strings(terms)
	}

	return &Index{
		entries:  counts,
		sorted:   sorted,
		byLength: byLength,
		builtAt:  time.Now(),
	}
}

// Frequency returns the corpus frequency of term, or 0 if the term is
// not in the vocabulary.
func (x *Index) Frequency(term string) int {
	return x.entries[term]
}

// Contains reports whether term is in the vocabulary.
func (x *Index) Contains(term string) bool {
	_, ok := x.entries[term]
	return ok
}

// Size returns the number of distinct terms.
func (x *Index) Size() int {
	return len(x.sorted)
}

// BuiltAt returns when the index was constructed.
func (x *Index) BuiltAt() time.Time {
	return x.builtAt
}

// TermsWithPrefix returns vocabulary entries whose term starts with
// prefix, in lexicographic order.
func (x *Index) TermsWithPrefix(prefix string) []Entry {
	start := sort.SearchStrings(x.sorted, prefix)

	var matches []Entry
	for i := start; i < len(x.sorted); i++ {
		if !strings.HasPrefix(x.sorted[i], prefix) {
			break
		}
		matches = append(matches, Entry{Term: x.sorted[i], Frequency: x.entries[x.sorted[i]]})
	}
	return matches
}

// TermsByLength returns vocabulary terms whose rune length falls within
// [minLen, maxLen], in lexicographic order.
func (x *Index) TermsByLength(minLen, maxLen int) []string {
	var terms []string
	for length := minLen; length <= maxLen; length++ {
		terms = append(terms, x.byLength[length]...)
	}
	return terms
}
