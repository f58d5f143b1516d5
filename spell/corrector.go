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


package spell

import (
	"strings"

	"github.com/tastory/tastory/core"
	"github.com/tastory/tastory/vocab"
)

const (
	// minWordLength is the shortest word considered for correction.
	// Shorter words pass through untouched.
	minWordLength = 3

	// longWordLength is the rune length above which a word is allowed
	// two edits instead of one.
	longWordLength = 6

	// lengthWindow bounds the rune-length difference between a word and
	// its correction candidates.
	lengthWindow = 2

	// minSupport is the minimum corpus frequency a vocabulary term needs
	// to be offered as a correction.
	minSupport = 2
)

// Corrector corrects misspelled query words against the published
// vocabulary. Correction is per word: each word is fixed independently
// and the results are rejoined.
type Corrector struct {
	vocabulary *vocab.Holder
}

// NewCorrector returns a Corrector reading from the given vocabulary
// holder.
func NewCorrector(vocabulary *vocab.Holder) *Corrector {
	return &Corrector{vocabulary: vocabulary}
}

// Correct returns the corrected form of a normalized query. When no word
// changes, Changed is false and Corrected equals Original. Queries are
// expected to already be normalized (lowercase, single-spaced).
func (c *Corrector) Correct(query string) core.Correction {
	correction := core.Correction{Original: query, Corrected: query}

	index := c.vocabulary.Current()
	if index == nil || query == "" {
		return correction
	}

	words := strings.Split(query, " ")
	changed := false
	for i, word := range words {
		if fixed := c.correctWord(index, word); fixed != word {
			words[i] = fixed
			changed = true
		}
	}

	if changed {
		correction.Corrected = strings.Join(words, " ")
		correction.Changed = true
	}
	return correction
}

// correctWord returns the best correction for a single word, or the word
// itself when it is too short, already in the vocabulary, or has no
// candidate within the edit budget.
func (c *Corrector) correctWord(index *vocab.Index, word string) string {
	length := len([]rune(word))
	if length < minWordLength {
		return word
	}
	if index.Contains(word) {
		return word
	}

	maxDistance := 1
	if length > longWordLength {
		maxDistance = 2
	}

	minLen := length - lengthWindow
	if minLen < 1 {
		minLen = 1
	}
	candidates := index.TermsByLength(minLen, length+lengthWindow)

	best := word
	bestFreq := 0
	for _, candidate := range candidates {
		freq := index.Frequency(candidate)
		if freq < minSupport {
			continue
		}
		if !levenshteinWithin(word, candidate, maxDistance) {
			continue
		}
		// Highest frequency wins; ties go to the lexicographically
		// smaller candidate.
		if freq > bestFreq || (freq == bestFreq && bestFreq > 0 && candidate < best) {
			best = candidate
			bestFreq = freq
		}
	}

	return best
}
