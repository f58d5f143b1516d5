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


package suggest

import (
	"sort"
	"strings"

	"github.com/tastory/tastory/vocab"
)

const (
	// minPrefixLength is the shortest prefix that produces suggestions.
	minPrefixLength = 2

	// maxSuggestions bounds the result size.
	maxSuggestions = 10
)

// Suggester produces autocomplete completions from the published
// vocabulary.
type Suggester struct {
	vocabulary *vocab.Holder
}

// NewSuggester returns a Suggester reading from the given vocabulary
// holder.
func NewSuggester(vocabulary *vocab.Holder) *Suggester {
	return &Suggester{vocabulary: vocabulary}
}

// Suggest returns up to ten vocabulary terms starting with prefix,
// most frequent first with ties broken alphabetically. Prefixes shorter
// than two characters return no suggestions. Matching is
// case-insensitive.
func (s *Suggester) Suggest(prefix string) []string {
	index := s.vocabulary.Current()
	if index == nil {
		return nil
	}

	normalized := strings.ToLower(strings.TrimSpace(prefix))
	if len([]rune(normalized)) < minPrefixLength {
		return nil
	}

	matches := index.TermsWithPrefix(normalized)

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Frequency != matches[j].Frequency {
			return matches[i].Frequency > matches[j].Frequency
		}
		return matches[i].Term < matches[j].Term
	})

	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}

	terms := make([]string, len(matches))
	for i, match := range matches {
		terms[i] = match.Term
	}
	return terms
}
