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


package core

import (
	"fmt"
	"time"
)

// ValidateRecipe validates a Recipe according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//
// NOT validated (owned by the corpus, populated out-of-band):
//   - Vector (can be empty until the corpus embeds the recipe)
//   - Image, Nutrition, AdditionalInfo (optional fields)
//   - ID (0 is valid before assignment)
func ValidateRecipe(recipe *Recipe) error {
	if recipe == nil {
		return fmt.Errorf("%w: recipe is nil", ErrInvalidRecipe)
	}

	if recipe.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecipe, ErrEmptyRecipeName)
	}

	return nil
}

// ValidateQueryLogEntry validates a QueryLogEntry according to domain rules.
//
// Validation rules:
//   - NormalizedQuery must not be empty
//   - ResultCount must not be negative
//   - Timestamp must not be in the future
func ValidateQueryLogEntry(entry *QueryLogEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidQueryLogEntry)
	}

	if entry.NormalizedQuery == "" {
		return fmt.Errorf("%w: %w", ErrInvalidQueryLogEntry, ErrEmptyQuery)
	}

	if entry.ResultCount < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidQueryLogEntry, ErrNegativeResultCount)
	}

	if !IsValidTimestamp(entry.Timestamp) {
		return fmt.Errorf("%w: %w", ErrInvalidQueryLogEntry, ErrInvalidTimestamp)
	}

	return nil
}

// ValidateTrendDirection validates a TrendDirection value.
func ValidateTrendDirection(direction TrendDirection) error {
	switch direction {
	case TrendStable, TrendUp, TrendDown:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrInvalidTrendDirection, direction)
	}
}

// IsValidTimestamp reports whether a timestamp is not in the future.
// A small clock-skew allowance is applied for entries written by
// concurrent workers with slightly differing clocks.
func IsValidTimestamp(timestamp time.Time) bool {
	return !timestamp.After(time.Now().UTC().Add(5 * time.Second))
}
