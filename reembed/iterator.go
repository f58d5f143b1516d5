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


package reembed

import (
	"context"

	"github.com/tastory/tastory/core"
	"github.com/tastory/tastory/storage"
)

// DefaultBatchSize is the default number of recipes per batch.
const DefaultBatchSize = 100

// RecipeIterator streams the recipe corpus in batches.
type RecipeIterator struct {
	repo      storage.RecipeRepository
	batchSize int
}

// NewRecipeIterator creates a new recipe iterator.
// batchSize: number of recipes per batch (must be > 0)
func NewRecipeIterator(repo storage.RecipeRepository, batchSize int) *RecipeIterator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &RecipeIterator{
		repo:      repo,
		batchSize: batchSize,
	}
}

// ForEach walks the whole corpus, calling fn for each batch. Iteration
// stops on the first error from fn. Context cancellation is honored by
// the underlying corpus scan.
func (it *RecipeIterator) ForEach(ctx context.Context, fn func([]*core.Recipe) error) error {
	batch := make([]*core.Recipe, 0, it.batchSize)

	err := it.repo.IterateRecipes(ctx, func(recipe *core.Recipe) (bool, error) {
		batch = append(batch, recipe)
		if len(batch) == it.batchSize {
			if err := fn(batch); err != nil {
				return false, err
			}
			batch = batch[:0]
		}
		return true, nil
	})
	if err != nil {
		return err
	}

	if len(batch) > 0 {
		return fn(batch)
	}
	return nil
}

// Count returns the number of recipes in the corpus.
func (it *RecipeIterator) Count(ctx context.Context) (int, error) {
	count := 0
	err := it.repo.IterateRecipes(ctx, func(_ *core.Recipe) (bool, error) {
		count++
		return true, nil
	})
	return count, err
}
