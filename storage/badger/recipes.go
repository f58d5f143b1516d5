package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/tastory/tastory/core"
	"github.com/tastory/tastory/storage"
)

// RecipeRepository implements storage.RecipeRepository for BadgerDB.
type RecipeRepository struct {
	backend *Backend
}

var _ storage.RecipeRepository = (*RecipeRepository)(nil)

// NewRecipeRepository creates a new RecipeRepository.
func NewRecipeRepository(backend *Backend) (storage.RecipeRepository, error) {
	return &RecipeRepository{backend: backend}, nil
}

// Close implements storage.RecipeRepository. The backend owns the
// database handle, so there is nothing to release here.
func (r *RecipeRepository) Close() error {
	return nil
}

// FindSimilar delegates to the backend.
func (r *RecipeRepository) FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*storage.RecipeMatch, error) {
	return r.backend.FindSimilar(ctx, vector, minSimilarity, limit)
}

// AddRecipes loads one or more recipes into the corpus.
func (r *RecipeRepository) AddRecipes(ctx context.Context, recipes ...*core.Recipe) ([]*core.Recipe, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, recipe := range recipes {
			if err := core.ValidateRecipe(recipe); err != nil {
				return err
			}

			// Content-based ID keeps repeated corpus loads idempotent
			if recipe.Id == 0 {
				recipe.Id = core.IDFromContent(recipe.Name + "|" + recipe.URL)
			}

			if recipe.InsertedAt.IsZero() {
				recipe.InsertedAt = time.Now().UTC()
			}
			recipe.UpdatedAt = time.Now().UTC()

			key := makeRecipeKey(recipe.Id)
			value := storage.MarshalRecipe(recipe)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return recipes, err
}

// GetRecipe retrieves a single recipe by ID.
func (r *RecipeRepository) GetRecipe(ctx context.Context, id core.ID) (*core.Recipe, error) {
	var result *core.Recipe
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = r.readRecipe(tx, makeRecipeKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetRecipes retrieves multiple recipes by their IDs.
func (r *RecipeRepository) GetRecipes(ctx context.Context, ids ...core.ID) ([]*core.Recipe, error) {
	var result []*core.Recipe
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			recipe, err := r.readRecipe(tx, makeRecipeKey(id))
			if err != nil {
				return err
			}
			if recipe != nil {
				result = append(result, recipe)
			}
		}
		return nil
	}, false)
	return result, err
}

// IterateRecipes calls fn for every recipe in the corpus.
func (r *RecipeRepository) IterateRecipes(ctx context.Context, fn func(recipe *core.Recipe) (bool, error)) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(recipeRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			var recipe *core.Recipe
			err := iter.Item().Value(func(val []byte) error {
				var err error
				recipe, err = storage.UnmarshalRecipe(val)
				return err
			})
			if err != nil {
				return err
			}
			if recipe == nil {
				continue
			}

			cont, err := fn(recipe)
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}
		}
		return nil
	}, false)
}

// readRecipe reads a recipe by key within a transaction.
// Returns nil, nil when the key does not exist.
func (r *RecipeRepository) readRecipe(tx *badger.Txn, key []byte) (*core.Recipe, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var recipe *core.Recipe
	err = item.Value(func(val []byte) error {
		var err error
		recipe, err = storage.UnmarshalRecipe(val)
		return err
	})
	return recipe, err
}
