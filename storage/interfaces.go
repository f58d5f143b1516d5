package storage

import (
	"context"
	"time"

	"github.com/tastory/tastory/core"
)

// RecipeRepository provides read and load operations over the recipe corpus.
// Implementations must be thread-safe and support concurrent access.
type RecipeRepository interface {
	// AddRecipes loads one or more recipes into the corpus.
	// Recipes with Id=0 get a content-based ID derived from the name.
	// Sets InsertedAt timestamp if not already set.
	// Returns the recipes with IDs and timestamps populated.
	AddRecipes(ctx context.Context, recipes ...*core.Recipe) ([]*core.Recipe, error)

	// GetRecipe retrieves a single recipe by ID.
	// Returns ErrNotFound if the recipe doesn't exist.
	GetRecipe(ctx context.Context, id core.ID) (*core.Recipe, error)

	// GetRecipes retrieves multiple recipes by their IDs.
	// Returns only the recipes that exist (no error for missing recipes).
	GetRecipes(ctx context.Context, ids ...core.ID) ([]*core.Recipe, error)

	// IterateRecipes calls fn for every recipe in the corpus.
	// Iteration stops when fn returns false or an error.
	// Used by out-of-band index builds, never on the request path.
	IterateRecipes(ctx context.Context, fn func(recipe *core.Recipe) (bool, error)) error

	// FindSimilar finds recipes similar to the given vector.
	// Returns recipes with similarity >= minSimilarity, up to limit results,
	// ordered by similarity score (highest first).
	FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*RecipeMatch, error)

	// Close closes the repository and releases resources.
	Close() error
}

// RecipeMatch is a recipe returned by vector similarity search.
type RecipeMatch struct {
	Recipe *core.Recipe
	Score  float32
}

// QueryLogRepository provides the append-only search log.
// Entries are never updated or deleted.
type QueryLogRepository interface {
	// AppendEntries appends one or more log entries.
	// Entries get sequence-based IDs; caller-provided timestamps are
	// preserved so the aggregator can window on query time.
	// Identical queries in the same instant produce distinct entries.
	AppendEntries(ctx context.Context, entries ...*core.QueryLogEntry) ([]*core.QueryLogEntry, error)

	// GetEntriesByTimeRange retrieves entries where start <= Timestamp < end,
	// ordered by timestamp. Tolerates out-of-order writers: ordering comes
	// from the time index, not from insertion order.
	GetEntriesByTimeRange(ctx context.Context, start, end time.Time) ([]*core.QueryLogEntry, error)

	// Close closes the repository and releases resources.
	Close() error
}

// SnapshotStore persists the current trending snapshot so the last
// published artifact survives restarts.
type SnapshotStore interface {
	// SaveSnapshot persists the snapshot, replacing any previous one.
	SaveSnapshot(ctx context.Context, snapshot *core.TrendingSnapshot) error

	// LoadSnapshot retrieves the persisted snapshot.
	// Returns nil, nil if no snapshot has been saved.
	LoadSnapshot(ctx context.Context) (*core.TrendingSnapshot, error)
}
