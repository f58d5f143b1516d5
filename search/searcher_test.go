package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tastory/tastory/ai/mock"
	"github.com/tastory/tastory/core"
	"github.com/tastory/tastory/storage/badger"
	"github.com/tastory/tastory/vocab"
)

// fixedEmbedder returns the same unit vector for every query so corpus
// similarity depends only on the stored recipe vectors.
func fixedEmbedder(vector []float32) *mock.MockEmbedder {
	return &mock.MockEmbedder{
		EmbedTextFunc: func(_ context.Context, _ string) ([]float32, error) {
			return vector, nil
		},
	}
}

type capturingRecorder struct {
	mu      sync.Mutex
	entries []core.QueryLogEntry
}

func (r *capturingRecorder) Log(rawQuery, normalizedQuery string, resultCount int, sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, core.QueryLogEntry{
		RawQuery:        rawQuery,
		NormalizedQuery: normalizedQuery,
		ResultCount:     resultCount,
		SessionId:       sessionID,
	})
}

func TestNewSearcher(t *testing.T) {
	recipes, _, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		recipes.Close()
		backend.Close()
	}()

	embedder := mock.NewMockEmbedder()

	t.Run("valid configuration", func(t *testing.T) {
		searcher, err := NewSearcher(recipes, embedder)
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("with custom logger", func(t *testing.T) {
		searcher, err := NewSearcher(recipes, embedder, WithLogger(slog.Default()))
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("nil recipe repository", func(t *testing.T) {
		_, err := NewSearcher(nil, embedder)
		assert.Equal(t, ErrRecipeRepositoryRequired, err)
	})

	t.Run("nil embedder", func(t *testing.T) {
		_, err := NewSearcher(recipes, nil)
		assert.Equal(t, ErrEmbedderRequired, err)
	})
}

func TestSearch_EmptyQuery(t *testing.T) {
	recipes, _, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		recipes.Close()
		backend.Close()
	}()

	searcher, err := NewSearcher(recipes, mock.NewMockEmbedder())
	require.NoError(t, err)

	for _, query := range []string{"", "   ", "\t\n"} {
		page, err := searcher.Search(context.Background(), query, 1)
		require.NoError(t, err)
		assert.Empty(t, page.Results)
		assert.Equal(t, 0, page.TotalResults)
		assert.Equal(t, 0, page.TotalPages)
		assert.Equal(t, 1, page.CurrentPage)
	}
}

func TestSearch_RanksByBlendedScore(t *testing.T) {
	recipes, queryLog, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		queryLog.Close()
		recipes.Close()
		backend.Close()
	}()

	ctx := context.Background()
	_, err = recipes.AddRecipes(ctx,
		&core.Recipe{
			Name:        "Chicken Biryani",
			Ingredients: []string{"chicken", "basmati rice"},
			Vector:      []float32{1, 0, 0},
		},
		&core.Recipe{
			Name:        "Butter Chicken",
			Ingredients: []string{"chicken", "butter"},
			Vector:      []float32{0.8, 0.6, 0},
		},
		&core.Recipe{
			Name:        "Greek Salad",
			Ingredients: []string{"cucumber", "feta"},
			Vector:      []float32{0, 1, 0},
		},
	)
	require.NoError(t, err)

	searcher, err := NewSearcher(recipes, fixedEmbedder([]float32{1, 0, 0}))
	require.NoError(t, err)

	page, err := searcher.Search(ctx, "chicken biryani", 1)
	require.NoError(t, err)

	// Greek Salad sits below the similarity floor; the biryani wins on
	// both signals.
	require.Len(t, page.Results, 2)
	assert.Equal(t, "Chicken Biryani", page.Results[0].Name)
	assert.Equal(t, "Butter Chicken", page.Results[1].Name)
	assert.Greater(t, page.Results[0].Score, page.Results[1].Score)
	assert.Equal(t, 2, page.TotalResults)
	assert.Equal(t, 1, page.TotalPages)
	assert.Nil(t, page.Correction)
}

func TestSearch_Deterministic(t *testing.T) {
	recipes, _, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		recipes.Close()
		backend.Close()
	}()

	ctx := context.Background()
	for i := 0; i < 30; i++ {
		_, err = recipes.AddRecipes(ctx, &core.Recipe{
			Name:        fmt.Sprintf("Chicken Dish %02d", i),
			Ingredients: []string{"chicken"},
			Vector:      []float32{1, 0, 0},
		})
		require.NoError(t, err)
	}

	searcher, err := NewSearcher(recipes, fixedEmbedder([]float32{1, 0, 0}))
	require.NoError(t, err)

	first, err := searcher.Search(ctx, "chicken", 1)
	require.NoError(t, err)
	second, err := searcher.Search(ctx, "chicken", 1)
	require.NoError(t, err)

	// Every recipe scores identically, so ordering falls back to Id and
	// must not change between runs.
	require.Equal(t, len(first.Results), len(second.Results))
	for i := range first.Results {
		assert.Equal(t, first.Results[i].Id, second.Results[i].Id)
	}
	for i := 1; i < len(first.Results); i++ {
		assert.Less(t, uint64(first.Results[i-1].Id), uint64(first.Results[i].Id))
	}
}

func TestSearch_Pagination(t *testing.T) {
	recipes, _, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		recipes.Close()
		backend.Close()
	}()

	ctx := context.Background()
	for i := 0; i < 30; i++ {
		_, err = recipes.AddRecipes(ctx, &core.Recipe{
			Name:        fmt.Sprintf("Chicken Dish %02d", i),
			Ingredients: []string{"chicken"},
			Vector:      []float32{1, 0, 0},
		})
		require.NoError(t, err)
	}

	searcher, err := NewSearcher(recipes, fixedEmbedder([]float32{1, 0, 0}))
	require.NoError(t, err)

	page1, err := searcher.Search(ctx, "chicken", 1)
	require.NoError(t, err)
	assert.Len(t, page1.Results, PageSize)
	assert.Equal(t, 30, page1.TotalResults)
	assert.Equal(t, 3, page1.TotalPages)
	assert.Equal(t, 1, page1.CurrentPage)

	page3, err := searcher.Search(ctx, "chicken", 3)
	require.NoError(t, err)
	assert.Len(t, page3.Results, 6)
	assert.Equal(t, 3, page3.CurrentPage)

	// Pages never overlap.
	seen := make(map[core.ID]bool)
	for _, page := range []*core.SearchPage{page1, page3} {
		for _, result := range page.Results {
			assert.False(t, seen[result.Id], "recipe %d appeared on two pages", result.Id)
			seen[result.Id] = true
		}
	}

	t.Run("page below range clamps to first", func(t *testing.T) {
		page, err := searcher.Search(ctx, "chicken", -5)
		require.NoError(t, err)
		assert.Equal(t, 1, page.CurrentPage)
		assert.Len(t, page.Results, PageSize)
	})

	t.Run("page above range clamps to last", func(t *testing.T) {
		page, err := searcher.Search(ctx, "chicken", 99)
		require.NoError(t, err)
		assert.Equal(t, 3, page.CurrentPage)
		assert.Len(t, page.Results, 6)
	})
}

func TestSearch_SpellCorrection(t *testing.T) {
	recipes, _, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		recipes.Close()
		backend.Close()
	}()

	ctx := context.Background()
	_, err = recipes.AddRecipes(ctx, &core.Recipe{
		Name:        "Chicken Biryani",
		Ingredients: []string{"chicken", "basmati rice"},
		Vector:      []float32{1, 0, 0},
	})
	require.NoError(t, err)

	holder := vocab.NewHolder()
	holder.Publish(vocab.NewIndexFromCounts(map[string]int{
		"chicken": 10,
		"biryani": 5,
	}))

	var embedded string
	embedder := &mock.MockEmbedder{
		EmbedTextFunc: func(_ context.Context, text string) ([]float32, error) {
			embedded = text
			return []float32{1, 0, 0}, nil
		},
	}

	searcher, err := NewSearcher(recipes, embedder,
		WithCorrector(stubCorrector{from: "chiken biriyani", to: "chicken biryani"}))
	require.NoError(t, err)

	page, err := searcher.Search(ctx, "Chiken  Biriyani", 1)
	require.NoError(t, err)

	require.NotNil(t, page.Correction)
	assert.Equal(t, "chiken biriyani", page.Correction.Original)
	assert.Equal(t, "chicken biryani", page.Correction.Corrected)
	assert.True(t, page.Correction.Changed)

	// The corrected query drives retrieval.
	assert.Equal(t, "chicken biryani", embedded)
}

type stubCorrector struct {
	from, to string
}

func (s stubCorrector) Correct(query string) core.Correction {
	if query == s.from {
		return core.Correction{Original: query, Corrected: s.to, Changed: true}
	}
	return core.Correction{Original: query, Corrected: query}
}

func TestSearch_EmbedderFailure(t *testing.T) {
	recipes, _, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		recipes.Close()
		backend.Close()
	}()

	embedder := &mock.MockEmbedder{
		EmbedTextFunc: func(_ context.Context, _ string) ([]float32, error) {
			return nil, errors.New("connection refused")
		},
	}

	searcher, err := NewSearcher(recipes, embedder)
	require.NoError(t, err)

	_, err = searcher.Search(context.Background(), "chicken", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRetrievalUnavailable)
}

func TestSearch_RecordsQuery(t *testing.T) {
	recipes, _, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		recipes.Close()
		backend.Close()
	}()

	ctx := context.Background()
	_, err = recipes.AddRecipes(ctx, &core.Recipe{
		Name:        "Chicken Biryani",
		Ingredients: []string{"chicken"},
		Vector:      []float32{1, 0, 0},
	})
	require.NoError(t, err)

	recorder := &capturingRecorder{}
	searcher, err := NewSearcher(recipes, fixedEmbedder([]float32{1, 0, 0}),
		WithQueryRecorder(recorder))
	require.NoError(t, err)

	ctx = WithSessionID(ctx, "session-42")
	_, err = searcher.Search(ctx, "Chicken  Biryani", 1)
	require.NoError(t, err)

	require.Len(t, recorder.entries, 1)
	entry := recorder.entries[0]
	assert.Equal(t, "chicken biryani", entry.RawQuery)
	assert.Equal(t, "chicken biryani", entry.NormalizedQuery)
	assert.Equal(t, 1, entry.ResultCount)
	assert.Equal(t, "session-42", entry.SessionId)
}
