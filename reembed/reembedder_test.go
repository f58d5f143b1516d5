package reembed

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tastory/tastory/core"
)

func TestReembedder_Run(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	addTestRecipes(t, repo, 10)

	var buf bytes.Buffer
	embedder := &mockEmbedder{}
	config := &Config{
		BatchSize:      3,
		ReportInterval: 3,
		MaxRetries:     3,
		RetryDelay:     10 * time.Millisecond,
	}

	reembedder := NewReembedder(repo, embedder, config, &buf)
	err := reembedder.Run(ctx)
	require.NoError(t, err)

	// Verify every recipe carries a normalized embedding
	checked := 0
	err = repo.IterateRecipes(ctx, func(recipe *core.Recipe) (bool, error) {
		checked++
		require.NotEmpty(t, recipe.Vector, "recipe %d should have embedding", recipe.Id)

		var magnitude float32
		for _, v := range recipe.Vector {
			magnitude += v * v
		}
		assert.InDelta(t, 1.0, magnitude, 0.01, "vector should be normalized")
		return true, nil
	})
	require.NoError(t, err)
	require.Equal(t, 10, checked)

	output := buf.String()
	assert.Contains(t, output, "10/10", "should show completion")
}

func TestReembedder_EmptyCorpus(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	var buf bytes.Buffer
	embedder := &mockEmbedder{}
	config := DefaultConfig()

	reembedder := NewReembedder(repo, embedder, config, &buf)
	err := reembedder.Run(ctx)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "0 recipes", "should report an empty corpus")
}

func TestReembedder_ContextCancellation(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addTestRecipes(t, repo, 10)

	// Cancel after processing a couple of batches
	callCount := 0
	embedder := &mockEmbedder{
		embedTextsFunc: func(ctx context.Context, texts []string) ([][]float32, error) {
			callCount++
			if callCount == 2 {
				cancel()
			}
			result := make([][]float32, len(texts))
			for i := range result {
				result[i] = []float32{1.0, 0.0, 0.0}
			}
			return result, nil
		},
	}

	var buf bytes.Buffer
	config := &Config{
		BatchSize:      3,
		ReportInterval: 3,
		MaxRetries:     3,
		RetryDelay:     10 * time.Millisecond,
	}

	reembedder := NewReembedder(repo, embedder, config, &buf)
	err := reembedder.Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReembedder_EmbeddingError(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	addTestRecipes(t, repo, 1)

	// Embedder that always fails
	embedder := &mockEmbedder{
		embedTextsFunc: func(ctx context.Context, texts []string) ([][]float32, error) {
			return nil, errors.New("persistent error")
		},
	}

	var buf bytes.Buffer
	config := &Config{
		BatchSize:      1,
		ReportInterval: 1,
		MaxRetries:     2,
		RetryDelay:     10 * time.Millisecond,
	}

	reembedder := NewReembedder(repo, embedder, config, &buf)
	err := reembedder.Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "persistent error")
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Greater(t, config.BatchSize, 0, "batch size should be positive")
	assert.Greater(t, config.ReportInterval, 0, "report interval should be positive")
	assert.Greater(t, config.MaxRetries, 0, "max retries should be positive")
	assert.Greater(t, config.RetryDelay, time.Duration(0), "retry delay should be positive")
}

func TestReembedder_ProgressTracking(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	addTestRecipes(t, repo, 25)

	var buf bytes.Buffer
	embedder := &mockEmbedder{}
	config := &Config{
		BatchSize:      5,
		ReportInterval: 10, // Report every 10 recipes
		MaxRetries:     3,
		RetryDelay:     10 * time.Millisecond,
	}

	reembedder := NewReembedder(repo, embedder, config, &buf)
	err := reembedder.Run(ctx)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Progress:", "should show progress")
	assert.Contains(t, output, "25/25", "should show final count")
}
