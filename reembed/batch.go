package reembed

import (
	"context"
	"fmt"
	"time"

	"github.com/tastory/tastory/ai"
	"github.com/tastory/tastory/core"
	"github.com/tastory/tastory/storage"
)

// BatchProcessor regenerates embeddings for batches of recipes.
type BatchProcessor struct {
	repo           storage.RecipeRepository
	embedder       ai.Embedder
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewBatchProcessor creates a new batch processor.
// maxRetries: maximum number of retry attempts for embedding API calls
// retryBaseDelay: base delay for exponential backoff
func NewBatchProcessor(repo storage.RecipeRepository, embedder ai.Embedder, maxRetries int, retryBaseDelay time.Duration) *BatchProcessor {
	return &BatchProcessor{
		repo:           repo,
		embedder:       embedder,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
	}
}

// Process embeds a batch of recipes and writes them back to the corpus.
// Vectors are normalized so the corpus dot product stays a cosine.
func (bp *BatchProcessor) Process(ctx context.Context, recipes []*core.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}

	texts := make([]string, len(recipes))
	for i, recipe := range recipes {
		texts[i] = recipe.EmbeddingText()
	}

	var embeddings [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		embeddings, err = bp.embedder.EmbedTexts(ctx, texts)
		return err
	}, bp.maxRetries, bp.retryBaseDelay)
	if err != nil {
		return fmt.Errorf("failed to generate embeddings after %d attempts: %w", bp.maxRetries, err)
	}

	if len(embeddings) != len(recipes) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(recipes), len(embeddings))
	}

	for i := range recipes {
		recipes[i].Vector = NormalizeVector(embeddings[i])
	}

	// Writing an existing Id replaces the stored recipe in place
	if _, err := bp.repo.AddRecipes(ctx, recipes...); err != nil {
		return fmt.Errorf("failed to update recipes: %w", err)
	}

	return nil
}
