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


package tastory

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tastory/tastory/ai"
	"github.com/tastory/tastory/ai/openai"
	"github.com/tastory/tastory/core"
	"github.com/tastory/tastory/querylog"
	"github.com/tastory/tastory/search"
	"github.com/tastory/tastory/spell"
	"github.com/tastory/tastory/storage"
	"github.com/tastory/tastory/storage/badger"
	"github.com/tastory/tastory/suggest"
	"github.com/tastory/tastory/trending"
	"github.com/tastory/tastory/vocab"
)

// Engine wires the recipe corpus, retrieval, suggestions, query logging,
// and trending aggregation into one unit with a shared lifecycle.
type Engine struct {
	backend      *badger.Backend
	recipeRepo   storage.RecipeRepository
	queryLogRepo storage.QueryLogRepository
	snapshots    *badger.SnapshotStore
	provider     ai.EmbeddingProvider

	vocabulary  *vocab.Holder
	corrector   *spell.Corrector
	suggester   *suggest.Suggester
	searcher    *search.Searcher
	queryLogger *querylog.Logger

	trendingCache *trending.Cache
	aggregator    *trending.Aggregator
	scheduler     *trending.Scheduler

	logger *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	aiConfig         *ai.Config
	inMemory         bool
	trendingInterval time.Duration
}

// WithAIConfig sets the embedding service configuration.
// Default is ai.DefaultConfig().
func WithAIConfig(config *ai.Config) EngineOption {
	return func(o *engineOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithInMemoryStorage keeps all state in memory. Intended for tests and
// experiments; nothing survives Close.
func WithInMemoryStorage() EngineOption {
	return func(o *engineOptions) {
		o.inMemory = true
	}
}

// WithTrendingInterval sets the gap between scheduled trending runs.
// Default is the trending package default.
func WithTrendingInterval(interval time.Duration) EngineOption {
	return func(o *engineOptions) {
		o.trendingInterval = interval
	}
}

// NewEngine opens the corpus at filePath and assembles the full search
// stack. The trending scheduler is created but not started; call
// StartTrending once the process is ready to serve.
func NewEngine(filePath string, opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	recipeRepo, err := badger.NewRecipeRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	queryLogRepo, err := badger.NewQueryLogRepository(backend)
	if err != nil {
		recipeRepo.Close()
		backend.Close()
		return nil, err
	}

	snapshots := badger.NewSnapshotStore(backend)

	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		queryLogRepo.Close()
		recipeRepo.Close()
		backend.Close()
		return nil, err
	}

	// The breaker turns a flapping embedding service into fast failures
	// instead of piles of timed-out requests.
	embedder := ai.WrapWithBreaker(provider.Embedder(), "embedding")

	vocabulary := vocab.NewHolder()
	corrector := spell.NewCorrector(vocabulary)
	suggester := suggest.NewSuggester(vocabulary)

	queryLogger, err := querylog.NewLogger(queryLogRepo)
	if err != nil {
		provider.Close()
		queryLogRepo.Close()
		recipeRepo.Close()
		backend.Close()
		return nil, err
	}

	searcher, err := search.NewSearcher(recipeRepo, embedder,
		search.WithCorrector(corrector),
		search.WithQueryRecorder(queryLogger))
	if err != nil {
		queryLogger.Close()
		provider.Close()
		queryLogRepo.Close()
		recipeRepo.Close()
		backend.Close()
		return nil, err
	}

	trendingCache := trending.NewCache()

	// Restore last-known-good trending so /trending is useful before the
	// first aggregation run finishes.
	if persisted, err := snapshots.LoadSnapshot(context.Background()); err != nil {
		slog.Warn("error loading persisted trending snapshot", "err", err)
	} else if persisted != nil {
		trendingCache.Publish(persisted)
	}

	aggregator, err := trending.NewAggregator(queryLogRepo, trendingCache,
		trending.WithSnapshotStore(snapshots))
	if err != nil {
		queryLogger.Close()
		provider.Close()
		queryLogRepo.Close()
		recipeRepo.Close()
		backend.Close()
		return nil, err
	}

	var schedulerOpts []trending.SchedulerOption
	if options.trendingInterval > 0 {
		schedulerOpts = append(schedulerOpts, trending.WithInterval(options.trendingInterval))
	}
	scheduler := trending.NewScheduler(aggregator, schedulerOpts...)

	return &Engine{
		backend:       backend,
		recipeRepo:    recipeRepo,
		queryLogRepo:  queryLogRepo,
		snapshots:     snapshots,
		provider:      provider,
		vocabulary:    vocabulary,
		corrector:     corrector,
		suggester:     suggester,
		searcher:      searcher,
		queryLogger:   queryLogger,
		trendingCache: trendingCache,
		aggregator:    aggregator,
		scheduler:     scheduler,
		logger:        slog.Default(),
	}, nil
}

// RebuildVocabulary scans the corpus and publishes a fresh vocabulary
// index for spell correction and autocomplete.
func (e *Engine) RebuildVocabulary(ctx context.Context) error {
	index, err := vocab.BuildIndex(ctx, e.recipeRepo)
	if err != nil {
		return err
	}
	e.vocabulary.Publish(index)
	e.logger.Info("vocabulary published", "terms", index.Size())
	return nil
}

// LoadRecipes embeds and stores recipes, then rebuilds the vocabulary.
// Recipes that already carry a vector are stored as-is.
func (e *Engine) LoadRecipes(ctx context.Context, recipes ...*core.Recipe) ([]*core.Recipe, error) {
	var texts []string
	var missing []*core.Recipe
	for _, recipe := range recipes {
		if len(recipe.Vector) == 0 {
			texts = append(texts, recipe.EmbeddingText())
			missing = append(missing, recipe)
		}
	}

	if len(missing) > 0 {
		vectors, err := e.provider.Embedder().EmbedTexts(ctx, texts)
		if err != nil {
			return nil, fmt.Errorf("embedding recipes: %w", err)
		}
		if len(vectors) != len(missing) {
			return nil, fmt.Errorf("embedding recipes: got %d vectors for %d recipes", len(vectors), len(missing))
		}
		for i, recipe := range missing {
			recipe.Vector = vectors[i]
		}
	}

	added, err := e.recipeRepo.AddRecipes(ctx, recipes...)
	if err != nil {
		return nil, err
	}

	if err := e.RebuildVocabulary(ctx); err != nil {
		return nil, err
	}
	return added, nil
}

// StartTrending launches the periodic trending aggregation.
func (e *Engine) StartTrending() {
	e.scheduler.Start()
}

// Searcher returns the hybrid searcher.
func (e *Engine) Searcher() *search.Searcher {
	return e.searcher
}

// Suggester returns the autocomplete suggester.
func (e *Engine) Suggester() *suggest.Suggester {
	return e.suggester
}

// Corrector returns the spell corrector.
func (e *Engine) Corrector() *spell.Corrector {
	return e.corrector
}

// TrendingCache returns the published trending snapshot holder.
func (e *Engine) TrendingCache() *trending.Cache {
	return e.trendingCache
}

// TrendingScheduler returns the trending scheduler for manual triggers.
func (e *Engine) TrendingScheduler() *trending.Scheduler {
	return e.scheduler
}

// RecipeRepository returns the recipe corpus.
func (e *Engine) RecipeRepository() storage.RecipeRepository {
	return e.recipeRepo
}

// QueryLogRepository returns the append-only search log.
func (e *Engine) QueryLogRepository() storage.QueryLogRepository {
	return e.queryLogRepo
}

// Close stops background work and releases every resource.
func (e *Engine) Close() error {
	e.scheduler.Stop()
	e.queryLogger.Close()

	if err := e.provider.Close(); err != nil {
		e.logger.Error("error closing embedding provider", "err", err)
	}

	if err := e.queryLogRepo.Close(); err != nil {
		e.logger.Error("error closing query log repository", "err", err)
		return err
	}
	if err := e.recipeRepo.Close(); err != nil {
		e.logger.Error("error closing recipe repository", "err", err)
		return err
	}

	if err := e.backend.Close(); err != nil {
		e.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}
