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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/tastory/tastory"
	"github.com/tastory/tastory/ai"
	"github.com/tastory/tastory/ai/openai"
	"github.com/tastory/tastory/reembed"
	"github.com/tastory/tastory/server"
	"github.com/tastory/tastory/storage/badger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "tastory",
		Usage: "Recipe search and discovery engine",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP search service",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB corpus directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "host",
						Usage: "HTTP listen host",
						Value: "0.0.0.0",
					},
					&cli.IntFlag{
						Name:    "port",
						Aliases: []string{"p"},
						Usage:   "HTTP listen port",
						Value:   8080,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "all-minilm",
					},
					&cli.DurationFlag{
						Name:  "trending-interval",
						Usage: "Gap between trending aggregation runs",
						Value: 15 * time.Minute,
					},
				},
			},
			{
				Name:   "trend",
				Usage:  "Run one trending aggregation pass and print the snapshot",
				Action: trendCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB corpus directory",
						Required: true,
					},
				},
			},
			{
				Name:   "rebuild-vocab",
				Usage:  "Rebuild the vocabulary index from the recipe corpus",
				Action: rebuildVocabCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB corpus directory",
						Required: true,
					},
				},
			},
			{
				Name:   "reembed",
				Usage:  "Reembed all recipes with new embeddings",
				Action: reembedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB corpus directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:     "embedding-model",
						Usage:    "Embedding model name",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of recipes to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N recipes",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Run one search against the corpus and print results",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB corpus directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "all-minilm",
					},
					&cli.IntFlag{
						Name:  "page",
						Usage: "Result page to print",
						Value: 1,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openEngine(c *cli.Context) (*tastory.Engine, error) {
	var configOpts []ai.ConfigOption
	if host := c.String("embedding-host"); host != "" {
		configOpts = append(configOpts, ai.WithEmbeddingHost(host))
	}
	if model := c.String("embedding-model"); model != "" {
		configOpts = append(configOpts, ai.WithEmbeddingModel(model))
	}
	aiConfig := ai.NewConfig(configOpts...)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid embedding configuration: %w", err)
	}

	opts := []tastory.EngineOption{tastory.WithAIConfig(aiConfig)}
	if interval := c.Duration("trending-interval"); interval > 0 {
		opts = append(opts, tastory.WithTrendingInterval(interval))
	}

	engine, err := tastory.NewEngine(c.String("db"), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus: %w", err)
	}
	return engine, nil
}

func serveCommand(c *cli.Context) error {
	engine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	ctx := context.Background()
	if err := engine.RebuildVocabulary(ctx); err != nil {
		return fmt.Errorf("failed to build vocabulary: %w", err)
	}

	engine.StartTrending()

	config := server.DefaultConfig()
	config.Host = c.String("host")
	config.Port = c.Int("port")

	srv := server.New(config, engine.Searcher(), engine.Suggester(), engine.TrendingCache())
	srv.Setup()

	errs := make(chan error, 1)
	go func() {
		errs <- srv.Start()
	}()
	slog.Info("serving", "host", config.Host, "port", config.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errs:
		return err
	case sig := <-quit:
		slog.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return srv.Stop(shutdownCtx)
}

func trendCommand(c *cli.Context) error {
	engine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	ctx := context.Background()
	if err := engine.TrendingScheduler().Trigger(ctx); err != nil {
		return fmt.Errorf("aggregation failed: %w", err)
	}

	snapshot := engine.TrendingCache().Current()
	if snapshot == nil || len(snapshot.Items) == 0 {
		fmt.Println("no trending queries")
		return nil
	}

	fmt.Printf("Trending queries as of %s (computed in %dms):\n",
		snapshot.LastUpdated.Format(time.RFC3339), snapshot.ComputationDurationMs)
	for i, item := range snapshot.Items {
		fmt.Printf("%2d. %-30s count=%-4d score=%-6.2f trend=%s", i+1, item.Query, item.Count, item.Score, item.Trend)
		if item.HasPrevious {
			fmt.Printf(" (%+.1f%%)", item.PercentChange)
		}
		fmt.Println()
	}
	return nil
}

func rebuildVocabCommand(c *cli.Context) error {
	engine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	if err := engine.RebuildVocabulary(context.Background()); err != nil {
		return fmt.Errorf("failed to rebuild vocabulary: %w", err)
	}
	return nil
}

func reembedCommand(c *cli.Context) error {
	ctx := context.Background()

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open corpus: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewRecipeRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid embedding configuration: %w", err)
	}

	embedder, err := openai.NewEmbedder(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	reembedConfig := &reembed.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}

	if reembedConfig.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if reembedConfig.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if reembedConfig.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	reembedder := reembed.NewReembedder(repo, embedder, reembedConfig, os.Stderr)
	return reembedder.Run(ctx)
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query argument is required")
	}

	engine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	ctx := context.Background()
	if err := engine.RebuildVocabulary(ctx); err != nil {
		return fmt.Errorf("failed to build vocabulary: %w", err)
	}

	page, err := engine.Searcher().Search(ctx, query, c.Int("page"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if page.Correction != nil {
		fmt.Printf("Showing results for %q\n", page.Correction.Corrected)
	}
	fmt.Printf("%d results, page %d of %d\n", page.TotalResults, page.CurrentPage, page.TotalPages)
	for i, result := range page.Results {
		fmt.Printf("%2d. %-40s rating=%.1f (%d reviews) score=%.3f\n",
			i+1, result.Name, result.Rating, result.ReviewCount, result.Score)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
