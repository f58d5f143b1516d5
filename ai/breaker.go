package ai

import (
	"context"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerEmbedder wraps an Embedder with circuit breaking logic.
// When the embedding backend fails repeatedly, the breaker opens and
// calls fail immediately until the backend recovers, keeping a dead
// backend from stalling every search until its timeout.
type BreakerEmbedder struct {
	embedder Embedder
	cb       *gobreaker.CircuitBreaker
	logger   *slog.Logger
}

var _ Embedder = (*BreakerEmbedder)(nil)

// WrapWithBreaker decorates an embedder with a circuit breaker.
// The breaker trips after three or more requests with a failure ratio
// of at least 60%, and probes the backend again after 30 seconds.
func WrapWithBreaker(embedder Embedder, name string) *BreakerEmbedder {
	logger := slog.Default().With("component", "embedder-breaker", "name", name)

	st := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("circuit breaker state change", "from", from.String(), "to", to.String())
		},
	}

	return &BreakerEmbedder{
		embedder: embedder,
		cb:       gobreaker.NewCircuitBreaker(st),
		logger:   logger,
	}
}

// EmbedText implements Embedder.
func (b *BreakerEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.embedder.EmbedText(ctx, text)
	})
	if err != nil {
		return nil, err
	}
	return result.([]float32), nil
}

// EmbedTexts implements Embedder.
func (b *BreakerEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.embedder.EmbedTexts(ctx, texts)
	})
	if err != nil {
		return nil, err
	}
	return result.([][]float32), nil
}
