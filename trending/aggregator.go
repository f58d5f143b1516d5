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


package trending

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tastory/tastory/core"
	"github.com/tastory/tastory/storage"
)

const (
	// Aggregation windows, all ending at the run's reference time.
	recentWindow = 1 * time.Hour
	mediumWindow = 6 * time.Hour
	dailyWindow  = 24 * time.Hour

	// timeDecayFactor normalizes the weighted window counts into the
	// final score: (recent*3 + medium*2 + daily) / timeDecayFactor.
	timeDecayFactor = 10.0

	// minDailyCount is the daily-window count a query needs to be
	// considered trending at all.
	minDailyCount = 5

	// topK is the number of items in the published snapshot.
	topK = 10

	// scoreEpsilon is the tolerance below which two scores count as
	// equal for trend classification.
	scoreEpsilon = 1e-9

	// defaultRunTimeout bounds one aggregation run.
	defaultRunTimeout = 30 * time.Second
)

// State identifies the phase an aggregation run is in.
type State int32

const (
	StateIdle State = iota
	StateScanning
	StateScoring
	StatePublishing
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateScanning:
		return "scanning"
	case StateScoring:
		return "scoring"
	case StatePublishing:
		return "publishing"
	default:
		return "unknown"
	}
}

// Aggregator computes trending snapshots from the query log. Runs are
// mutually exclusive: a trigger while another run is active is dropped.
// A failed run leaves the published snapshot untouched.
type Aggregator struct {
	queryLog   storage.QueryLogRepository
	cache      *Cache
	snapshots  storage.SnapshotStore
	runTimeout time.Duration
	logger     *slog.Logger
	now        func() time.Time

	mu    sync.Mutex
	state atomic.Int32
}

// Option configures an Aggregator.
type Option func(*Aggregator) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Aggregator) error {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
		return nil
	}
}

// WithSnapshotStore sets the store that persists published snapshots
// across restarts. Persistence is best-effort; without a store,
// snapshots live only in the cache.
func WithSnapshotStore(snapshots storage.SnapshotStore) Option {
	return func(a *Aggregator) error {
		a.snapshots = snapshots
		return nil
	}
}

// WithRunTimeout bounds one aggregation run.
// Default is 30 seconds.
func WithRunTimeout(timeout time.Duration) Option {
	return func(a *Aggregator) error {
		if timeout > 0 {
			a.runTimeout = timeout
		}
		return nil
	}
}

// withClock overrides the reference clock. Test hook.
func withClock(now func() time.Time) Option {
	return func(a *Aggregator) error {
		a.now = now
		return nil
	}
}

// NewAggregator creates a new trending aggregator publishing to cache.
func NewAggregator(queryLog storage.QueryLogRepository, cache *Cache, opts ...Option) (*Aggregator, error) {
	if queryLog == nil {
		return nil, ErrQueryLogRepositoryRequired
	}
	if cache == nil {
		return nil, ErrCacheRequired
	}

	a := &Aggregator{
		queryLog:   queryLog,
		cache:      cache,
		runTimeout: defaultRunTimeout,
		logger:     slog.Default(),
		now:        time.Now,
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// State returns the current aggregation phase.
func (a *Aggregator) State() State {
	return State(a.state.Load())
}

func (a *Aggregator) setState(s State) {
	a.state.Store(int32(s))
}

// Run executes one aggregation pass: scan the query log windows, score
// eligible queries, classify trends against the previous snapshot, and
// publish the result. Returns ErrAggregationInProgress when another run
// holds the lock. On any failure the previously published snapshot
// stays in place.
func (a *Aggregator) Run(ctx context.Context) error {
	if !a.mu.TryLock() {
		a.logger.Info("aggregation trigger dropped, run already in progress")
		return ErrAggregationInProgress
	}
	defer a.mu.Unlock()
	defer a.setState(StateIdle)

	ctx, cancel := context.WithTimeout(ctx, a.runTimeout)
	defer cancel()

	started := time.Now()
	reference := a.now().UTC()

	// 1. Scan the daily window once; the shorter windows are subsets
	a.setState(StateScanning)
	entries, err := a.queryLog.GetEntriesByTimeRange(ctx, reference.Add(-dailyWindow), reference)
	if err != nil {
		a.logger.Error("error scanning query log", "err", err)
		return fmt.Errorf("scanning query log: %w", err)
	}

	recentCounts := make(map[string]int)
	mediumCounts := make(map[string]int)
	dailyCounts := make(map[string]int)

	recentStart := reference.Add(-recentWindow)
	mediumStart := reference.Add(-mediumWindow)
	for _, entry := range entries {
		query := entry.NormalizedQuery
		if query == "" {
			continue
		}
		dailyCounts[query]++
		if !entry.Timestamp.Before(mediumStart) {
			mediumCounts[query]++
		}
		if !entry.Timestamp.Before(recentStart) {
			recentCounts[query]++
		}
	}

	// 2. Score eligible queries and classify against the previous run
	a.setState(StateScoring)

	var previousScores map[string]float64
	if previous := a.cache.Current(); previous != nil {
		previousScores = previous.Scores
	}

	scores := make(map[string]float64)
	items := make([]core.TrendingItem, 0, len(dailyCounts))
	for query, daily := range dailyCounts {
		if daily < minDailyCount {
			continue
		}

		score := (float64(recentCounts[query])*3 + float64(mediumCounts[query])*2 + float64(daily)) / timeDecayFactor
		scores[query] = score

		item := core.TrendingItem{
			Query: query,
			Count: daily,
			Score: score,
			Trend: core.TrendStable,
		}

		// A query absent from the previous snapshot compares against 0,
		// so new entrants classify up; percent change stays meaningless
		// until there is a nonzero baseline.
		previous := previousScores[query]
		switch {
		case score-previous > scoreEpsilon:
			item.Trend = core.TrendUp
		case previous-score > scoreEpsilon:
			item.Trend = core.TrendDown
		}
		if previous > 0 {
			item.HasPrevious = true
			item.PercentChange = (score - previous) / previous * 100
		}

		items = append(items, item)
	}

	// Highest score first; equal scores order by query for determinism
	sort.Slice(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		return items[i].Query < items[j].Query
	})
	if len(items) > topK {
		items = items[:topK]
	}

	if err := ctx.Err(); err != nil {
		a.logger.Error("aggregation run timed out", "err", err)
		return fmt.Errorf("aggregation run: %w", err)
	}

	// 3. Publish the whole snapshot in one swap
	a.setState(StatePublishing)
	snapshot := &core.TrendingSnapshot{
		Items:                 items,
		Scores:                scores,
		LastUpdated:           reference,
		ComputationDurationMs: time.Since(started).Milliseconds(),
	}
	a.cache.Publish(snapshot)

	// Persistence is best-effort: the in-memory publish already happened
	if a.snapshots != nil {
		if err := a.snapshots.SaveSnapshot(ctx, snapshot); err != nil {
			a.logger.Warn("error persisting trending snapshot", "err", err)
		}
	}

	a.logger.Info("trending snapshot published",
		"items", len(items),
		"scoredQueries", len(scores),
		"logEntries", len(entries),
		"durationMs", snapshot.ComputationDurationMs)

	return nil
}
