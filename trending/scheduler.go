package trending

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// defaultInterval is the gap between scheduled aggregation runs.
const defaultInterval = 15 * time.Minute

// Scheduler runs the aggregator on a fixed interval. A run that fails
// or is dropped does not stop the schedule; the next tick tries again.
type Scheduler struct {
	aggregator *Aggregator
	interval   time.Duration
	logger     *slog.Logger

	started   atomic.Bool
	startOnce sync.Once
	stopOnce  sync.Once
	stop      chan struct{}
	done      chan struct{}
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithInterval sets the gap between runs.
// Default is 15 minutes.
func WithInterval(interval time.Duration) SchedulerOption {
	return func(s *Scheduler) {
		if interval > 0 {
			s.interval = interval
		}
	}
}

// WithSchedulerLogger sets a custom logger.
// Default is slog.Default().
func WithSchedulerLogger(logger *slog.Logger) SchedulerOption {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewScheduler creates a scheduler for the given aggregator.
func NewScheduler(aggregator *Aggregator, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		aggregator: aggregator,
		interval:   defaultInterval,
		logger:     slog.Default(),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start launches the schedule loop. The first run happens immediately,
// then every interval until Stop. Start is idempotent.
func (s *Scheduler) Start() {
	s.startOnce.Do(func() {
		s.started.Store(true)
		go s.loop()
	})
}

func (s *Scheduler) loop() {
	defer close(s.done)

	s.runOnce()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runOnce()
		case <-s.stop:
			return
		}
	}
}

func (s *Scheduler) runOnce() {
	err := s.aggregator.Run(context.Background())
	if err != nil && !errors.Is(err, ErrAggregationInProgress) {
		s.logger.Error("scheduled aggregation failed", "err", err)
	}
}

// Trigger requests an immediate run outside the schedule. Returns
// ErrAggregationInProgress when a run is already active.
func (s *Scheduler) Trigger(ctx context.Context) error {
	return s.aggregator.Run(ctx)
}

// Stop halts the schedule and waits for the loop to exit. A run already
// in progress finishes. Stop is idempotent.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
	if s.started.Load() {
		<-s.done
	}
}
