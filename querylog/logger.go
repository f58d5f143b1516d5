package querylog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/tastory/tastory/core"
	"github.com/tastory/tastory/storage"
)

const (
	// defaultPoolSize bounds concurrent log writers. Writes are small
	// single-key transactions, so a small pool is plenty.
	defaultPoolSize = 4

	// defaultWriteTimeout bounds a single append.
	defaultWriteTimeout = 5 * time.Second

	// errorChannelCapacity bounds the async error channel. Further
	// errors are dropped after logging.
	errorChannelCapacity = 64
)

// Logger appends executed searches to the query log asynchronously.
// Log never blocks and never surfaces failures to the caller; write
// errors go to slog and to the Errors channel for operator visibility.
type Logger struct {
	queryLog     storage.QueryLogRepository
	pool         *ants.Pool
	errs         chan error
	writeTimeout time.Duration
	logger       *slog.Logger

	closed   atomic.Bool
	inFlight sync.WaitGroup
}

// Option configures a Logger.
type Option func(*Logger) error

// WithPoolSize sets the worker pool size for concurrent log writes.
// Default is 4, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(l *Logger) error {
		if size < 1 {
			size = 1
		}

		if l.pool != nil {
			l.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		l.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Logger) error {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
		return nil
	}
}

// WithWriteTimeout bounds a single append to the query log.
// Default is 5 seconds.
func WithWriteTimeout(timeout time.Duration) Option {
	return func(l *Logger) error {
		if timeout > 0 {
			l.writeTimeout = timeout
		}
		return nil
	}
}

// NewLogger creates a new asynchronous query logger.
func NewLogger(queryLog storage.QueryLogRepository, opts ...Option) (*Logger, error) {
	if queryLog == nil {
		return nil, ErrQueryLogRepositoryRequired
	}

	pool, err := ants.NewPool(defaultPoolSize)
	if err != nil {
		return nil, err
	}

	l := &Logger{
		queryLog:     queryLog,
		pool:         pool,
		errs:         make(chan error, errorChannelCapacity),
		writeTimeout: defaultWriteTimeout,
		logger:       slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(l); err != nil {
			l.pool.Release()
			return nil, err
		}
	}

	return l, nil
}

// Log submits one executed search for appending. Fire and forget: the
// entry is timestamped now, written on a worker, and any failure is
// reported asynchronously. Entries submitted after Close are dropped.
func (l *Logger) Log(rawQuery, normalizedQuery string, resultCount int, sessionID string) {
	if l.closed.Load() {
		l.report(fmt.Errorf("dropping query log entry for %q: %w", normalizedQuery, ErrLoggerClosed))
		return
	}

	entry := &core.QueryLogEntry{
		RawQuery:        rawQuery,
		NormalizedQuery: normalizedQuery,
		Timestamp:       time.Now().UTC(),
		SessionId:       sessionID,
		ResultCount:     resultCount,
	}

	l.inFlight.Add(1)
	err := l.pool.Submit(func() {
		defer l.inFlight.Done()

		ctx, cancel := context.WithTimeout(context.Background(), l.writeTimeout)
		defer cancel()

		if _, err := l.queryLog.AppendEntries(ctx, entry); err != nil {
			l.report(fmt.Errorf("appending query log entry for %q: %w", normalizedQuery, err))
		}
	})
	if err != nil {
		l.inFlight.Done()
		l.report(fmt.Errorf("submitting query log entry for %q: %w", normalizedQuery, err))
	}
}

// Errors returns the channel carrying asynchronous write failures.
// The channel is never closed; it simply stops carrying errors once
// the logger shuts down.
func (l *Logger) Errors() <-chan error {
	return l.errs
}

// Close drains in-flight writes and releases the worker pool.
// Callers must stop submitting entries before Close.
func (l *Logger) Close() {
	if l.closed.Swap(true) {
		return
	}
	l.inFlight.Wait()
	l.pool.Release()
}

// report logs the error and offers it on the errors channel without
// blocking. When nobody is draining the channel, errors beyond its
// capacity are dropped.
func (l *Logger) report(err error) {
	l.logger.Error("query log write failed", "err", err)
	select {
	case l.errs <- err:
	default:
	}
}
