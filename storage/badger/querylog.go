package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/tastory/tastory/core"
	"github.com/tastory/tastory/storage"
)

// QueryLogRepository implements storage.QueryLogRepository for BadgerDB.
// The log is append-only: there are no update or delete operations.
type QueryLogRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.QueryLogRepository = (*QueryLogRepository)(nil)

// NewQueryLogRepository creates a new QueryLogRepository.
func NewQueryLogRepository(backend *Backend) (storage.QueryLogRepository, error) {
	idSeq, err := backend.GetSequence(queryLogIDSeq)
	if err != nil {
		return nil, err
	}

	return &QueryLogRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *QueryLogRepository) Close() error {
	return r.idSeq.Release()
}

// AppendEntries appends one or more log entries.
// Sequence IDs keep identical queries logged in the same instant distinct;
// deduplication happens only inside the aggregator's scoring phase.
func (r *QueryLogRepository) AppendEntries(ctx context.Context, entries ...*core.QueryLogEntry) ([]*core.QueryLogEntry, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, entry := range entries {
			if entry.Timestamp.IsZero() {
				entry.Timestamp = time.Now().UTC()
			}
			if err := core.ValidateQueryLogEntry(entry); err != nil {
				return err
			}

			nextID, err := r.idSeq.Next()
			if err != nil {
				return err
			}
			// BadgerDB sequences can return 0 on first call, so we skip it
			if nextID == 0 {
				nextID, err = r.idSeq.Next()
				if err != nil {
					return err
				}
			}
			entry.Id = core.ID(nextID)

			key := makeQueryLogKey(entry.Id)
			value := storage.MarshalQueryLogEntry(entry)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Time index keyed by the caller's timestamp, not insertion
			// order, so out-of-order writers still window correctly
			timeKey := makeQueryLogTimeKey(entry.Timestamp, entry.Id)
			if err := tx.Set(timeKey, storage.MarshalID(entry.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return entries, err
}

// GetEntriesByTimeRange retrieves entries where start <= Timestamp < end,
// ordered by timestamp.
func (r *QueryLogRepository) GetEntriesByTimeRange(ctx context.Context, start, end time.Time) ([]*core.QueryLogEntry, error) {
	if !start.Before(end) {
		return nil, storage.ErrInvalidQuery
	}

	var results []*core.QueryLogEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialQueryLogTimeKey(start)
		endKey := makePartialQueryLogTimeKey(end)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if slices.Compare(key, endKey) >= 0 {
				break
			}

			var entryID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				entryID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			entry, err := r.readEntry(tx, makeQueryLogKey(entryID))
			if err != nil {
				return err
			}
			if entry != nil {
				results = append(results, entry)
			}
		}
		return nil
	}, false)

	return results, err
}

// readEntry reads a log entry by key within a transaction.
// Returns nil, nil when the key does not exist.
func (r *QueryLogRepository) readEntry(tx *badger.Txn, key []byte) (*core.QueryLogEntry, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var entry *core.QueryLogEntry
	err = item.Value(func(val []byte) error {
		var err error
		entry, err = storage.UnmarshalQueryLogEntry(val)
		return err
	})
	return entry, err
}
