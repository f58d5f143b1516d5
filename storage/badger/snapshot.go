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


package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/tastory/tastory/core"
	"github.com/tastory/tastory/storage"
)

// SnapshotStore implements storage.SnapshotStore for BadgerDB.
// It persists the published trending snapshot so the last-known-good
// artifact survives process restarts.
type SnapshotStore struct {
	backend *Backend
}

var _ storage.SnapshotStore = (*SnapshotStore)(nil)

// NewSnapshotStore creates a new SnapshotStore.
func NewSnapshotStore(backend *Backend) *SnapshotStore {
	return &SnapshotStore{
		backend: backend,
	}
}

// SaveSnapshot persists the snapshot, replacing any previous one.
func (s *SnapshotStore) SaveSnapshot(ctx context.Context, snapshot *core.TrendingSnapshot) error {
	return s.backend.WithTx(func(tx *badger.Txn) error {
		value := storage.MarshalTrendingSnapshot(snapshot)
		if err := tx.Set(makeSnapshotKey(), value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// LoadSnapshot retrieves the persisted snapshot.
// Returns nil, nil if no snapshot has been saved.
func (s *SnapshotStore) LoadSnapshot(ctx context.Context) (*core.TrendingSnapshot, error) {
	var snapshot *core.TrendingSnapshot
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeSnapshotKey())
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}

		return item.Value(func(val []byte) error {
			var unmarshalErr error
			snapshot, unmarshalErr = storage.UnmarshalTrendingSnapshot(val)
			return unmarshalErr
		})
	}, false)

	return snapshot, err
}
