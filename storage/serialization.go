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


package storage

import (
	"fmt"

	"github.com/tastory/tastory/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	var id core.ID
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalRecipe serializes a Recipe to bytes.
func MarshalRecipe(recipe *core.Recipe) []byte {
	buf := make([]byte, core.RecipeMUS.Size(*recipe))
	core.RecipeMUS.Marshal(*recipe, buf)
	return buf
}

// UnmarshalRecipe deserializes a Recipe from bytes.
func UnmarshalRecipe(data []byte) (*core.Recipe, error) {
	recipe, _, err := core.RecipeMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: recipe: %w", ErrSerializationFailed, err)
	}
	return &recipe, nil
}

// MarshalQueryLogEntry serializes a QueryLogEntry to bytes.
func MarshalQueryLogEntry(entry *core.QueryLogEntry) []byte {
	buf := make([]byte, core.QueryLogEntryMUS.Size(*entry))
	core.QueryLogEntryMUS.Marshal(*entry, buf)
	return buf
}

// UnmarshalQueryLogEntry deserializes a QueryLogEntry from bytes.
func UnmarshalQueryLogEntry(data []byte) (*core.QueryLogEntry, error) {
	entry, _, err := core.QueryLogEntryMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: query log entry: %w", ErrSerializationFailed, err)
	}
	return &entry, nil
}

// MarshalTrendingSnapshot serializes a TrendingSnapshot to bytes.
func MarshalTrendingSnapshot(snapshot *core.TrendingSnapshot) []byte {
	buf := make([]byte, core.TrendingSnapshotMUS.Size(*snapshot))
	core.TrendingSnapshotMUS.Marshal(*snapshot, buf)
	return buf
}

// UnmarshalTrendingSnapshot deserializes a TrendingSnapshot from bytes.
func UnmarshalTrendingSnapshot(data []byte) (*core.TrendingSnapshot, error) {
	snapshot, _, err := core.TrendingSnapshotMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: trending snapshot: %w", ErrSerializationFailed, err)
	}
	return &snapshot, nil
}
