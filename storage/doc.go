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


// Package storage provides the storage abstraction layer for the search engine.
//
// This package defines repository interfaces that decouple storage implementation
// from retrieval and aggregation logic. It allows for different storage backends
// (BadgerDB, in-memory, etc.) to be used interchangeably.
//
// # Constructor Return Type Pattern
//
// This package follows a strict "return interface" pattern for all public constructors
// to enforce abstraction and enable multiple storage backend implementations:
//
//	repo, err := badger.NewRecipeRepository(backend)  // returns storage.RecipeRepository
//
// Internal package constructors may return concrete types since they're only
// used within the implementation package.
//
// # Architecture
//
//   - RecipeRepository: read/load access to the recipe corpus, including
//     vector similarity search over precomputed embeddings
//   - QueryLogRepository: the append-only search log consumed by the
//     trending aggregator
//   - SnapshotStore: persistence for the published trending snapshot
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation
// and timeout support.
package storage
