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


// Package search provides hybrid semantic and lexical search over the
// recipe corpus.
//
// The Searcher type implements a multi-stage retrieval pipeline:
//   - Query normalization and spell correction
//   - Semantic search using vector embeddings
//   - Lexical overlap against recipe names and ingredients
//
// The two signals are blended into one score, the full ranked set is
// ordered deterministically, and callers receive exactly one page of
// results. Executed searches are handed to a QueryRecorder for
// asynchronous logging; logging never blocks or fails a search.
package search
