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


// Package ai provides the embedding abstraction used by the search engine.
//
// The engine treats the embedding encoder as an external collaborator: a
// query string goes in, a vector comes out, and anything in between (model,
// host, protocol) stays behind the Embedder interface. This follows the
// dependency inversion principle, allowing retrieval logic to depend on
// abstractions rather than concrete implementations.
//
// # Implementation Packages
//
//   - ai/openai: Production implementation using OpenAI-compatible APIs
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// # Constructor Return Type Pattern
//
// Public constructors (openai.NewProvider, openai.NewEmbedder) return
// INTERFACE types to enforce abstraction and prevent accidental coupling to
// concrete implementations.
//
//	provider, err := openai.NewProvider(config)  // returns ai.EmbeddingProvider
//
// Test utility constructors (mock.NewMockEmbedder) return CONCRETE types to
// enable test assertions and behavior injection via the mock's public methods
// (CallCount, function fields, Reset).
//
// # Circuit Breaking
//
// WrapWithBreaker decorates any Embedder with a circuit breaker so a dead
// embedding backend fails fast instead of stalling every search until its
// timeout. The breaker error surfaces through the retrieval error path.
//
// # Usage Example
//
//	config := ai.DefaultConfig()
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	embedder := ai.WrapWithBreaker(provider.Embedder(), "query-embedder")
//	vector, err := embedder.EmbedText(ctx, "chicken biryani")
package ai
