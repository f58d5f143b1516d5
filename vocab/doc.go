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


// Package vocab builds and publishes the corpus vocabulary used by spell
// correction and autocomplete.
//
// An Index is immutable once built: it maps each term from recipe names
// and ingredient lists to its corpus frequency, and keeps sorted and
// length-bucketed views for prefix and edit-distance lookups. Rebuilds
// produce a fresh Index which is swapped in through a Holder, so request
// handlers always read a consistent vocabulary without locking.
//
// Index construction iterates the full recipe corpus and runs out of
// band (at startup and after corpus loads), never on the request path.
package vocab
