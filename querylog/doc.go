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


// Package querylog appends executed searches to the append-only search
// log.
//
// Logging is fire and forget: the Log call returns immediately and the
// write happens on a bounded worker pool. A failed write never reaches
// the searcher; it is logged and offered on an errors channel so
// operators can watch for a failing log store. Entries are never
// updated or deleted; the trending aggregator is the only consumer.
package querylog
