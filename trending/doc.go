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


// Package trending derives the trending-queries snapshot from the
// append-only query log.
//
// The Aggregator runs as a phased pass (scanning, scoring, publishing)
// under a try-lock, so concurrent triggers are dropped rather than
// queued and a failed run leaves the previously published snapshot
// untouched. Queries are counted in three windows ending at the run's
// reference time (one hour, six hours, twenty-four hours) and scored
// with recency weighting; a query needs at least five daily hits to be
// eligible. Each run classifies every scored query against the previous
// snapshot's score table as up, down, or stable.
//
// Snapshots are published wholesale through a Cache backed by an atomic
// pointer, so readers never see a half-built result, and persisted
// best-effort so the last-known-good snapshot survives restarts. The
// Scheduler reruns the aggregator on a fixed interval.
package trending
