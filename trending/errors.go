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


package trending

import "errors"

var (
	// ErrQueryLogRepositoryRequired is returned when a query log repository is not provided.
	ErrQueryLogRepositoryRequired = errors.New("query log repository required")

	// ErrCacheRequired is returned when a trending cache is not provided.
	ErrCacheRequired = errors.New("trending cache required")

	// ErrAggregationInProgress is returned when a run is triggered while
	// another run holds the aggregation lock.
	ErrAggregationInProgress = errors.New("aggregation already in progress")
)
