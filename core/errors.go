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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidRecipe indicates a Recipe failed validation.
	ErrInvalidRecipe = errors.New("invalid recipe")

	// ErrInvalidQueryLogEntry indicates a QueryLogEntry failed validation.
	ErrInvalidQueryLogEntry = errors.New("invalid query log entry")

	// ErrInvalidTimestamp indicates a timestamp is in the future.
	ErrInvalidTimestamp = errors.New("timestamp cannot be in the future")

	// ErrEmptyRecipeName indicates the recipe Name field is empty.
	ErrEmptyRecipeName = errors.New("recipe name cannot be empty")

	// ErrEmptyQuery indicates the query field is empty.
	ErrEmptyQuery = errors.New("query cannot be empty")

	// ErrNegativeResultCount indicates a negative result count.
	ErrNegativeResultCount = errors.New("result count cannot be negative")

	// ErrInvalidTrendDirection indicates an invalid TrendDirection value.
	ErrInvalidTrendDirection = errors.New("invalid trend direction")
)
