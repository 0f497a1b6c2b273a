// Copyright 2026 Vedic Archive Project
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

package search

import "errors"

var (
	// ErrNotReady is returned when a query arrives before an index
	// snapshot has been installed. Callers should treat it as retryable.
	ErrNotReady = errors.New("search index not ready")

	// ErrEmptyQuery indicates an empty query string.
	ErrEmptyQuery = errors.New("query cannot be empty")

	// ErrInvalidPage indicates a page number below 1.
	ErrInvalidPage = errors.New("page must be at least 1")

	// ErrInvalidPageSize indicates a page size outside [1, MaxPageSize].
	ErrInvalidPageSize = errors.New("page size out of range")

	// ErrInvalidMinSimilarity indicates a similarity threshold outside [0, 1].
	ErrInvalidMinSimilarity = errors.New("minimum similarity out of range")
)
