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

// Package search answers ranked and keyword queries against a built index.
//
// The Engine holds the active index.Snapshot behind an atomic pointer:
// queries before Install report ErrNotReady, never a silently empty
// result. Both query paths share one validation, pagination, and field
// projection pipeline; they differ only in how verses are scored and
// ordered:
//
//   - Search ranks every verse by cosine similarity to the query in the
//     fitted TF-IDF space, descending, ties broken by corpus order.
//   - KeywordSearch matches translations containing the query as a
//     case-insensitive substring, in corpus order, and memoizes responses
//     in a bounded concurrent cache.
//
// For a fixed snapshot, identical requests always produce identical
// responses.
package search
