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

// Package index builds the vector-space model over verse translations.
//
// Build tokenizes every translation (lowercase, English stop words
// removed, unigrams and bigrams), fits a vocabulary capped at a maximum
// feature count, computes smoothed TF-IDF weights, and L2-normalizes each
// row so that cosine similarity reduces to a dot product.
//
// The result is an immutable Snapshot: row i of the term matrix and entry
// i of the verse sequence always describe the same verse, for the lifetime
// of the snapshot. Rebuilding means constructing a new Snapshot and
// swapping it in; a Snapshot is never mutated after Build returns.
package index
