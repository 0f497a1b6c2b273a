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

// Package corpus loads and serves the Rigveda verse corpus.
//
// The corpus is a strict three-level tree: Mandala (book) -> Sukta
// (section) -> ordered list of Riks (verses). It is loaded once from the
// scraped JSON file at process start; the "Mandala N" / "Sukta N" labels
// in the source file are parsed into typed integers at ingestion time and
// never re-parsed afterwards.
//
// A loaded Store is immutable and may be read by any number of
// goroutines without locking. Verse order is stable: mandalas and suktas
// ascend numerically, verses keep their order within each sukta, and this
// flattened order is what the search index aligns its rows to.
package corpus
