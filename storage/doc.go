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

// Package storage provides the persistence abstraction for user data.
//
// The search corpus and index live purely in memory; what persists across
// restarts is per-user state: bookmarks and notes. This package defines
// repository interfaces that decouple that persistence from business
// logic, so different backends (BadgerDB, in-memory) can be used
// interchangeably.
//
// Public constructors in backend packages return these interfaces, not
// concrete types, to prevent coupling to a particular store.
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation and
// timeout support.
package storage
