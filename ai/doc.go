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

// Package ai provides abstractions for the AI question-answering service.
//
// The assistant answers free-form questions about hymns by passing
// retrieved verse passages to a language model. This package defines the
// interfaces; concrete implementations live in subpackages (openai for
// OpenAI-compatible APIs, mock for tests), so business logic depends on
// abstractions rather than a specific vendor client.
//
// All implementations must be thread-safe for concurrent use, and all
// blocking operations accept a context.Context.
package ai
