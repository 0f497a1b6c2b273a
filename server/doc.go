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

// Package server exposes the verse corpus, search, assistant, and
// per-user bookmark/note operations over HTTP using Echo.
//
// Routes are grouped by concern: corpus browsing, search, the AI
// assistant, and user data. Domain errors map onto status codes in one
// place: validation failures become 400, missing records 404, an
// engine without an installed index 503.
package server
