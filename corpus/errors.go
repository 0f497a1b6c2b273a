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

package corpus

import "errors"

var (
	// ErrEmptyCorpus indicates the source file contained no verses.
	ErrEmptyCorpus = errors.New("corpus contains no verses")

	// ErrBadLabel indicates a book or section label that does not end in an integer.
	ErrBadLabel = errors.New("malformed corpus label")

	// ErrMandalaNotFound indicates the requested mandala does not exist.
	ErrMandalaNotFound = errors.New("mandala not found")

	// ErrSuktaNotFound indicates the requested sukta does not exist.
	ErrSuktaNotFound = errors.New("sukta not found")

	// ErrRikNotFound indicates the requested rik does not exist.
	ErrRikNotFound = errors.New("rik not found")
)
