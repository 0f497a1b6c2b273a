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

package index

import "errors"

var (
	// ErrEmptyCorpus is returned when Build receives no verses.
	ErrEmptyCorpus = errors.New("cannot index an empty corpus")

	// ErrEmptyVocabulary is returned when no term survives tokenization,
	// which would leave every query unanswerable.
	ErrEmptyVocabulary = errors.New("vocabulary is empty")
)
