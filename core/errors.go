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

package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidVerseRef indicates a VerseRef failed validation.
	ErrInvalidVerseRef = errors.New("invalid verse reference")

	// ErrInvalidMandala indicates a mandala number outside 1..10.
	ErrInvalidMandala = errors.New("mandala must be between 1 and 10")

	// ErrInvalidSukta indicates a non-positive sukta number.
	ErrInvalidSukta = errors.New("sukta must be positive")

	// ErrInvalidRik indicates a non-positive rik number.
	ErrInvalidRik = errors.New("rik number must be positive")

	// ErrInvalidBookmark indicates a Bookmark failed validation.
	ErrInvalidBookmark = errors.New("invalid bookmark")

	// ErrInvalidNote indicates a Note failed validation.
	ErrInvalidNote = errors.New("invalid note")

	// ErrEmptyUserID indicates the UserId field is empty.
	ErrEmptyUserID = errors.New("user id cannot be empty")

	// ErrEmptyNoteText indicates the note Text field is empty.
	ErrEmptyNoteText = errors.New("note text cannot be empty")
)
