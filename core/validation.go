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

import "fmt"

// ValidateVerseRef validates a VerseRef according to domain rules.
//
// Validation rules:
//   - Mandala must be between 1 and 10 (the Rigveda has exactly ten books)
//   - Sukta must be positive
//   - Rik must be positive
func ValidateVerseRef(ref VerseRef) error {
	if ref.Mandala < 1 || ref.Mandala > 10 {
		return fmt.Errorf("%w: %w (got %d)", ErrInvalidVerseRef, ErrInvalidMandala, ref.Mandala)
	}
	if ref.Sukta < 1 {
		return fmt.Errorf("%w: %w (got %d)", ErrInvalidVerseRef, ErrInvalidSukta, ref.Sukta)
	}
	if ref.Rik < 1 {
		return fmt.Errorf("%w: %w (got %d)", ErrInvalidVerseRef, ErrInvalidRik, ref.Rik)
	}
	return nil
}

// ValidateBookmark validates a Bookmark according to domain rules.
//
// Validation rules:
//   - UserId must not be empty
//   - Ref must be a valid verse reference
//
// NOT validated:
//   - ID (0 is valid until BookmarkID is assigned)
//   - CreatedAt (populated by the repository)
func ValidateBookmark(bookmark *Bookmark) error {
	if bookmark == nil {
		return fmt.Errorf("%w: bookmark is nil", ErrInvalidBookmark)
	}
	if bookmark.UserId == "" {
		return fmt.Errorf("%w: %w", ErrInvalidBookmark, ErrEmptyUserID)
	}
	if err := ValidateVerseRef(bookmark.Ref); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBookmark, err)
	}
	return nil
}

// ValidateNote validates a Note according to domain rules.
//
// Validation rules:
//   - UserId must not be empty
//   - Text must not be empty
//   - Ref must be a valid verse reference
//
// NOT validated:
//   - ID (0 is valid from database sequences)
//   - Timestamps (populated by the repository)
func ValidateNote(note *Note) error {
	if note == nil {
		return fmt.Errorf("%w: note is nil", ErrInvalidNote)
	}
	if note.UserId == "" {
		return fmt.Errorf("%w: %w", ErrInvalidNote, ErrEmptyUserID)
	}
	if note.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidNote, ErrEmptyNoteText)
	}
	if err := ValidateVerseRef(note.Ref); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidNote, err)
	}
	return nil
}
