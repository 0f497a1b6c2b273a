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

package storage

import (
	"context"

	"github.com/vedicarchive/riksearch/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the repository and releases resources.
	Close() error
}

// BookmarkRepository provides operations for managing per-user verse bookmarks.
type BookmarkRepository interface {
	Repository
	// AddBookmark saves a verse bookmark for a user. Bookmarks carry
	// content-based IDs, so adding the same (user, verse) pair twice
	// overwrites the existing record rather than duplicating it.
	// Returns the bookmark with its ID and CreatedAt populated.
	AddBookmark(ctx context.Context, userID string, ref core.VerseRef) (*core.Bookmark, error)

	// DeleteBookmark removes a user's bookmark for a verse.
	// Returns ErrNotFound if no such bookmark exists.
	DeleteBookmark(ctx context.Context, userID string, ref core.VerseRef) error

	// GetBookmarks retrieves all bookmarks belonging to a user,
	// ordered by verse reference (mandala, sukta, rik ascending).
	GetBookmarks(ctx context.Context, userID string) ([]*core.Bookmark, error)
}

// NoteRepository provides operations for managing per-user verse notes.
type NoteRepository interface {
	Repository
	// AddNote attaches a note to a verse for a user. The note ID is
	// generated from a sequence; a user may keep several notes on the
	// same verse. Returns the note with ID and timestamps populated.
	AddNote(ctx context.Context, note *core.Note) (*core.Note, error)

	// GetNotes retrieves all notes belonging to a user, ordered by ID
	// ascending (insertion order).
	GetNotes(ctx context.Context, userID string) ([]*core.Note, error)

	// GetNotesForVerse retrieves a user's notes attached to one verse,
	// ordered by ID ascending.
	GetNotesForVerse(ctx context.Context, userID string, ref core.VerseRef) ([]*core.Note, error)

	// DeleteNote removes a note by its ID. The userID must match the
	// note's owner. Returns ErrNotFound if no such note exists.
	DeleteNote(ctx context.Context, userID string, id core.ID) error
}
