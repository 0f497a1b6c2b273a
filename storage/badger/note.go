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

package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/vedicarchive/riksearch/core"
	"github.com/vedicarchive/riksearch/storage"
)

// NoteRepository implements storage.NoteRepository for BadgerDB.
type NoteRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.NoteRepository = (*NoteRepository)(nil)

// NewNoteRepository creates a new NoteRepository.
func NewNoteRepository(backend *Backend) (*NoteRepository, error) {
	idSeq, err := backend.GetSequence(noteIDSeq)
	if err != nil {
		return nil, err
	}

	return &NoteRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *NoteRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *NoteRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddNote attaches a note to a verse for a user.
func (r *NoteRepository) AddNote(ctx context.Context, note *core.Note) (*core.Note, error) {
	if err := core.ValidateNote(note); err != nil {
		return nil, err
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Always generate new ID from sequence
		nextID, err := r.idSeq.Next()
		if err != nil {
			return err
		}
		// BadgerDB sequences can return 0 on first call, so we skip it
		if nextID == 0 {
			nextID, err = r.idSeq.Next()
			if err != nil {
				return err
			}
		}
		note.Id = core.ID(nextID)

		note.CreatedAt = time.Now().UTC()
		note.UpdatedAt = note.CreatedAt

		// Store primary record
		key := makeNoteKey(note.UserId, note.Id)
		if err := tx.Set(key, storage.MarshalNote(note)); err != nil {
			return err
		}

		// Update per-verse index
		verseKey := makeNoteVerseKey(note.UserId, note.Ref, note.Id)
		if err := tx.Set(verseKey, storage.MarshalID(note.Id)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}
	return note, nil
}

// GetNotes retrieves all notes belonging to a user. Keys embed the note
// ID in BigEndian order, so iteration order is ID ascending, which
// matches insertion order.
func (r *NoteRepository) GetNotes(ctx context.Context, userID string) ([]*core.Note, error) {
	var notes []*core.Note

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeUserPrefix(noteRecordPrefix, userID)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				note, err := storage.UnmarshalNote(val)
				if err != nil {
					return err
				}
				notes = append(notes, note)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// GetNotesForVerse retrieves a user's notes attached to one verse via
// the per-verse index, ordered by ID ascending.
func (r *NoteRepository) GetNotesForVerse(ctx context.Context, userID string, ref core.VerseRef) ([]*core.Note, error) {
	var notes []*core.Note

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialNoteVerseKey(userID, ref)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var id core.ID
			err := iter.Item().Value(func(val []byte) error {
				var err error
				id, err = storage.UnmarshalID(val)
				return err
			})
			if err != nil {
				return err
			}

			note, err := r.readNote(tx, makeNoteKey(userID, id))
			if err != nil {
				return err
			}
			if note != nil {
				notes = append(notes, note)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// DeleteNote removes a note by its ID, along with its per-verse index entry.
func (r *NoteRepository) DeleteNote(ctx context.Context, userID string, id core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeNoteKey(userID, id)
		note, err := r.readNote(tx, key)
		if err != nil {
			return err
		}
		if note == nil {
			return storage.ErrNotFound
		}

		if err := tx.Delete(key); err != nil {
			return err
		}
		if err := tx.Delete(makeNoteVerseKey(userID, note.Ref, id)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// readNote reads and unmarshals a note, returning nil if the key doesn't exist.
func (r *NoteRepository) readNote(tx *badger.Txn, key []byte) (*core.Note, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var note *core.Note
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		note, unmarshalErr = storage.UnmarshalNote(val)
		return unmarshalErr
	})
	return note, err
}
