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

// BookmarkRepository implements storage.BookmarkRepository for BadgerDB.
type BookmarkRepository struct {
	backend *Backend
}

var _ storage.BookmarkRepository = (*BookmarkRepository)(nil)

// NewBookmarkRepository creates a new BookmarkRepository.
func NewBookmarkRepository(backend *Backend) (*BookmarkRepository, error) {
	return &BookmarkRepository{backend: backend}, nil
}

// Close releases repository resources. Bookmarks hold no sequence, so
// this is a no-op; the backend itself is closed by its owner.
func (r *BookmarkRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *BookmarkRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddBookmark saves a verse bookmark for a user. The key and ID are both
// derived from the (user, verse) pair, so re-adding an existing bookmark
// overwrites it in place.
func (r *BookmarkRepository) AddBookmark(ctx context.Context, userID string, ref core.VerseRef) (*core.Bookmark, error) {
	bookmark := &core.Bookmark{
		Id:        core.BookmarkID(userID, ref),
		UserId:    userID,
		Ref:       ref,
		CreatedAt: time.Now().UTC(),
	}
	if err := core.ValidateBookmark(bookmark); err != nil {
		return nil, err
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeBookmarkKey(userID, ref)
		if err := tx.Set(key, storage.MarshalBookmark(bookmark)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}
	return bookmark, nil
}

// DeleteBookmark removes a user's bookmark for a verse.
func (r *BookmarkRepository) DeleteBookmark(ctx context.Context, userID string, ref core.VerseRef) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeBookmarkKey(userID, ref)
		if _, err := tx.Get(key); err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		if err := tx.Delete(key); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetBookmarks retrieves all bookmarks belonging to a user. Keys embed
// the verse reference in BigEndian order, so iteration order is
// (mandala, sukta, rik) ascending.
func (r *BookmarkRepository) GetBookmarks(ctx context.Context, userID string) ([]*core.Bookmark, error) {
	var bookmarks []*core.Bookmark

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeUserPrefix(bookmarkPrefix, userID)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				bookmark, err := storage.UnmarshalBookmark(val)
				if err != nil {
					return err
				}
				bookmarks = append(bookmarks, bookmark)
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
	return bookmarks, nil
}
