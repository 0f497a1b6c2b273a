package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/vedicarchive/riksearch/core"
	"github.com/vedicarchive/riksearch/storage"
)

func TestBookmarkBasics(t *testing.T) {
	bookmarkRepo, noteRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() {
		noteRepo.Close()
		bookmarkRepo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	ref := core.VerseRef{Mandala: 1, Sukta: 1, Rik: 1}

	added, err := bookmarkRepo.AddBookmark(ctx, "reader", ref)
	if err != nil {
		t.Fatalf("Failed to add bookmark: %v", err)
	}

	if added.Id != core.BookmarkID("reader", ref) {
		t.Fatalf("Expected content-based ID %d, got %d", core.BookmarkID("reader", ref), added.Id)
	}
	if added.CreatedAt.IsZero() {
		t.Fatal("Expected CreatedAt to be set")
	}

	bookmarks, err := bookmarkRepo.GetBookmarks(ctx, "reader")
	if err != nil {
		t.Fatalf("Failed to get bookmarks: %v", err)
	}
	if len(bookmarks) != 1 {
		t.Fatalf("Expected 1 bookmark, got %d", len(bookmarks))
	}
	if bookmarks[0].Ref != ref {
		t.Fatalf("Expected ref %v, got %v", ref, bookmarks[0].Ref)
	}
}

func TestBookmarkIdempotent(t *testing.T) {
	bookmarkRepo, noteRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { noteRepo.Close(); bookmarkRepo.Close(); backend.Close() }()

	ctx := context.Background()
	ref := core.VerseRef{Mandala: 3, Sukta: 62, Rik: 10}

	first, err := bookmarkRepo.AddBookmark(ctx, "reader", ref)
	if err != nil {
		t.Fatalf("Failed to add bookmark: %v", err)
	}
	second, err := bookmarkRepo.AddBookmark(ctx, "reader", ref)
	if err != nil {
		t.Fatalf("Failed to re-add bookmark: %v", err)
	}
	if first.Id != second.Id {
		t.Fatalf("Expected same ID for same (user, verse) pair, got %d and %d", first.Id, second.Id)
	}

	bookmarks, err := bookmarkRepo.GetBookmarks(ctx, "reader")
	if err != nil {
		t.Fatalf("Failed to get bookmarks: %v", err)
	}
	if len(bookmarks) != 1 {
		t.Fatalf("Expected 1 bookmark after re-add, got %d", len(bookmarks))
	}
}

func TestBookmarkOrderingAndIsolation(t *testing.T) {
	bookmarkRepo, noteRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { noteRepo.Close(); bookmarkRepo.Close(); backend.Close() }()

	ctx := context.Background()

	// Insert out of order
	refs := []core.VerseRef{
		{Mandala: 10, Sukta: 129, Rik: 1},
		{Mandala: 1, Sukta: 1, Rik: 2},
		{Mandala: 1, Sukta: 1, Rik: 1},
		{Mandala: 3, Sukta: 62, Rik: 10},
	}
	for _, ref := range refs {
		if _, err := bookmarkRepo.AddBookmark(ctx, "reader", ref); err != nil {
			t.Fatalf("Failed to add bookmark %v: %v", ref, err)
		}
	}
	if _, err := bookmarkRepo.AddBookmark(ctx, "other", core.VerseRef{Mandala: 2, Sukta: 12, Rik: 1}); err != nil {
		t.Fatalf("Failed to add bookmark for other user: %v", err)
	}

	bookmarks, err := bookmarkRepo.GetBookmarks(ctx, "reader")
	if err != nil {
		t.Fatalf("Failed to get bookmarks: %v", err)
	}
	if len(bookmarks) != 4 {
		t.Fatalf("Expected 4 bookmarks, got %d", len(bookmarks))
	}

	want := []core.VerseRef{
		{Mandala: 1, Sukta: 1, Rik: 1},
		{Mandala: 1, Sukta: 1, Rik: 2},
		{Mandala: 3, Sukta: 62, Rik: 10},
		{Mandala: 10, Sukta: 129, Rik: 1},
	}
	for i, ref := range want {
		if bookmarks[i].Ref != ref {
			t.Fatalf("Expected bookmark %d to be %v, got %v", i, ref, bookmarks[i].Ref)
		}
	}
}

func TestBookmarkDelete(t *testing.T) {
	bookmarkRepo, noteRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { noteRepo.Close(); bookmarkRepo.Close(); backend.Close() }()

	ctx := context.Background()
	ref := core.VerseRef{Mandala: 1, Sukta: 1, Rik: 1}

	if _, err := bookmarkRepo.AddBookmark(ctx, "reader", ref); err != nil {
		t.Fatalf("Failed to add bookmark: %v", err)
	}
	if err := bookmarkRepo.DeleteBookmark(ctx, "reader", ref); err != nil {
		t.Fatalf("Failed to delete bookmark: %v", err)
	}

	bookmarks, err := bookmarkRepo.GetBookmarks(ctx, "reader")
	if err != nil {
		t.Fatalf("Failed to get bookmarks: %v", err)
	}
	if len(bookmarks) != 0 {
		t.Fatalf("Expected 0 bookmarks after delete, got %d", len(bookmarks))
	}

	err = bookmarkRepo.DeleteBookmark(ctx, "reader", ref)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound for missing bookmark, got %v", err)
	}
}

func TestBookmarkValidation(t *testing.T) {
	bookmarkRepo, noteRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { noteRepo.Close(); bookmarkRepo.Close(); backend.Close() }()

	ctx := context.Background()

	if _, err := bookmarkRepo.AddBookmark(ctx, "", core.VerseRef{Mandala: 1, Sukta: 1, Rik: 1}); err == nil {
		t.Fatal("Expected error for empty user ID")
	}
	if _, err := bookmarkRepo.AddBookmark(ctx, "reader", core.VerseRef{Mandala: 11, Sukta: 1, Rik: 1}); err == nil {
		t.Fatal("Expected error for mandala out of range")
	}
}
