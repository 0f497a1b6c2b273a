package core

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// VerseRef addresses a single verse in the corpus tree:
// Mandala (book) -> Sukta (section) -> Rik (verse number within the section).
type VerseRef struct {
	Mandala int
	Sukta   int
	Rik     int
}

// String renders the reference in the conventional dotted citation form, e.g. "1.1.1".
func (r VerseRef) String() string {
	return fmt.Sprintf("%d.%d.%d", r.Mandala, r.Sukta, r.Rik)
}

// Key returns a stable string form of the reference suitable for
// content-based ID generation and storage keys.
func (r VerseRef) Key() string {
	return fmt.Sprintf("%d:%d:%d", r.Mandala, r.Sukta, r.Rik)
}

// Verse is an immutable corpus record. Only Translation is indexed for
// ranked search; the other text fields are projection-only and may be empty.
type Verse struct {
	Ref             VerseRef
	OriginalScript  string // Devanagari rendering of the samhita text
	Transliteration string
	Translation     string
	Deity           string
}

// Field names a projectable verse field in search responses.
type Field string

const (
	FieldOriginalScript  Field = "original_script"
	FieldTransliteration Field = "transliteration"
	FieldTranslation     Field = "translation"
	FieldDeity           Field = "deity"
)

// Fields lists every projectable field name. Identity fields
// (mandala, sukta, rik_number and the similarity score) are always
// returned and are not part of this set.
var Fields = []Field{
	FieldOriginalScript,
	FieldTransliteration,
	FieldTranslation,
	FieldDeity,
}

// Bookmark marks a verse as saved by a user. Bookmarks are idempotent:
// the same (user, verse) pair always hashes to the same ID.
type Bookmark struct {
	Id        ID
	UserId    string
	Ref       VerseRef
	CreatedAt time.Time
}

// BookmarkID generates the deterministic content-based ID for a
// (user, verse) bookmark pair.
func BookmarkID(userID string, ref VerseRef) ID {
	return IDFromContent(userID + "|" + ref.Key())
}

// Note is a user-authored annotation attached to a verse.
// Note IDs come from a database sequence; a user may keep
// several notes on the same verse.
type Note struct {
	Id        ID
	UserId    string
	Ref       VerseRef
	Text      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
