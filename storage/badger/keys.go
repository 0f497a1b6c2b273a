package badger

import (
	"encoding/binary"

	"github.com/vedicarchive/riksearch/core"
)

// Key prefixes for different data types. User IDs are terminated with a
// NUL byte so one user's prefix can never match another's.
const (
	bookmarkPrefix   = "bkmrec"
	noteRecordPrefix = "ntrec"
	noteVersePrefix  = "ntrecv"
	noteIDSeq        = "ntrecseq"
)

// makeUserPrefix builds the common "prefix:user\x00" head of a key.
func makeUserPrefix(prefix, userID string) []byte {
	buf := make([]byte, 0, len(prefix)+len(userID)+2)
	buf = append(buf, prefix...)
	buf = append(buf, ':')
	buf = append(buf, userID...)
	buf = append(buf, 0)
	return buf
}

// appendRef appends a verse reference in BigEndian order so
// lexicographic key order matches (mandala, sukta, rik) order.
func appendRef(buf []byte, ref core.VerseRef) []byte {
	buf = binary.BigEndian.AppendUint32(buf, uint32(ref.Mandala))
	buf = binary.BigEndian.AppendUint32(buf, uint32(ref.Sukta))
	buf = binary.BigEndian.AppendUint32(buf, uint32(ref.Rik))
	return buf
}

// makeBookmarkKey generates the key for a user's bookmark on a verse.
// Format: prefix:user\x00ref
func makeBookmarkKey(userID string, ref core.VerseRef) []byte {
	return appendRef(makeUserPrefix(bookmarkPrefix, userID), ref)
}

// makeNoteKey generates the key for a note by ID.
// Format: prefix:user\x00id
func makeNoteKey(userID string, id core.ID) []byte {
	return binary.BigEndian.AppendUint64(makeUserPrefix(noteRecordPrefix, userID), uint64(id))
}

// makeNoteVerseKey generates a composite key for the per-verse note index.
// Format: prefix:user\x00ref:id
func makeNoteVerseKey(userID string, ref core.VerseRef, id core.ID) []byte {
	buf := appendRef(makeUserPrefix(noteVersePrefix, userID), ref)
	return binary.BigEndian.AppendUint64(buf, uint64(id))
}

// makePartialNoteVerseKey generates the iteration prefix for one verse's notes.
func makePartialNoteVerseKey(userID string, ref core.VerseRef) []byte {
	return appendRef(makeUserPrefix(noteVersePrefix, userID), ref)
}
