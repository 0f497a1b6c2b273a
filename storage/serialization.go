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
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/vedicarchive/riksearch/core"
)

// MUS serializers for the stored record types. Timestamps are encoded
// as Unix microseconds.
var (
	IDMUS       = idMUS{}
	VerseRefMUS = verseRefMUS{}
	BookmarkMUS = bookmarkMUS{}
	NoteMUS     = noteMUS{}
)

type idMUS struct{}

func (idMUS) Marshal(v core.ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (idMUS) Unmarshal(bs []byte) (core.ID, int, error) {
	u, n, err := varint.Uint64.Unmarshal(bs)
	return core.ID(u), n, err
}

func (idMUS) Size(v core.ID) int {
	return varint.Uint64.Size(uint64(v))
}

type verseRefMUS struct{}

func (verseRefMUS) Marshal(v core.VerseRef, bs []byte) (n int) {
	n = varint.Int.Marshal(v.Mandala, bs)
	n += varint.Int.Marshal(v.Sukta, bs[n:])
	n += varint.Int.Marshal(v.Rik, bs[n:])
	return n
}

func (verseRefMUS) Unmarshal(bs []byte) (v core.VerseRef, n int, err error) {
	var n1 int
	v.Mandala, n, err = varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v.Sukta, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Rik, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	return
}

func (verseRefMUS) Size(v core.VerseRef) int {
	return varint.Int.Size(v.Mandala) + varint.Int.Size(v.Sukta) +
		varint.Int.Size(v.Rik)
}

type bookmarkMUS struct{}

func (bookmarkMUS) Marshal(v core.Bookmark, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.UserId, bs[n:])
	n += VerseRefMUS.Marshal(v.Ref, bs[n:])
	n += varint.Int64.Marshal(v.CreatedAt.UnixMicro(), bs[n:])
	return n
}

func (bookmarkMUS) Unmarshal(bs []byte) (v core.Bookmark, n int, err error) {
	var n1 int
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	v.UserId, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Ref, n1, err = VerseRefMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var createdAt int64
	createdAt, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CreatedAt = time.UnixMicro(createdAt).UTC()
	return
}

func (bookmarkMUS) Size(v core.Bookmark) int {
	return IDMUS.Size(v.Id) + ord.String.Size(v.UserId) +
		VerseRefMUS.Size(v.Ref) + varint.Int64.Size(v.CreatedAt.UnixMicro())
}

type noteMUS struct{}

func (noteMUS) Marshal(v core.Note, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.UserId, bs[n:])
	n += VerseRefMUS.Marshal(v.Ref, bs[n:])
	n += ord.String.Marshal(v.Text, bs[n:])
	n += varint.Int64.Marshal(v.CreatedAt.UnixMicro(), bs[n:])
	n += varint.Int64.Marshal(v.UpdatedAt.UnixMicro(), bs[n:])
	return n
}

func (noteMUS) Unmarshal(bs []byte) (v core.Note, n int, err error) {
	var n1 int
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	v.UserId, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Ref, n1, err = VerseRefMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Text, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var createdAt, updatedAt int64
	createdAt, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	updatedAt, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CreatedAt = time.UnixMicro(createdAt).UTC()
	v.UpdatedAt = time.UnixMicro(updatedAt).UTC()
	return
}

func (noteMUS) Size(v core.Note) int {
	return IDMUS.Size(v.Id) + ord.String.Size(v.UserId) +
		VerseRefMUS.Size(v.Ref) + ord.String.Size(v.Text) +
		varint.Int64.Size(v.CreatedAt.UnixMicro()) +
		varint.Int64.Size(v.UpdatedAt.UnixMicro())
}

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, IDMUS.Size(id))
	IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := IDMUS.Unmarshal(data)
	return id, err
}

// MarshalBookmark serializes a Bookmark to bytes.
func MarshalBookmark(bookmark *core.Bookmark) []byte {
	buf := make([]byte, BookmarkMUS.Size(*bookmark))
	BookmarkMUS.Marshal(*bookmark, buf)
	return buf
}

// UnmarshalBookmark deserializes a Bookmark from bytes.
func UnmarshalBookmark(data []byte) (*core.Bookmark, error) {
	bookmark, _, err := BookmarkMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &bookmark, nil
}

// MarshalNote serializes a Note to bytes.
func MarshalNote(note *core.Note) []byte {
	buf := make([]byte, NoteMUS.Size(*note))
	NoteMUS.Marshal(*note, buf)
	return buf
}

// UnmarshalNote deserializes a Note from bytes.
func UnmarshalNote(data []byte) (*core.Note, error) {
	note, _, err := NoteMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &note, nil
}
