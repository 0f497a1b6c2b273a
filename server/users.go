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

package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/vedicarchive/riksearch/core"
)

// bookmarkJSON is the wire form of one bookmark. IDs are rendered as
// strings since they exceed JavaScript's safe integer range.
type bookmarkJSON struct {
	ID        string    `json:"id"`
	Mandala   int       `json:"mandala"`
	Sukta     int       `json:"sukta"`
	Rik       int       `json:"rik_number"`
	CreatedAt time.Time `json:"created_at"`
}

func toBookmarkJSON(b *core.Bookmark) bookmarkJSON {
	return bookmarkJSON{
		ID:        strconv.FormatUint(uint64(b.Id), 10),
		Mandala:   b.Ref.Mandala,
		Sukta:     b.Ref.Sukta,
		Rik:       b.Ref.Rik,
		CreatedAt: b.CreatedAt,
	}
}

// noteJSON is the wire form of one note.
type noteJSON struct {
	ID        string    `json:"id"`
	Mandala   int       `json:"mandala"`
	Sukta     int       `json:"sukta"`
	Rik       int       `json:"rik_number"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toNoteJSON(n *core.Note) noteJSON {
	return noteJSON{
		ID:        strconv.FormatUint(uint64(n.Id), 10),
		Mandala:   n.Ref.Mandala,
		Sukta:     n.Ref.Sukta,
		Rik:       n.Ref.Rik,
		Text:      n.Text,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// refRequest is a verse reference in a request body.
type refRequest struct {
	Mandala int `json:"mandala"`
	Sukta   int `json:"sukta"`
	Rik     int `json:"rik_number"`
}

func (r refRequest) ref() core.VerseRef {
	return core.VerseRef{Mandala: r.Mandala, Sukta: r.Sukta, Rik: r.Rik}
}

// resolveVerse checks that the referenced verse exists in the corpus.
func (s *Server) resolveVerse(ref core.VerseRef) error {
	_, err := s.store.Verse(ref)
	return err
}

func (s *Server) userDataEnabled() error {
	if s.bookmarks == nil || s.notes == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "user data storage not configured")
	}
	return nil
}

func (s *Server) listBookmarks(c echo.Context) error {
	if err := s.userDataEnabled(); err != nil {
		return err
	}

	bookmarks, err := s.bookmarks.GetBookmarks(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return httpError(err)
	}

	out := make([]bookmarkJSON, 0, len(bookmarks))
	for _, b := range bookmarks {
		out = append(out, toBookmarkJSON(b))
	}
	return c.JSON(http.StatusOK, map[string]any{"bookmarks": out})
}

func (s *Server) addBookmark(c echo.Context) error {
	if err := s.userDataEnabled(); err != nil {
		return err
	}

	var req refRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := s.resolveVerse(req.ref()); err != nil {
		return httpError(err)
	}

	bookmark, err := s.bookmarks.AddBookmark(c.Request().Context(), c.Param("user_id"), req.ref())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, toBookmarkJSON(bookmark))
}

func (s *Server) deleteBookmark(c echo.Context) error {
	if err := s.userDataEnabled(); err != nil {
		return err
	}

	mandala, err := pathInt(c, "mandala")
	if err != nil {
		return err
	}
	sukta, err := pathInt(c, "sukta")
	if err != nil {
		return err
	}
	rik, err := pathInt(c, "rik")
	if err != nil {
		return err
	}

	ref := core.VerseRef{Mandala: mandala, Sukta: sukta, Rik: rik}
	if err := s.bookmarks.DeleteBookmark(c.Request().Context(), c.Param("user_id"), ref); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) listNotes(c echo.Context) error {
	if err := s.userDataEnabled(); err != nil {
		return err
	}

	userID := c.Param("user_id")
	ctx := c.Request().Context()

	// Optional per-verse filter
	if c.QueryParam("mandala") != "" {
		mandala, err := queryInt(c, "mandala", 0)
		if err != nil {
			return err
		}
		sukta, err := queryInt(c, "sukta", 0)
		if err != nil {
			return err
		}
		rik, err := queryInt(c, "rik_number", 0)
		if err != nil {
			return err
		}

		notes, err := s.notes.GetNotesForVerse(ctx, userID, core.VerseRef{Mandala: mandala, Sukta: sukta, Rik: rik})
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, map[string]any{"notes": toNotesJSON(notes)})
	}

	notes, err := s.notes.GetNotes(ctx, userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"notes": toNotesJSON(notes)})
}

func toNotesJSON(notes []*core.Note) []noteJSON {
	out := make([]noteJSON, 0, len(notes))
	for _, n := range notes {
		out = append(out, toNoteJSON(n))
	}
	return out
}

// noteRequest is the body of POST /users/:user_id/notes.
type noteRequest struct {
	refRequest
	Text string `json:"text"`
}

func (s *Server) addNote(c echo.Context) error {
	if err := s.userDataEnabled(); err != nil {
		return err
	}

	var req noteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := s.resolveVerse(req.ref()); err != nil {
		return httpError(err)
	}

	note, err := s.notes.AddNote(c.Request().Context(), &core.Note{
		UserId: c.Param("user_id"),
		Ref:    req.ref(),
		Text:   req.Text,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, toNoteJSON(note))
}

func (s *Server) deleteNote(c echo.Context) error {
	if err := s.userDataEnabled(); err != nil {
		return err
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}

	if err := s.notes.DeleteNote(c.Request().Context(), c.Param("user_id"), core.ID(id)); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
