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
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/vedicarchive/riksearch/assistant"
	"github.com/vedicarchive/riksearch/corpus"
	"github.com/vedicarchive/riksearch/search"
	"github.com/vedicarchive/riksearch/storage"
)

// Server wires the corpus, search engine, assistant, and user
// repositories into an HTTP API.
type Server struct {
	store     *corpus.Store
	engine    *search.Engine
	assistant *assistant.Assistant
	bookmarks storage.BookmarkRepository
	notes     storage.NoteRepository
	logger    *slog.Logger
}

// Option configures a Server.
type Option func(*Server) error

// WithAssistant enables the AI assistant endpoint.
// Without it, POST /ai-assistant answers 503.
func WithAssistant(a *assistant.Assistant) Option {
	return func(s *Server) error {
		s.assistant = a
		return nil
	}
}

// WithUserData enables the bookmark and note endpoints.
// Without it, the /users routes answer 503.
func WithUserData(bookmarks storage.BookmarkRepository, notes storage.NoteRepository) Option {
	return func(s *Server) error {
		s.bookmarks = bookmarks
		s.notes = notes
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// New creates a new server over the given corpus and search engine.
func New(store *corpus.Store, engine *search.Engine, opts ...Option) (*Server, error) {
	if store == nil {
		return nil, errors.New("corpus store is required")
	}
	if engine == nil {
		return nil, errors.New("search engine is required")
	}

	s := &Server{
		store:  store,
		engine: engine,
		logger: slog.Default().With("component", "server"),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Handler builds the Echo instance with all routes registered.
func (s *Server) Handler() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.GET("/readyz", s.ready)

	// Corpus browsing
	e.GET("/mandalas", s.listMandalas)
	e.GET("/mandalas/:mandala/suktas", s.listSuktas)
	e.GET("/mandalas/:mandala/suktas/:sukta/riks", s.listRiks)
	e.GET("/mandalas/:mandala/suktas/:sukta/riks/:rik", s.getRik)
	e.GET("/mandalas/:mandala/suktas/:sukta/view", s.suktaView)
	e.GET("/random", s.randomVerse)
	e.GET("/daily-verse", s.dailyVerse)

	// Search
	e.GET("/search", s.rankedSearch)
	e.GET("/keyword-search", s.keywordSearch)
	e.POST("/ai-assistant", s.askAssistant)

	// User data
	users := e.Group("/users/:user_id")
	users.GET("/bookmarks", s.listBookmarks)
	users.POST("/bookmarks", s.addBookmark)
	users.DELETE("/bookmarks/:mandala/:sukta/:rik", s.deleteBookmark)
	users.GET("/notes", s.listNotes)
	users.POST("/notes", s.addNote)
	users.DELETE("/notes/:id", s.deleteNote)

	return e
}

// ready reports whether the search index has been installed.
func (s *Server) ready(c echo.Context) error {
	if !s.engine.Ready() {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "indexing"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
}
