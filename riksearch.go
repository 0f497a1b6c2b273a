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

// Package riksearch assembles the verse corpus, relevance index, search
// engine, AI assistant, and user data storage into one service.
package riksearch

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/vedicarchive/riksearch/ai"
	"github.com/vedicarchive/riksearch/ai/openai"
	"github.com/vedicarchive/riksearch/assistant"
	"github.com/vedicarchive/riksearch/corpus"
	"github.com/vedicarchive/riksearch/index"
	"github.com/vedicarchive/riksearch/search"
	"github.com/vedicarchive/riksearch/server"
	"github.com/vedicarchive/riksearch/storage"
	"github.com/vedicarchive/riksearch/storage/badger"
)

// Service owns the corpus, the search engine with its installed index,
// and the optional assistant and user data repositories.
type Service struct {
	store        *corpus.Store
	engine       *search.Engine
	assistant    *assistant.Assistant
	backend      *badger.Backend
	bookmarkRepo storage.BookmarkRepository
	noteRepo     storage.NoteRepository
	provider     ai.AIProvider
	logger       *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	aiConfig    *ai.Config
	storagePath string
	inMemory    bool
	maxFeatures int
	logger      *slog.Logger
}

// WithAIConfig enables the AI assistant using the given provider config.
func WithAIConfig(cfg *ai.Config) ServiceOption {
	return func(o *serviceOptions) {
		o.aiConfig = cfg
	}
}

// WithStoragePath enables bookmark and note persistence at the given
// BadgerDB directory.
func WithStoragePath(path string) ServiceOption {
	return func(o *serviceOptions) {
		o.storagePath = path
	}
}

// WithInMemoryStorage enables bookmark and note storage backed by an
// in-memory BadgerDB. Data is lost on shutdown.
func WithInMemoryStorage() ServiceOption {
	return func(o *serviceOptions) {
		o.inMemory = true
	}
}

// WithMaxFeatures caps the indexed vocabulary size.
// Default is index.DefaultMaxFeatures.
func WithMaxFeatures(n int) ServiceOption {
	return func(o *serviceOptions) {
		o.maxFeatures = n
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(o *serviceOptions) {
		o.logger = logger
	}
}

// NewService loads the corpus from corpusPath, builds the relevance
// index, and wires up the configured collaborators.
func NewService(corpusPath string, opts ...ServiceOption) (*Service, error) {
	options := &serviceOptions{
		maxFeatures: index.DefaultMaxFeatures,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	store, err := corpus.LoadFile(corpusPath)
	if err != nil {
		return nil, err
	}

	snap, err := index.Build(store.Verses(),
		index.WithMaxFeatures(options.maxFeatures),
		index.WithLogger(options.logger))
	if err != nil {
		return nil, err
	}

	engine, err := search.NewEngine(search.WithLogger(options.logger))
	if err != nil {
		return nil, err
	}
	engine.Install(snap)

	s := &Service{
		store:  store,
		engine: engine,
		logger: options.logger,
	}

	if options.storagePath != "" || options.inMemory {
		backend, err := badger.OpenBackend(options.storagePath, options.inMemory)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.backend = backend

		bookmarkRepo, err := badger.NewBookmarkRepository(backend)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.bookmarkRepo = bookmarkRepo

		noteRepo, err := badger.NewNoteRepository(backend)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.noteRepo = noteRepo
	}

	if options.aiConfig != nil {
		provider, err := openai.NewProvider(options.aiConfig)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.provider = provider

		a, err := assistant.New(engine, provider.Answerer(), assistant.WithLogger(options.logger))
		if err != nil {
			s.Close()
			return nil, err
		}
		s.assistant = a
	}

	return s, nil
}

// Close releases all resources. Safe to call on a partially built service.
func (s *Service) Close() error {
	var firstErr error

	if s.provider != nil {
		if err := s.provider.Close(); err != nil {
			s.logger.Error("error closing AI provider", "err", err)
			firstErr = err
		}
	}
	if s.noteRepo != nil {
		if err := s.noteRepo.Close(); err != nil {
			s.logger.Error("error closing note repository", "err", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if s.bookmarkRepo != nil {
		if err := s.bookmarkRepo.Close(); err != nil {
			s.logger.Error("error closing bookmark repository", "err", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if s.backend != nil {
		if err := s.backend.Close(); err != nil {
			s.logger.Error("error closing storage backend", "err", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if s.engine != nil {
		s.engine.Close()
	}
	return firstErr
}

// Corpus returns the verse store.
func (s *Service) Corpus() *corpus.Store {
	return s.store
}

// Engine returns the search engine.
func (s *Service) Engine() *search.Engine {
	return s.engine
}

// Assistant returns the AI assistant, or nil when not configured.
func (s *Service) Assistant() *assistant.Assistant {
	return s.assistant
}

// BookmarkRepository returns the bookmark store, or nil when storage is
// not configured.
func (s *Service) BookmarkRepository() storage.BookmarkRepository {
	return s.bookmarkRepo
}

// NoteRepository returns the note store, or nil when storage is not
// configured.
func (s *Service) NoteRepository() storage.NoteRepository {
	return s.noteRepo
}

// Handler builds the HTTP API over the service's collaborators.
func (s *Service) Handler() (*echo.Echo, error) {
	opts := []server.Option{server.WithLogger(s.logger)}
	if s.assistant != nil {
		opts = append(opts, server.WithAssistant(s.assistant))
	}
	if s.bookmarkRepo != nil && s.noteRepo != nil {
		opts = append(opts, server.WithUserData(s.bookmarkRepo, s.noteRepo))
	}

	srv, err := server.New(s.store, s.engine, opts...)
	if err != nil {
		return nil, err
	}
	return srv.Handler(), nil
}
