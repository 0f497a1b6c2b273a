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
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/vedicarchive/riksearch/core"
	"github.com/vedicarchive/riksearch/corpus"
)

// verseJSON is the full wire form of one verse.
type verseJSON struct {
	Mandala         int    `json:"mandala"`
	Sukta           int    `json:"sukta"`
	Rik             int    `json:"rik_number"`
	OriginalScript  string `json:"original_script,omitempty"`
	Transliteration string `json:"transliteration,omitempty"`
	Translation     string `json:"translation,omitempty"`
	Deity           string `json:"deity,omitempty"`
}

func toVerseJSON(v core.Verse) verseJSON {
	return verseJSON{
		Mandala:         v.Ref.Mandala,
		Sukta:           v.Ref.Sukta,
		Rik:             v.Ref.Rik,
		OriginalScript:  v.OriginalScript,
		Transliteration: v.Transliteration,
		Translation:     v.Translation,
		Deity:           v.Deity,
	}
}

// pathInt parses one numeric path parameter.
func pathInt(c echo.Context, name string) (int, error) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be an integer")
	}
	return n, nil
}

func (s *Server) listMandalas(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"mandalas": s.store.Mandalas(),
	})
}

func (s *Server) listSuktas(c echo.Context) error {
	mandala, err := pathInt(c, "mandala")
	if err != nil {
		return err
	}

	suktas, err := s.store.Suktas(mandala)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"mandala": mandala,
		"suktas":  suktas,
	})
}

func (s *Server) listRiks(c echo.Context) error {
	mandala, err := pathInt(c, "mandala")
	if err != nil {
		return err
	}
	sukta, err := pathInt(c, "sukta")
	if err != nil {
		return err
	}

	riks, err := s.store.Riks(mandala, sukta)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"mandala": mandala,
		"sukta":   sukta,
		"riks":    riks,
	})
}

func (s *Server) getRik(c echo.Context) error {
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

	verse, err := s.store.Verse(core.VerseRef{Mandala: mandala, Sukta: sukta, Rik: rik})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toVerseJSON(verse))
}

// suktaView returns a whole sukta with its recitation audio link.
func (s *Server) suktaView(c echo.Context) error {
	mandala, err := pathInt(c, "mandala")
	if err != nil {
		return err
	}
	sukta, err := pathInt(c, "sukta")
	if err != nil {
		return err
	}

	verses, err := s.store.Sukta(mandala, sukta)
	if err != nil {
		return httpError(err)
	}

	riks := make([]verseJSON, 0, len(verses))
	for _, v := range verses {
		riks = append(riks, toVerseJSON(v))
	}
	return c.JSON(http.StatusOK, map[string]any{
		"mandala":   mandala,
		"sukta":     sukta,
		"audio_url": corpus.AudioURL(mandala, sukta),
		"riks":      riks,
	})
}

func (s *Server) randomVerse(c echo.Context) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return c.JSON(http.StatusOK, toVerseJSON(s.store.Random(rng)))
}

func (s *Server) dailyVerse(c echo.Context) error {
	return c.JSON(http.StatusOK, toVerseJSON(s.store.Daily(time.Now())))
}
