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

	"github.com/labstack/echo/v4"
	"github.com/vedicarchive/riksearch/core"
	"github.com/vedicarchive/riksearch/search"
)

// queryFields reads the repeatable fields parameter, defaulting to the
// translation only.
func queryFields(c echo.Context) []string {
	fields := c.QueryParams()["fields"]
	if len(fields) == 0 {
		return []string{string(core.FieldTranslation)}
	}
	return fields
}

// queryInt reads an optional integer query parameter.
func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be an integer")
	}
	return n, nil
}

// queryFloat reads an optional float query parameter.
func queryFloat(c echo.Context, name string, def float64) (float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a number")
	}
	return f, nil
}

// rankedSearch handles GET /search.
func (s *Server) rankedSearch(c echo.Context) error {
	page, err := queryInt(c, "page", 1)
	if err != nil {
		return err
	}
	pageSize, err := queryInt(c, "page_size", search.DefaultPageSize)
	if err != nil {
		return err
	}
	minSimilarity, err := queryFloat(c, "min_similarity", search.DefaultMinSimilarity)
	if err != nil {
		return err
	}

	resp, err := s.engine.Search(search.Params{
		Query:         c.QueryParam("query"),
		Fields:        queryFields(c),
		Page:          page,
		PageSize:      pageSize,
		MinSimilarity: minSimilarity,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// keywordSearch handles GET /keyword-search.
func (s *Server) keywordSearch(c echo.Context) error {
	page, err := queryInt(c, "page", 1)
	if err != nil {
		return err
	}
	pageSize, err := queryInt(c, "page_size", search.DefaultPageSize)
	if err != nil {
		return err
	}

	resp, err := s.engine.KeywordSearch(search.KeywordParams{
		Query:    c.QueryParam("query"),
		Fields:   queryFields(c),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// askRequest is the body of POST /ai-assistant.
type askRequest struct {
	Query  string   `json:"query"`
	Fields []string `json:"fields"`
}

// askAssistant handles POST /ai-assistant.
func (s *Server) askAssistant(c echo.Context) error {
	if s.assistant == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "AI assistant not configured")
	}

	var req askRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	resp, err := s.assistant.Ask(c.Request().Context(), req.Query, req.Fields)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}
