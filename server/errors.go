package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/vedicarchive/riksearch/assistant"
	"github.com/vedicarchive/riksearch/core"
	"github.com/vedicarchive/riksearch/corpus"
	"github.com/vedicarchive/riksearch/search"
	"github.com/vedicarchive/riksearch/storage"
)

// httpError maps domain errors onto HTTP status codes. Anything not
// recognized stays a 500 so internals are not leaked to callers.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, search.ErrNotReady):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, corpus.ErrMandalaNotFound),
		errors.Is(err, corpus.ErrSuktaNotFound),
		errors.Is(err, corpus.ErrRikNotFound),
		errors.Is(err, storage.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, search.ErrEmptyQuery),
		errors.Is(err, search.ErrInvalidPage),
		errors.Is(err, search.ErrInvalidPageSize),
		errors.Is(err, search.ErrInvalidMinSimilarity),
		errors.Is(err, core.ErrInvalidVerseRef),
		errors.Is(err, core.ErrInvalidBookmark),
		errors.Is(err, core.ErrInvalidNote),
		errors.Is(err, assistant.ErrEmptyQuestion):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
