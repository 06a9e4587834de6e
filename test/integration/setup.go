// Package integration contains end-to-end tests that exercise the full
// stack: HTTP routing, middleware, handlers, the search engine, and the
// bundled dataset.
package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/skypath/itinerary-search/internal/adapter/http"
	"github.com/skypath/itinerary-search/internal/adapter/http/middleware"
	"github.com/skypath/itinerary-search/internal/domain"
	"github.com/skypath/itinerary-search/internal/infrastructure/logger"
	"github.com/skypath/itinerary-search/internal/usecase"
	"github.com/skypath/itinerary-search/test/testutil"
)

// TestServer wraps a fully wired Echo instance for in-process requests.
type TestServer struct {
	echo *echo.Echo
}

// NewTestServer builds the application stack over the bundled dataset.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	directory, cat := testutil.LoadDataset(t)

	validator := domain.NewConnectionValidator(directory, domain.DefaultLayoverBounds())
	uc := usecase.NewItinerarySearch(directory, cat, validator, nil)
	handler := httpadapter.NewItineraryHandler(uc)

	e := echo.New()
	e.HideBanner = true
	middleware.Setup(e, logger.Nop().Logger)
	httpadapter.RegisterRoutes(e, handler)

	return &TestServer{echo: e}
}

// Request performs an in-process HTTP request and returns the recorder.
func (s *TestServer) Request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

// Search posts a search request and decodes the successful response.
func (s *TestServer) Search(t *testing.T, body string) *httpadapter.SearchResponseDTO {
	t.Helper()

	rec := s.Request(http.MethodPost, "/api/v1/itineraries/search", body)
	require.Equal(t, http.StatusOK, rec.Code, "unexpected response: %s", rec.Body.String())

	var dto httpadapter.SearchResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	return &dto
}
