package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/skypath/itinerary-search/internal/adapter/http"
	"github.com/skypath/itinerary-search/internal/adapter/http/response"
)

func itineraryFlightNumbers(it httpadapter.ItineraryDTO) []string {
	out := make([]string, len(it.Segments))
	for i, s := range it.Segments {
		out[i] = s.FlightNumber
	}
	return out
}

func TestSearch_DomesticRoute(t *testing.T) {
	server := NewTestServer(t)

	dto := server.Search(t, `{"origin":"JFK","destination":"LAX","date":"2024-03-15"}`)

	// Direct SW101, the ORD connection, and the SFO connection, ranked by
	// total duration.
	require.Len(t, dto.Itineraries, 3)
	assert.Equal(t, []string{"SW101"}, itineraryFlightNumbers(dto.Itineraries[0]))
	assert.Equal(t, []string{"SW102", "SW103"}, itineraryFlightNumbers(dto.Itineraries[1]))
	assert.Equal(t, []string{"SW104", "SW105"}, itineraryFlightNumbers(dto.Itineraries[2]))

	assert.Equal(t, 390, dto.Itineraries[0].TotalDurationMinutes)
	assert.Equal(t, "6h 30m", dto.Itineraries[0].TotalDuration)
	assert.Equal(t, 495, dto.Itineraries[1].TotalDurationMinutes)
	assert.Equal(t, 565, dto.Itineraries[2].TotalDurationMinutes)

	assert.Equal(t, 3, dto.Metadata.TotalResults)
	assert.Equal(t, 1, dto.Metadata.DirectCount)

	ordConnection := dto.Itineraries[1]
	require.Len(t, ordConnection.Layovers, 1)
	assert.Equal(t, "ORD", ordConnection.Layovers[0].Airport)
	assert.Equal(t, 90, ordConnection.Layovers[0].DurationMinutes)
	assert.False(t, ordConnection.Layovers[0].International)
	assert.Equal(t, 390.0, ordConnection.TotalPrice)
	assert.Equal(t, 1, ordConnection.Stops)
}

func TestSearch_InternationalRoute(t *testing.T) {
	server := NewTestServer(t)

	dto := server.Search(t, `{"origin":"JFK","destination":"CDG","date":"2024-03-15"}`)

	// Direct AB203 (510m) beats the LHR connection (680m).
	require.Len(t, dto.Itineraries, 2)
	assert.Equal(t, []string{"AB203"}, itineraryFlightNumbers(dto.Itineraries[0]))
	assert.Equal(t, []string{"AB201", "AB202"}, itineraryFlightNumbers(dto.Itineraries[1]))

	viaLondon := dto.Itineraries[1]
	require.Len(t, viaLondon.Layovers, 1)
	assert.Equal(t, "LHR", viaLondon.Layovers[0].Airport)
	assert.True(t, viaLondon.Layovers[0].International)
	assert.Equal(t, 110, viaLondon.Layovers[0].DurationMinutes)
}

func TestSearch_SegmentTimestamps(t *testing.T) {
	server := NewTestServer(t)

	dto := server.Search(t, `{"origin":"JFK","destination":"LAX","date":"2024-03-15"}`)
	require.NotEmpty(t, dto.Itineraries)

	direct := dto.Itineraries[0].Segments[0]
	assert.Equal(t, "2024-03-15T08:00:00", direct.DepartureLocal)
	assert.Equal(t, "2024-03-15T12:00:00Z", direct.DepartureUTC)
	assert.Equal(t, "2024-03-15T11:30:00", direct.ArrivalLocal)
	assert.Equal(t, "2024-03-15T18:30:00Z", direct.ArrivalUTC)
}

func TestSearch_NoFlightsOnDate(t *testing.T) {
	server := NewTestServer(t)

	dto := server.Search(t, `{"origin":"JFK","destination":"LAX","date":"2024-04-01"}`)

	assert.NotNil(t, dto.Itineraries)
	assert.Empty(t, dto.Itineraries)
	assert.Equal(t, 0, dto.Metadata.TotalResults)
}

func TestSearch_Filters(t *testing.T) {
	server := NewTestServer(t)

	t.Run("direct only", func(t *testing.T) {
		dto := server.Search(t, `{"origin":"JFK","destination":"LAX","date":"2024-03-15","filters":{"maxStops":0}}`)
		require.Len(t, dto.Itineraries, 1)
		assert.Equal(t, 0, dto.Itineraries[0].Stops)
	})

	t.Run("max price", func(t *testing.T) {
		dto := server.Search(t, `{"origin":"JFK","destination":"LAX","date":"2024-03-15","filters":{"maxPrice":400}}`)
		require.Len(t, dto.Itineraries, 2)
		for _, it := range dto.Itineraries {
			assert.LessOrEqual(t, it.TotalPrice, 400.0)
		}
	})

	t.Run("airline allow-list", func(t *testing.T) {
		dto := server.Search(t, `{"origin":"JFK","destination":"CDG","date":"2024-03-15","filters":{"airlines":["SkyWays"]}}`)
		assert.Empty(t, dto.Itineraries)
	})
}

func TestSearch_BadRequests(t *testing.T) {
	server := NewTestServer(t)

	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{
			name:     "missing fields",
			body:     `{}`,
			wantCode: response.CodeValidationError,
		},
		{
			name:     "unknown airport",
			body:     `{"origin":"JFK","destination":"ZZZ","date":"2024-03-15"}`,
			wantCode: response.CodeUnknownAirport,
		},
		{
			name:     "identical endpoints",
			body:     `{"origin":"JFK","destination":"JFK","date":"2024-03-15"}`,
			wantCode: response.CodeValidationError,
		},
		{
			name:     "malformed date",
			body:     `{"origin":"JFK","destination":"LAX","date":"15/03/2024"}`,
			wantCode: response.CodeValidationError,
		},
		{
			name:     "malformed body",
			body:     `{"origin":`,
			wantCode: response.CodeInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := server.Request(http.MethodPost, "/api/v1/itineraries/search", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var detail response.ErrorDetail
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
			assert.Equal(t, tt.wantCode, detail.Code)
		})
	}
}

func TestSearch_Idempotent(t *testing.T) {
	server := NewTestServer(t)
	body := `{"origin":"JFK","destination":"LAX","date":"2024-03-15"}`

	first := server.Search(t, body)
	second := server.Search(t, body)

	// Timing metadata may differ between runs; everything else is identical.
	first.Metadata.SearchTimeMs = 0
	second.Metadata.SearchTimeMs = 0
	assert.Equal(t, first, second)
}

func TestSearch_ConcurrentRequests(t *testing.T) {
	server := NewTestServer(t)

	var wg sync.WaitGroup
	errs := make(chan error, 20)

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := server.Request(http.MethodPost, "/api/v1/itineraries/search",
				`{"origin":"JFK","destination":"LAX","date":"2024-03-15"}`)
			if rec.Code != http.StatusOK {
				errs <- fmt.Errorf("unexpected status %d", rec.Code)
			}
		}()
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestListAirports(t *testing.T) {
	server := NewTestServer(t)

	rec := server.Request(http.MethodGet, "/api/v1/airports", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var dto httpadapter.AirportsResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))

	assert.Equal(t, 7, dto.Total)
	codes := make([]string, len(dto.Airports))
	for i, a := range dto.Airports {
		codes[i] = a.Code
	}
	assert.Equal(t, []string{"CDG", "JFK", "LAX", "LHR", "NRT", "ORD", "SFO"}, codes)
}

func TestHealth(t *testing.T) {
	server := NewTestServer(t)

	rec := server.Request(http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
