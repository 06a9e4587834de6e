package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCriteria_Validate(t *testing.T) {
	tests := []struct {
		name     string
		criteria SearchCriteria
		wantErr  func(error) bool
	}{
		{
			name:     "valid criteria",
			criteria: SearchCriteria{Origin: "JFK", Destination: "LAX", Date: "2024-03-15"},
			wantErr:  nil,
		},
		{
			name:     "missing origin",
			criteria: SearchCriteria{Destination: "LAX", Date: "2024-03-15"},
			wantErr:  IsInvalidRequest,
		},
		{
			name:     "lowercase origin",
			criteria: SearchCriteria{Origin: "jfk", Destination: "LAX", Date: "2024-03-15"},
			wantErr:  IsInvalidRequest,
		},
		{
			name:     "two letter destination",
			criteria: SearchCriteria{Origin: "JFK", Destination: "LA", Date: "2024-03-15"},
			wantErr:  IsInvalidRequest,
		},
		{
			name:     "identical origin and destination",
			criteria: SearchCriteria{Origin: "JFK", Destination: "JFK", Date: "2024-03-15"},
			wantErr:  IsSameAirport,
		},
		{
			name:     "missing date",
			criteria: SearchCriteria{Origin: "JFK", Destination: "LAX"},
			wantErr:  IsInvalidRequest,
		},
		{
			name:     "malformed date",
			criteria: SearchCriteria{Origin: "JFK", Destination: "LAX", Date: "15-03-2024"},
			wantErr:  IsInvalidDate,
		},
		{
			name:     "impossible calendar date",
			criteria: SearchCriteria{Origin: "JFK", Destination: "LAX", Date: "2024-02-30"},
			wantErr:  IsInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.criteria.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, tt.wantErr(err))
		})
	}
}

func TestNewSearchResponse(t *testing.T) {
	criteria := SearchCriteria{Origin: "JFK", Destination: "LAX", Date: "2024-03-15"}

	t.Run("nil itineraries become empty slice", func(t *testing.T) {
		resp := NewSearchResponse(criteria, nil, SearchMetadata{SearchTimeMs: 3})

		require.NotNil(t, resp.Itineraries)
		assert.Empty(t, resp.Itineraries)
		assert.Equal(t, 0, resp.Metadata.TotalResults)
		assert.Equal(t, int64(3), resp.Metadata.SearchTimeMs)
	})

	t.Run("counts totals and directs", func(t *testing.T) {
		itineraries := []Itinerary{
			{Stops: 0},
			{Stops: 1},
			{Stops: 0},
		}

		resp := NewSearchResponse(criteria, itineraries, SearchMetadata{})

		assert.Equal(t, 3, resp.Metadata.TotalResults)
		assert.Equal(t, 2, resp.Metadata.DirectCount)
	})
}
