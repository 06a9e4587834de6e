package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func filterTestItinerary(price float64, stops int, airlines ...string) Itinerary {
	segments := make([]Flight, len(airlines))
	for i, a := range airlines {
		segments[i] = Flight{Airline: a}
	}
	return Itinerary{
		Segments:   segments,
		TotalPrice: price,
		Stops:      stops,
	}
}

func TestFilterOptions_Matches(t *testing.T) {
	maxPrice := 500.0
	maxStops := 1

	tests := []struct {
		name      string
		filters   *FilterOptions
		itinerary Itinerary
		want      bool
	}{
		{
			name:      "nil filter matches everything",
			filters:   nil,
			itinerary: filterTestItinerary(9999, 2, "SkyWays"),
			want:      true,
		},
		{
			name:      "price within limit",
			filters:   &FilterOptions{MaxPrice: &maxPrice},
			itinerary: filterTestItinerary(499, 0, "SkyWays"),
			want:      true,
		},
		{
			name:      "price above limit",
			filters:   &FilterOptions{MaxPrice: &maxPrice},
			itinerary: filterTestItinerary(501, 0, "SkyWays"),
			want:      false,
		},
		{
			name:      "stops within limit",
			filters:   &FilterOptions{MaxStops: &maxStops},
			itinerary: filterTestItinerary(100, 1, "SkyWays", "SkyWays"),
			want:      true,
		},
		{
			name:      "too many stops",
			filters:   &FilterOptions{MaxStops: &maxStops},
			itinerary: filterTestItinerary(100, 2, "SkyWays", "SkyWays", "SkyWays"),
			want:      false,
		},
		{
			name:      "airline allow-list matches all segments case-insensitively",
			filters:   &FilterOptions{Airlines: []string{"skyways"}},
			itinerary: filterTestItinerary(100, 1, "SkyWays", "SkyWays"),
			want:      true,
		},
		{
			name:      "one segment operated by another airline",
			filters:   &FilterOptions{Airlines: []string{"SkyWays"}},
			itinerary: filterTestItinerary(100, 1, "SkyWays", "AirBridge"),
			want:      false,
		},
		{
			name:      "empty airline list means no airline filtering",
			filters:   &FilterOptions{Airlines: []string{}},
			itinerary: filterTestItinerary(100, 0, "AirBridge"),
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filters.Matches(tt.itinerary))
		})
	}
}
