package domain

import "strings"

// FilterOptions defines optional filters applied to ranked itineraries.
// Filters never change ranking order; they only drop results.
type FilterOptions struct {
	// MaxPrice drops itineraries whose total price exceeds this amount
	MaxPrice *float64 `json:"maxPrice,omitempty"`

	// MaxStops drops itineraries with more stops than this value
	// (0 = direct flights only).
	MaxStops *int `json:"maxStops,omitempty"`

	// Airlines keeps only itineraries where every segment is operated by
	// one of these airlines. Matching is case-insensitive. Empty means
	// no airline filtering.
	Airlines []string `json:"airlines,omitempty"`
}

// Matches checks if an itinerary passes all the filter criteria.
// A nil FilterOptions matches everything.
func (f *FilterOptions) Matches(it Itinerary) bool {
	if f == nil {
		return true
	}

	if f.MaxPrice != nil && it.TotalPrice > *f.MaxPrice {
		return false
	}

	if f.MaxStops != nil && it.Stops > *f.MaxStops {
		return false
	}

	if len(f.Airlines) > 0 {
		for _, seg := range it.Segments {
			if !f.matchesAirline(seg.Airline) {
				return false
			}
		}
	}

	return true
}

// matchesAirline reports whether the airline is in the allow-list.
func (f *FilterOptions) matchesAirline(airline string) bool {
	for _, want := range f.Airlines {
		if strings.EqualFold(want, airline) {
			return true
		}
	}
	return false
}
