package usecase

import (
	"sort"

	"github.com/skypath/itinerary-search/internal/domain"
)

// RankItineraries orders candidates by the fixed comparison tuple
// (total duration ascending, total price ascending, stop count ascending).
//
// The sort is stable: itineraries whose full tuple is equal keep their
// enumeration order, so identical searches always produce identical output.
// Does NOT mutate the input slice.
func RankItineraries(itineraries []domain.Itinerary) []domain.Itinerary {
	if len(itineraries) == 0 {
		return itineraries
	}

	result := make([]domain.Itinerary, len(itineraries))
	copy(result, itineraries)

	sort.SliceStable(result, func(i, j int) bool {
		return lessByTuple(&result[i], &result[j])
	})

	return result
}

// lessByTuple compares two itineraries lexicographically on
// (duration, price, stops). Returns false for fully equal tuples so the
// stable sort preserves enumeration order among ties.
func lessByTuple(a, b *domain.Itinerary) bool {
	if a.TotalDurationMinutes != b.TotalDurationMinutes {
		return a.TotalDurationMinutes < b.TotalDurationMinutes
	}
	if a.TotalPrice != b.TotalPrice {
		return a.TotalPrice < b.TotalPrice
	}
	return a.Stops < b.Stops
}

// ApplyFilters drops itineraries that fail the filter criteria, preserving
// order. A nil filter returns the input unchanged.
func ApplyFilters(itineraries []domain.Itinerary, filters *domain.FilterOptions) []domain.Itinerary {
	if filters == nil {
		return itineraries
	}

	result := make([]domain.Itinerary, 0, len(itineraries))
	for _, it := range itineraries {
		if filters.Matches(it) {
			result = append(result, it)
		}
	}
	return result
}
