// Package usecase contains the business logic for itinerary search: input
// validation, bounded-depth path enumeration over the connectivity index,
// ranking, and response assembly.
package usecase

import "github.com/skypath/itinerary-search/internal/domain"

// SearchOptions contains optional parameters for an itinerary search.
type SearchOptions struct {
	// Filters contains optional filtering criteria applied to the ranked
	// results. Filters drop itineraries; they never reorder them.
	Filters *domain.FilterOptions
}

// DefaultSearchOptions returns SearchOptions with no filters.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{Filters: nil}
}
