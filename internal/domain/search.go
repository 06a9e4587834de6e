package domain

import (
	"regexp"
	"time"
)

// SearchCriteria defines the parameters for an itinerary search request.
type SearchCriteria struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "LAX")
	Destination string `json:"destination"`

	// Date is the requested departure date in YYYY-MM-DD format,
	// interpreted as a local calendar date at the origin airport.
	Date string `json:"date"`
}

// dateShapePattern matches dates shaped as YYYY-MM-DD.
var dateShapePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate checks the structural validity of the criteria: code shape,
// distinct endpoints, and a parseable calendar date. Whether the codes
// exist in the directory is checked by the search use case, which owns
// the directory.
func (c *SearchCriteria) Validate() error {
	if c.Origin == "" {
		return WrapInvalidRequest("origin is required")
	}
	if !codePattern.MatchString(c.Origin) {
		return WrapInvalidRequest("origin must be a valid 3-letter IATA code, got %q", c.Origin)
	}

	if c.Destination == "" {
		return WrapInvalidRequest("destination is required")
	}
	if !codePattern.MatchString(c.Destination) {
		return WrapInvalidRequest("destination must be a valid 3-letter IATA code, got %q", c.Destination)
	}

	if c.Origin == c.Destination {
		return ErrSameAirport
	}

	if c.Date == "" {
		return WrapInvalidRequest("date is required")
	}
	if !dateShapePattern.MatchString(c.Date) {
		return NewInvalidDateError(c.Date)
	}
	if _, err := time.Parse("2006-01-02", c.Date); err != nil {
		return NewInvalidDateError(c.Date)
	}

	return nil
}

// SearchResponse represents the full result of an itinerary search.
type SearchResponse struct {
	// SearchCriteria echoes the original search parameters
	SearchCriteria SearchCriteria `json:"search_criteria"`

	// Metadata contains information about the search execution
	Metadata SearchMetadata `json:"metadata"`

	// Itineraries contains the ranked results. Empty (never nil) when no
	// itinerary satisfies the constraints; zero results is not an error.
	Itineraries []Itinerary `json:"itineraries"`
}

// SearchMetadata contains metadata about the search execution.
type SearchMetadata struct {
	// TotalResults is the number of itineraries returned
	TotalResults int `json:"total_results"`

	// DirectCount is the number of returned itineraries with zero stops
	DirectCount int `json:"direct_count"`

	// SearchTimeMs is the search duration in milliseconds
	SearchTimeMs int64 `json:"search_time_ms"`
}

// NewSearchResponse assembles a response, guaranteeing a non-nil itinerary
// slice and a consistent result count.
func NewSearchResponse(criteria SearchCriteria, itineraries []Itinerary, metadata SearchMetadata) *SearchResponse {
	if itineraries == nil {
		itineraries = []Itinerary{}
	}

	metadata.TotalResults = len(itineraries)
	metadata.DirectCount = 0
	for _, it := range itineraries {
		if it.Stops == 0 {
			metadata.DirectCount++
		}
	}

	return &SearchResponse{
		SearchCriteria: criteria,
		Metadata:       metadata,
		Itineraries:    itineraries,
	}
}
