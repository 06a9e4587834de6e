package http

// SearchResponseDTO is the data transfer object for search responses.
// It matches the expected API output format with snake_case fields.
type SearchResponseDTO struct {
	SearchCriteria SearchCriteriaDTO `json:"search_criteria"`
	Metadata       MetadataDTO       `json:"metadata"`
	Itineraries    []ItineraryDTO    `json:"itineraries"`
}

// SearchCriteriaDTO echoes the search criteria in the response.
type SearchCriteriaDTO struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
}

// MetadataDTO contains metadata about the search execution.
type MetadataDTO struct {
	TotalResults int   `json:"total_results"`
	DirectCount  int   `json:"direct_count"`
	SearchTimeMs int64 `json:"search_time_ms"`
}

// ItineraryDTO is the data transfer object for a single itinerary.
type ItineraryDTO struct {
	ID                   string       `json:"id"`
	Segments             []SegmentDTO `json:"segments"`
	Layovers             []LayoverDTO `json:"layovers"`
	TotalDurationMinutes int          `json:"total_duration_minutes"`
	TotalDuration        string       `json:"total_duration"`
	TotalPrice           float64      `json:"total_price"`
	Stops                int          `json:"stops"`
}

// SegmentDTO is the data transfer object for a single flight segment.
// Local timestamps are for display; UTC instants let consumers run their
// own correctness checks.
type SegmentDTO struct {
	ID              string  `json:"id"`
	Airline         string  `json:"airline"`
	FlightNumber    string  `json:"flight_number"`
	Aircraft        string  `json:"aircraft"`
	Origin          string  `json:"origin"`
	Destination     string  `json:"destination"`
	DepartureLocal  string  `json:"departure_local"`
	DepartureUTC    string  `json:"departure_utc"`
	ArrivalLocal    string  `json:"arrival_local"`
	ArrivalUTC      string  `json:"arrival_utc"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
}

// LayoverDTO is the data transfer object for a layover.
type LayoverDTO struct {
	Airport         string `json:"airport"`
	DurationMinutes int    `json:"duration_minutes"`
	International   bool   `json:"international"`
}

// AirportDTO is the data transfer object for an airport listing entry.
type AirportDTO struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Timezone string `json:"timezone"`
}

// AirportsResponseDTO wraps the airport listing.
type AirportsResponseDTO struct {
	Airports []AirportDTO `json:"airports"`
	Total    int          `json:"total"`
}
