// Package http provides the HTTP handler layer for the itinerary search API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"regexp"
	"time"
)

// SearchItinerariesRequest represents the request body for itinerary search.
type SearchItinerariesRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "LAX")
	Destination string `json:"destination"`

	// Date is the departure date in YYYY-MM-DD format, interpreted as a
	// local calendar date at the origin airport
	Date string `json:"date"`

	// Filters contains optional filtering criteria
	Filters *FilterDTO `json:"filters,omitempty"`
}

// FilterDTO represents optional filters for itinerary search.
// Example: {"maxPrice": 900, "maxStops": 1, "airlines": ["SkyWays"]}
type FilterDTO struct {
	// MaxPrice drops itineraries whose total price exceeds this amount
	MaxPrice *float64 `json:"maxPrice,omitempty" example:"900"`

	// MaxStops drops itineraries with more stops than this value (0 = direct only)
	MaxStops *int `json:"maxStops,omitempty" example:"1"`

	// Airlines keeps only itineraries operated entirely by these airlines
	Airlines []string `json:"airlines,omitempty" example:"SkyWays,AirBridge"`
}

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Field + ": " + v.Errors[0].Message
}

// ToMap converts the validation errors to a field->message map.
func (v *ValidationErrors) ToMap() map[string]string {
	m := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		m[e.Field] = e.Message
	}
	return m
}

// add appends a field error.
func (v *ValidationErrors) add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

// Validate checks the request at the HTTP boundary: required fields, code
// shape, date shape, distinct endpoints, and filter sanity. Whether the
// codes exist is the engine's concern.
func (r *SearchItinerariesRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.Origin == "" {
		errs.add("origin", "origin is required")
	} else if !airportCodePattern.MatchString(r.Origin) {
		errs.add("origin", "must be a valid 3-letter IATA code")
	}

	if r.Destination == "" {
		errs.add("destination", "destination is required")
	} else if !airportCodePattern.MatchString(r.Destination) {
		errs.add("destination", "must be a valid 3-letter IATA code")
	}

	if r.Origin != "" && r.Origin == r.Destination {
		errs.add("destination", "origin and destination must be different")
	}

	if r.Date == "" {
		errs.add("date", "date is required")
	} else if !datePattern.MatchString(r.Date) {
		errs.add("date", "must be in YYYY-MM-DD format")
	} else if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		errs.add("date", "is not a valid calendar date")
	}

	if r.Filters != nil {
		if r.Filters.MaxPrice != nil && *r.Filters.MaxPrice < 0 {
			errs.add("filters.maxPrice", "must not be negative")
		}
		if r.Filters.MaxStops != nil && *r.Filters.MaxStops < 0 {
			errs.add("filters.maxStops", "must not be negative")
		}
	}

	if len(errs.Errors) > 0 {
		return errs
	}
	return nil
}
