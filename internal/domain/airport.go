// Package domain contains the core business entities and rules for the itinerary
// search engine: airports, flights, itineraries, and the connection rules that
// decide which flight sequences form a legal journey.
package domain

import (
	"fmt"
	"regexp"
	"sort"
)

// Airport represents a single airport in the directory.
// Airports are loaded once at startup and never mutated.
type Airport struct {
	// Code is the 3-letter IATA airport code (e.g., "JFK"). Unique key.
	Code string `json:"code"`

	// Name is the full display name (e.g., "John F. Kennedy International Airport")
	Name string `json:"name"`

	// City is the city the airport serves (e.g., "New York")
	City string `json:"city"`

	// Country is the country the airport is located in (e.g., "United States")
	Country string `json:"country"`

	// Timezone is the IANA timezone identifier (e.g., "America/New_York")
	Timezone string `json:"timezone"`
}

// codePattern matches valid IATA airport codes (3 uppercase letters).
var codePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Directory is an immutable lookup of airport code to airport details.
// It is built once at startup and is safe for concurrent reads.
type Directory struct {
	byCode map[string]Airport
	sorted []Airport
}

// NewDirectory builds a Directory from a slice of airports.
// It rejects malformed codes, duplicate codes, and missing timezone or country
// fields, since the connection rules depend on both.
func NewDirectory(airports []Airport) (*Directory, error) {
	byCode := make(map[string]Airport, len(airports))

	for _, a := range airports {
		if !codePattern.MatchString(a.Code) {
			return nil, fmt.Errorf("airport code %q is not a valid 3-letter IATA code", a.Code)
		}
		if a.Timezone == "" {
			return nil, fmt.Errorf("airport %s has no timezone", a.Code)
		}
		if a.Country == "" {
			return nil, fmt.Errorf("airport %s has no country", a.Code)
		}
		if _, exists := byCode[a.Code]; exists {
			return nil, fmt.Errorf("duplicate airport code %s", a.Code)
		}
		byCode[a.Code] = a
	}

	// Keep a sorted snapshot for deterministic listing
	sorted := make([]Airport, 0, len(byCode))
	for _, a := range byCode {
		sorted = append(sorted, a)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Code < sorted[j].Code
	})

	return &Directory{
		byCode: byCode,
		sorted: sorted,
	}, nil
}

// Lookup returns the airport for the given code and whether it exists.
func (d *Directory) Lookup(code string) (Airport, bool) {
	a, ok := d.byCode[code]
	return a, ok
}

// Get returns the airport for the given code, or a wrapped ErrUnknownAirport
// if the code is absent. It never returns a zero-value airport as valid.
func (d *Directory) Get(code string) (Airport, error) {
	a, ok := d.byCode[code]
	if !ok {
		return Airport{}, NewUnknownAirportError(code)
	}
	return a, nil
}

// Country returns the country of the airport with the given code.
// It returns an empty string for unknown codes; callers that need a
// not-found signal should use Get.
func (d *Directory) Country(code string) string {
	return d.byCode[code].Country
}

// List returns a snapshot of all airports, sorted by code.
// The returned slice is a copy and safe to modify.
func (d *Directory) List() []Airport {
	out := make([]Airport, len(d.sorted))
	copy(out, d.sorted)
	return out
}

// Len returns the number of airports in the directory.
func (d *Directory) Len() int {
	return len(d.byCode)
}
