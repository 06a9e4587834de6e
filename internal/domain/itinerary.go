package domain

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Layover is the gap between the arrival of one segment and the departure
// of the next, at a shared airport.
type Layover struct {
	// Airport is the IATA code of the layover airport
	Airport string `json:"airport"`

	// DurationMinutes is the gap between arrival and next departure,
	// measured on UTC instants.
	DurationMinutes int `json:"durationMinutes"`

	// International reports whether the layover is classified as an
	// international connection (see ConnectionValidator).
	International bool `json:"international"`
}

// Itinerary is an ordered, validated sequence of 1-3 flight segments forming
// one travel option from origin to destination. All derived attributes are
// computed at construction; itineraries are read-only views over the catalog.
type Itinerary struct {
	// ID is a unique identifier for this search result
	ID string `json:"id"`

	// Segments are the flights, in travel order. Consecutive segments
	// chain on a shared airport.
	Segments []Flight `json:"segments"`

	// Layovers are the gaps between consecutive segments, in travel order.
	// Always len(Segments)-1 entries; empty for direct flights.
	Layovers []Layover `json:"layovers"`

	// TotalDurationMinutes is last arrival UTC minus first departure UTC.
	TotalDurationMinutes int `json:"totalDurationMinutes"`

	// TotalPrice is the sum of all segment prices.
	TotalPrice float64 `json:"totalPrice"`

	// Stops is the number of intermediate airports (segment count - 1).
	Stops int `json:"stops"`
}

// NewItinerary builds an itinerary from segments and their layovers,
// computing all derived attributes. The caller guarantees the segments
// already chain correctly and passed connection validation.
//
// The ID is a name-based UUID over the segment IDs, so the same flight
// sequence always yields the same itinerary ID. Searches stay idempotent.
func NewItinerary(segments []Flight, layovers []Layover) Itinerary {
	first := segments[0]
	last := segments[len(segments)-1]

	total := 0.0
	key := make([]byte, 0, 64)
	for _, s := range segments {
		total += s.Price
		key = append(key, s.ID...)
		key = append(key, '|')
	}

	return Itinerary{
		ID:                   uuid.NewSHA1(uuid.NameSpaceOID, key).String(),
		Segments:             segments,
		Layovers:             layovers,
		TotalDurationMinutes: int(last.Arrival.UTC.Sub(first.Departure.UTC) / time.Minute),
		TotalPrice:           total,
		Stops:                len(segments) - 1,
	}
}

// Origin returns the departure airport code of the first segment.
func (it *Itinerary) Origin() string {
	return it.Segments[0].Origin
}

// Destination returns the arrival airport code of the last segment.
func (it *Itinerary) Destination() string {
	return it.Segments[len(it.Segments)-1].Destination
}

// FormatDuration renders a minute count as a human-readable string
// (e.g., "6h 30m", "2h", "45m").
func FormatDuration(totalMinutes int) string {
	hours := totalMinutes / 60
	mins := totalMinutes % 60

	switch {
	case hours > 0 && mins > 0:
		return strconv.Itoa(hours) + "h " + strconv.Itoa(mins) + "m"
	case hours > 0:
		return strconv.Itoa(hours) + "h"
	default:
		return strconv.Itoa(mins) + "m"
	}
}
