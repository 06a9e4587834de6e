package domain

import "time"

// LocalTimeLayout is the layout for flight times as they appear in the
// dataset: a local wall-clock date-time with no UTC offset.
const LocalTimeLayout = "2006-01-02T15:04:05"

// Flight represents a single scheduled flight in the catalog.
// All time fields are attached once at load time by the TimeNormalizer;
// flights are never mutated after catalog construction.
type Flight struct {
	// ID is a unique, deterministic identifier for this flight
	// (flight number plus local departure date).
	ID string `json:"id"`

	// Airline is the operating airline's display name (e.g., "SkyWays")
	Airline string `json:"airline"`

	// FlightNumber is the airline's flight number (e.g., "SW-101")
	FlightNumber string `json:"flightNumber"`

	// Origin is the IATA code of the departure airport
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination"`

	// Aircraft is the aircraft type (e.g., "Boeing 737")
	Aircraft string `json:"aircraft"`

	// Price is the ticket price. Never negative.
	Price float64 `json:"price"`

	// Departure holds the local wall-clock departure time and its UTC instant
	Departure FlightTime `json:"departure"`

	// Arrival holds the local wall-clock arrival time and its UTC instant
	Arrival FlightTime `json:"arrival"`

	// DurationMinutes is arrival UTC minus departure UTC in minutes.
	// Always positive after overnight and date-line correction.
	DurationMinutes int `json:"durationMinutes"`
}

// FlightTime pairs a local wall-clock time with its absolute UTC instant.
// Local carries the airport's IANA location so display formatting and
// date comparisons stay in airport-local terms; UTC is used for all
// ordering and arithmetic. Keeping both fields explicit avoids silent
// overnight and date-line bugs.
type FlightTime struct {
	// Local is the wall-clock time in the airport's timezone
	Local time.Time `json:"local"`

	// UTC is the absolute instant
	UTC time.Time `json:"utc"`
}

// LocalDate returns the local calendar date as YYYY-MM-DD.
func (ft FlightTime) LocalDate() string {
	return ft.Local.Format("2006-01-02")
}

// DepartsOn reports whether the flight departs on the given local calendar
// date (YYYY-MM-DD) at its origin airport.
func (f *Flight) DepartsOn(date string) bool {
	return f.Departure.LocalDate() == date
}

// Duration returns the flight duration as a time.Duration.
func (f *Flight) Duration() time.Duration {
	return time.Duration(f.DurationMinutes) * time.Minute
}
