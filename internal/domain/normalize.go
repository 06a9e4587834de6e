package domain

import (
	"time"

	"github.com/skypath/itinerary-search/internal/infrastructure/timeutil"
)

// TimeNormalizer converts local flight times into absolute UTC instants
// using the airport directory's timezone data.
//
// A dataset records "2024-03-15T08:00:00" at JFK; the normalizer interprets
// that wall-clock time in America/New_York and derives the UTC instant. All
// downstream ordering, layover gaps, and durations are computed on the UTC
// instant, never on wall-clock values.
type TimeNormalizer struct {
	directory *Directory
}

// NewTimeNormalizer creates a TimeNormalizer backed by the given directory.
func NewTimeNormalizer(directory *Directory) *TimeNormalizer {
	return &TimeNormalizer{directory: directory}
}

// Normalize parses a local date-time string for the given airport and returns
// the paired local/UTC representation.
// Returns a wrapped ErrUnknownAirport if the code is absent from the
// directory, and a wrapped ErrInvalidTime if the value cannot be parsed.
func (n *TimeNormalizer) Normalize(value, airportCode string) (FlightTime, error) {
	airport, err := n.directory.Get(airportCode)
	if err != nil {
		return FlightTime{}, err
	}

	local, err := timeutil.ParseInTimezone(LocalTimeLayout, value, airport.Timezone)
	if err != nil {
		return FlightTime{}, NewInvalidTimeError(value)
	}

	return FlightTime{
		Local: local,
		UTC:   local.UTC(),
	}, nil
}

// NormalizeFlight attaches normalized departure/arrival times and the derived
// duration to a flight. The flight's Origin and Destination must already be
// set. Returns an error if either endpoint is unknown, either timestamp is
// unparsable, or the derived duration is not positive.
func (n *TimeNormalizer) NormalizeFlight(f *Flight, departure, arrival string) error {
	dep, err := n.Normalize(departure, f.Origin)
	if err != nil {
		return err
	}

	arr, err := n.Normalize(arrival, f.Destination)
	if err != nil {
		return err
	}

	duration := arr.UTC.Sub(dep.UTC)
	if duration <= 0 {
		return WrapDataLoad("flight %s %s-%s has non-positive duration %s",
			f.FlightNumber, f.Origin, f.Destination, duration)
	}

	f.Departure = dep
	f.Arrival = arr
	f.DurationMinutes = int(duration / time.Minute)
	return nil
}
