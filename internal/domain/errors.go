package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the itinerary search engine.
// These are wrapped with context using fmt.Errorf and %w, so callers
// should use errors.Is (or the Is* helpers below) rather than equality checks.
var (
	// ErrUnknownAirport indicates an airport code that is not in the directory.
	ErrUnknownAirport = errors.New("unknown airport")

	// ErrSameAirport indicates a search where origin and destination are identical.
	ErrSameAirport = errors.New("origin and destination must be different")

	// ErrInvalidDate indicates a departure date that cannot be parsed as a calendar date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidTime indicates a flight timestamp that cannot be parsed as a local date-time.
	ErrInvalidTime = errors.New("invalid time")

	// ErrInvalidRequest indicates a structurally invalid search request.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrDataLoad indicates the flight dataset could not be loaded or normalized.
	// This is fatal at startup: the engine never serves a partially loaded catalog.
	ErrDataLoad = errors.New("flight data load failed")
)

// NewUnknownAirportError wraps ErrUnknownAirport with the offending code.
func NewUnknownAirportError(code string) error {
	return fmt.Errorf("%w: %q", ErrUnknownAirport, code)
}

// NewInvalidDateError wraps ErrInvalidDate with the offending value.
func NewInvalidDateError(date string) error {
	return fmt.Errorf("%w: %q is not a valid YYYY-MM-DD date", ErrInvalidDate, date)
}

// NewInvalidTimeError wraps ErrInvalidTime with the offending value.
func NewInvalidTimeError(value string) error {
	return fmt.Errorf("%w: %q is not a valid local date-time", ErrInvalidTime, value)
}

// WrapInvalidRequest creates an error wrapping ErrInvalidRequest with a formatted message.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// WrapDataLoad creates an error wrapping ErrDataLoad with a formatted message.
func WrapDataLoad(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrDataLoad, fmt.Sprintf(format, args...))
}

// IsUnknownAirport checks if an error is or wraps ErrUnknownAirport.
func IsUnknownAirport(err error) bool {
	return errors.Is(err, ErrUnknownAirport)
}

// IsSameAirport checks if an error is or wraps ErrSameAirport.
func IsSameAirport(err error) bool {
	return errors.Is(err, ErrSameAirport)
}

// IsInvalidDate checks if an error is or wraps ErrInvalidDate.
func IsInvalidDate(err error) bool {
	return errors.Is(err, ErrInvalidDate)
}

// IsInvalidTime checks if an error is or wraps ErrInvalidTime.
func IsInvalidTime(err error) bool {
	return errors.Is(err, ErrInvalidTime)
}

// IsInvalidRequest checks if an error is or wraps ErrInvalidRequest.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsDataLoad checks if an error is or wraps ErrDataLoad.
func IsDataLoad(err error) bool {
	return errors.Is(err, ErrDataLoad)
}
