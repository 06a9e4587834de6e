package domain

import "time"

// Default layover bounds. A connection tighter than the minimum is not
// realistically makeable; one wider than the maximum is not a connection
// a traveler would choose.
const (
	// DefaultMinDomesticLayover is the minimum gap for a domestic connection.
	DefaultMinDomesticLayover = 45 * time.Minute

	// DefaultMinInternationalLayover is the minimum gap for an international connection.
	DefaultMinInternationalLayover = 90 * time.Minute

	// DefaultMaxLayover is the maximum gap for any connection.
	DefaultMaxLayover = 6 * time.Hour
)

// LayoverBounds holds the configurable connection gap limits.
type LayoverBounds struct {
	// MinDomestic is the minimum gap when the connection is domestic
	MinDomestic time.Duration

	// MinInternational is the minimum gap when the connection is international
	MinInternational time.Duration

	// Max is the maximum gap regardless of classification
	Max time.Duration
}

// DefaultLayoverBounds returns the standard 45m/90m/6h bounds.
func DefaultLayoverBounds() LayoverBounds {
	return LayoverBounds{
		MinDomestic:      DefaultMinDomesticLayover,
		MinInternational: DefaultMinInternationalLayover,
		Max:              DefaultMaxLayover,
	}
}

// ConnectionRule is a single named predicate over a pair of consecutive
// flights. Rules are pure: no side effects, no mutation of the flights.
type ConnectionRule struct {
	// Name identifies the rule in logs and tests
	Name string

	// Check returns true if the pair passes this rule
	Check func(arriving, departing *Flight) bool
}

// ConnectionValidator decides whether two consecutive flights form a legal
// connection. It evaluates an ordered list of independent rules and
// short-circuits on the first failure, so new rules can be appended without
// touching existing ones.
type ConnectionValidator struct {
	directory *Directory
	bounds    LayoverBounds
	rules     []ConnectionRule
}

// NewConnectionValidator creates a validator with the standard rule sequence:
// airport continuity, temporal order, then layover bounds.
func NewConnectionValidator(directory *Directory, bounds LayoverBounds) *ConnectionValidator {
	v := &ConnectionValidator{
		directory: directory,
		bounds:    bounds,
	}

	v.rules = []ConnectionRule{
		{Name: "airport-continuity", Check: v.checkContinuity},
		{Name: "temporal-order", Check: v.checkTemporalOrder},
		{Name: "layover-bounds", Check: v.checkLayoverBounds},
	}

	return v
}

// IsValid reports whether the departing flight is a legal connection after
// the arriving flight. Rules run in order; the first failure rejects the
// pair outright.
func (v *ConnectionValidator) IsValid(arriving, departing *Flight) bool {
	for _, rule := range v.rules {
		if !rule.Check(arriving, departing) {
			return false
		}
	}
	return true
}

// Bounds returns the layover bounds the validator enforces.
func (v *ConnectionValidator) Bounds() LayoverBounds {
	return v.bounds
}

// Rules returns the names of the rules in evaluation order.
func (v *ConnectionValidator) Rules() []string {
	names := make([]string, len(v.rules))
	for i, r := range v.rules {
		names[i] = r.Name
	}
	return names
}

// Gap returns the layover duration between the arriving flight's arrival
// and the departing flight's departure, measured on UTC instants.
func (v *ConnectionValidator) Gap(arriving, departing *Flight) time.Duration {
	return departing.Departure.UTC.Sub(arriving.Arrival.UTC)
}

// IsInternational classifies the connection at the shared airport.
//
// The layover airport is domestic only when its country matches both the
// arriving flight's origin country and the departing flight's destination
// country; any mismatch makes the connection international. The three-way
// comparison matters: a US-US hop into a US-UK hop is international at the
// shared airport even though that airport is domestic to the first flight.
func (v *ConnectionValidator) IsInternational(arriving, departing *Flight) bool {
	layover, ok := v.directory.Lookup(arriving.Destination)
	if !ok {
		// Catalog construction guarantees known endpoints; treat an
		// unknown layover airport as international to stay conservative.
		return true
	}

	originCountry := v.directory.Country(arriving.Origin)
	destinationCountry := v.directory.Country(departing.Destination)

	domestic := layover.Country == originCountry && layover.Country == destinationCountry
	return !domestic
}

// Layover builds the Layover record for a validated connection.
func (v *ConnectionValidator) Layover(arriving, departing *Flight) Layover {
	return Layover{
		Airport:         arriving.Destination,
		DurationMinutes: int(v.Gap(arriving, departing) / time.Minute),
		International:   v.IsInternational(arriving, departing),
	}
}

// checkContinuity verifies the arrival airport of the first flight is the
// departure airport of the second.
func (v *ConnectionValidator) checkContinuity(arriving, departing *Flight) bool {
	return arriving.Destination == departing.Origin
}

// checkTemporalOrder verifies the departing flight leaves strictly after the
// arriving flight lands, on UTC instants.
func (v *ConnectionValidator) checkTemporalOrder(arriving, departing *Flight) bool {
	return departing.Departure.UTC.After(arriving.Arrival.UTC)
}

// checkLayoverBounds verifies the gap falls inside the allowed window for
// the connection's domestic/international classification.
func (v *ConnectionValidator) checkLayoverBounds(arriving, departing *Flight) bool {
	gap := v.Gap(arriving, departing)

	min := v.bounds.MinDomestic
	if v.IsInternational(arriving, departing) {
		min = v.bounds.MinInternational
	}

	return gap >= min && gap <= v.bounds.Max
}
