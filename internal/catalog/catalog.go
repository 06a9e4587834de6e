// Package catalog holds the static flight catalog and its connectivity index.
// Both are built once at startup and are strictly read-only afterwards, which
// makes every search request safely executable in parallel with no locking.
package catalog

import (
	"sort"

	"github.com/skypath/itinerary-search/internal/domain"
)

// Catalog is the full set of known flights plus an adjacency index mapping
// each airport code to its outbound flights. Every flight in the catalog has
// already been normalized (UTC instants and duration attached); flights that
// fail normalization never reach the catalog.
type Catalog struct {
	flights  []domain.Flight
	byOrigin map[string][]domain.Flight
}

// New builds a catalog and its connectivity index from normalized flights.
// Outbound flight lists are sorted by UTC departure ascending, so downstream
// pruning by time is monotonic. The input slice is copied; the caller may
// reuse it.
func New(flights []domain.Flight) *Catalog {
	all := make([]domain.Flight, len(flights))
	copy(all, flights)

	byOrigin := make(map[string][]domain.Flight)
	for _, f := range all {
		byOrigin[f.Origin] = append(byOrigin[f.Origin], f)
	}

	for origin := range byOrigin {
		outbound := byOrigin[origin]
		sort.SliceStable(outbound, func(i, j int) bool {
			return outbound[i].Departure.UTC.Before(outbound[j].Departure.UTC)
		})
	}

	return &Catalog{
		flights:  all,
		byOrigin: byOrigin,
	}
}

// FlightsFrom returns the flights departing from the given airport, ordered
// by UTC departure ascending. Returns an empty slice for airports with no
// outbound flights. The returned slice is shared and must not be modified.
func (c *Catalog) FlightsFrom(code string) []domain.Flight {
	return c.byOrigin[code]
}

// All returns every flight in the catalog, in load order.
// The returned slice is shared and must not be modified.
func (c *Catalog) All() []domain.Flight {
	return c.flights
}

// Len returns the number of flights in the catalog.
func (c *Catalog) Len() int {
	return len(c.flights)
}
