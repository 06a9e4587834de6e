package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skypath/itinerary-search/internal/domain"
)

// catalogFlight builds a flight with only the fields the catalog cares
// about: origin, destination, and UTC departure ordering.
func catalogFlight(id, origin, destination string, departureUTC time.Time) domain.Flight {
	return domain.Flight{
		ID:          id,
		Origin:      origin,
		Destination: destination,
		Departure:   domain.FlightTime{UTC: departureUTC},
		Arrival:     domain.FlightTime{UTC: departureUTC.Add(2 * time.Hour)},
	}
}

func TestCatalog_FlightsFrom_SortedByDeparture(t *testing.T) {
	base := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	// Deliberately out of order in the input.
	c := New([]domain.Flight{
		catalogFlight("late", "JFK", "LAX", base.Add(6*time.Hour)),
		catalogFlight("early", "JFK", "ORD", base),
		catalogFlight("middle", "JFK", "SFO", base.Add(3*time.Hour)),
		catalogFlight("other", "ORD", "LAX", base.Add(time.Hour)),
	})

	outbound := c.FlightsFrom("JFK")
	require.Len(t, outbound, 3)
	assert.Equal(t, "early", outbound[0].ID)
	assert.Equal(t, "middle", outbound[1].ID)
	assert.Equal(t, "late", outbound[2].ID)
}

func TestCatalog_FlightsFrom_UnknownAirport(t *testing.T) {
	c := New([]domain.Flight{
		catalogFlight("a", "JFK", "LAX", time.Now().UTC()),
	})

	assert.Empty(t, c.FlightsFrom("XXX"))
}

func TestCatalog_Len(t *testing.T) {
	base := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	c := New([]domain.Flight{
		catalogFlight("a", "JFK", "LAX", base),
		catalogFlight("b", "ORD", "LAX", base),
	})

	assert.Equal(t, 2, c.Len())
	assert.Len(t, c.All(), 2)
}

func TestCatalog_CopiesInput(t *testing.T) {
	base := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	input := []domain.Flight{
		catalogFlight("a", "JFK", "LAX", base),
	}
	c := New(input)

	input[0].ID = "mutated"
	assert.Equal(t, "a", c.All()[0].ID)
}

func TestCatalog_Empty(t *testing.T) {
	c := New(nil)

	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.FlightsFrom("JFK"))
}
