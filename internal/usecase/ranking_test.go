package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skypath/itinerary-search/internal/domain"
)

// rankTestItinerary creates an itinerary with the given ranking tuple.
func rankTestItinerary(id string, durationMinutes int, price float64, stops int) domain.Itinerary {
	return domain.Itinerary{
		ID:                   id,
		TotalDurationMinutes: durationMinutes,
		TotalPrice:           price,
		Stops:                stops,
	}
}

func ids(itineraries []domain.Itinerary) []string {
	out := make([]string, len(itineraries))
	for i, it := range itineraries {
		out[i] = it.ID
	}
	return out
}

func TestRankItineraries_Empty(t *testing.T) {
	assert.Empty(t, RankItineraries(nil))
	assert.Empty(t, RankItineraries([]domain.Itinerary{}))
}

func TestRankItineraries_DurationFirst(t *testing.T) {
	result := RankItineraries([]domain.Itinerary{
		rankTestItinerary("slow-cheap", 600, 100, 0),
		rankTestItinerary("fast-expensive", 300, 900, 2),
	})

	assert.Equal(t, []string{"fast-expensive", "slow-cheap"}, ids(result))
}

func TestRankItineraries_PriceBreaksDurationTies(t *testing.T) {
	result := RankItineraries([]domain.Itinerary{
		rankTestItinerary("pricier", 300, 500, 0),
		rankTestItinerary("cheaper", 300, 200, 1),
	})

	assert.Equal(t, []string{"cheaper", "pricier"}, ids(result))
}

func TestRankItineraries_StopsBreakFullTies(t *testing.T) {
	// Three equally priced, equally fast itineraries with 0, 1, and 2
	// stops: the direct flight must come first.
	result := RankItineraries([]domain.Itinerary{
		rankTestItinerary("two-stops", 400, 300, 2),
		rankTestItinerary("direct", 400, 300, 0),
		rankTestItinerary("one-stop", 400, 300, 1),
	})

	assert.Equal(t, []string{"direct", "one-stop", "two-stops"}, ids(result))
}

func TestRankItineraries_StableOnFullTupleTies(t *testing.T) {
	// Identical tuples keep enumeration order.
	result := RankItineraries([]domain.Itinerary{
		rankTestItinerary("first", 400, 300, 1),
		rankTestItinerary("second", 400, 300, 1),
		rankTestItinerary("third", 400, 300, 1),
	})

	assert.Equal(t, []string{"first", "second", "third"}, ids(result))
}

func TestRankItineraries_DoesNotMutateInput(t *testing.T) {
	input := []domain.Itinerary{
		rankTestItinerary("b", 600, 100, 0),
		rankTestItinerary("a", 300, 100, 0),
	}

	_ = RankItineraries(input)

	assert.Equal(t, "b", input[0].ID)
	assert.Equal(t, "a", input[1].ID)
}

func TestApplyFilters(t *testing.T) {
	maxStops := 0

	itineraries := []domain.Itinerary{
		rankTestItinerary("direct", 300, 100, 0),
		rankTestItinerary("one-stop", 400, 80, 1),
	}

	t.Run("nil filters keep everything", func(t *testing.T) {
		result := ApplyFilters(itineraries, nil)
		assert.Len(t, result, 2)
	})

	t.Run("max stops drops connections and preserves order", func(t *testing.T) {
		result := ApplyFilters(itineraries, &domain.FilterOptions{MaxStops: &maxStops})
		require.Len(t, result, 1)
		assert.Equal(t, "direct", result[0].ID)
	})
}
