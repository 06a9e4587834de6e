package usecase

import (
	"context"

	"github.com/skypath/itinerary-search/internal/catalog"
	"github.com/skypath/itinerary-search/internal/domain"
	"github.com/skypath/itinerary-search/internal/infrastructure/timeutil"
)

// MaxSegments is the default depth bound for path enumeration: at most
// 3 segments, i.e. 2 intermediate stops. The bound is a deliberate
// usefulness tradeoff; unbounded depth explodes combinatorially on a
// dense flight graph and yields itineraries no traveler would choose.
const MaxSegments = 3

// ItinerarySearch defines the operations the engine exposes to its
// collaborators (HTTP transport, UI).
//
//go:generate mockgen -source=itinerary_search.go -destination=../../test/mock/itinerary_search.go -package=mock
type ItinerarySearch interface {
	// Search finds and ranks all itineraries between two airports on a
	// given local calendar date. Zero results is not an error: the
	// response carries an empty list.
	Search(ctx context.Context, criteria domain.SearchCriteria, opts SearchOptions) (*domain.SearchResponse, error)

	// ListAirports returns a read-only snapshot of the airport directory,
	// sorted by code.
	ListAirports(ctx context.Context) []domain.Airport
}

// itinerarySearch implements ItinerarySearch over an immutable directory,
// catalog, and connection validator. Searches are synchronous, lock-free,
// deterministic, and idempotent: no shared mutable state exists during
// query processing.
type itinerarySearch struct {
	directory   *domain.Directory
	catalog     *catalog.Catalog
	validator   *domain.ConnectionValidator
	clock       timeutil.Clock
	maxSegments int
}

// Config contains configuration options for the search use case.
type Config struct {
	// MaxSegments bounds enumeration depth (1-3). Zero means MaxSegments.
	MaxSegments int

	// Clock measures search time for response metadata. Nil means RealClock.
	Clock timeutil.Clock
}

// NewItinerarySearch creates the search use case over the given directory,
// catalog, and validator.
func NewItinerarySearch(directory *domain.Directory, cat *catalog.Catalog, validator *domain.ConnectionValidator, cfg *Config) ItinerarySearch {
	s := &itinerarySearch{
		directory:   directory,
		catalog:     cat,
		validator:   validator,
		clock:       timeutil.NewRealClock(),
		maxSegments: MaxSegments,
	}

	if cfg != nil {
		if cfg.MaxSegments >= 1 && cfg.MaxSegments <= MaxSegments {
			s.maxSegments = cfg.MaxSegments
		}
		if cfg.Clock != nil {
			s.clock = cfg.Clock
		}
	}

	return s
}

// Search validates input, enumerates candidate itineraries, ranks them, and
// applies optional filters.
//
// Input errors (unknown airport, identical endpoints, malformed date) are
// rejected before any enumeration runs and surfaced verbatim. No retry logic
// applies anywhere: a failed connection check is a definitive "not a valid
// itinerary", not a transient condition.
func (s *itinerarySearch) Search(ctx context.Context, criteria domain.SearchCriteria, opts SearchOptions) (*domain.SearchResponse, error) {
	start := s.clock.Now()

	if err := criteria.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.directory.Get(criteria.Origin); err != nil {
		return nil, err
	}
	if _, err := s.directory.Get(criteria.Destination); err != nil {
		return nil, err
	}

	candidates := s.enumerate(criteria.Origin, criteria.Destination, criteria.Date)
	ranked := RankItineraries(candidates)
	filtered := ApplyFilters(ranked, opts.Filters)

	metadata := domain.SearchMetadata{
		SearchTimeMs: s.clock.Now().Sub(start).Milliseconds(),
	}

	return domain.NewSearchResponse(criteria, filtered, metadata), nil
}

// ListAirports returns the directory snapshot.
func (s *itinerarySearch) ListAirports(_ context.Context) []domain.Airport {
	return s.directory.List()
}

// enumerate performs the bounded-depth traversal. The first segment must
// depart on the requested local date at the origin airport; deeper segments
// are gated by the connection validator and by airport-revisit pruning.
func (s *itinerarySearch) enumerate(origin, destination, date string) []domain.Itinerary {
	var results []domain.Itinerary

	outbound := s.catalog.FlightsFrom(origin)
	for i := range outbound {
		first := outbound[i]
		if !first.DepartsOn(date) {
			continue
		}

		visited := map[string]bool{origin: true, first.Destination: true}
		s.extend([]domain.Flight{first}, nil, visited, destination, &results)
	}

	return results
}

// extend grows a partial path depth-first. The path, its layovers, and the
// visited set are owned by this call chain: each recursion passes fresh
// copies down, so no global search state exists.
func (s *itinerarySearch) extend(path []domain.Flight, layovers []domain.Layover, visited map[string]bool, destination string, results *[]domain.Itinerary) {
	last := path[len(path)-1]

	// Reached the destination: the path is a complete candidate. It cannot
	// be usefully extended further, since that would revisit the destination.
	if last.Destination == destination {
		*results = append(*results, domain.NewItinerary(path, layovers))
		return
	}

	if len(path) == s.maxSegments {
		return
	}

	outbound := s.catalog.FlightsFrom(last.Destination)
	for i := range outbound {
		next := outbound[i]

		// Outbound flights are sorted by UTC departure, so once the gap
		// exceeds the maximum layover nothing later can connect either.
		if s.validator.Gap(&last, &next) > s.validator.Bounds().Max {
			break
		}

		// Prune branches that revisit an airport already in the path.
		if visited[next.Destination] {
			continue
		}
		if !s.validator.IsValid(&last, &next) {
			continue
		}

		nextPath := make([]domain.Flight, len(path), len(path)+1)
		copy(nextPath, path)
		nextPath = append(nextPath, next)

		nextLayovers := make([]domain.Layover, len(layovers), len(layovers)+1)
		copy(nextLayovers, layovers)
		nextLayovers = append(nextLayovers, s.validator.Layover(&last, &next))

		nextVisited := make(map[string]bool, len(visited)+1)
		for code := range visited {
			nextVisited[code] = true
		}
		nextVisited[next.Destination] = true

		s.extend(nextPath, nextLayovers, nextVisited, destination, results)
	}
}
