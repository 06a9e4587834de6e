package http

import (
	"strings"
	"time"

	"github.com/skypath/itinerary-search/internal/domain"
	"github.com/skypath/itinerary-search/internal/usecase"
)

// ToDomainCriteria converts a SearchItinerariesRequest to domain.SearchCriteria.
// Airport codes are uppercased so the boundary is forgiving about casing.
func ToDomainCriteria(req *SearchItinerariesRequest) domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:      strings.ToUpper(req.Origin),
		Destination: strings.ToUpper(req.Destination),
		Date:        req.Date,
	}
}

// ToSearchOptions converts the optional request filters to usecase.SearchOptions.
func ToSearchOptions(req *SearchItinerariesRequest) usecase.SearchOptions {
	opts := usecase.DefaultSearchOptions()
	if req.Filters != nil {
		opts.Filters = &domain.FilterOptions{
			MaxPrice: req.Filters.MaxPrice,
			MaxStops: req.Filters.MaxStops,
			Airlines: req.Filters.Airlines,
		}
	}
	return opts
}

// ToSearchResponseDTO converts a domain SearchResponse to its DTO.
func ToSearchResponseDTO(resp *domain.SearchResponse) *SearchResponseDTO {
	if resp == nil {
		return nil
	}

	dto := &SearchResponseDTO{
		SearchCriteria: SearchCriteriaDTO{
			Origin:      resp.SearchCriteria.Origin,
			Destination: resp.SearchCriteria.Destination,
			Date:        resp.SearchCriteria.Date,
		},
		Metadata: MetadataDTO{
			TotalResults: resp.Metadata.TotalResults,
			DirectCount:  resp.Metadata.DirectCount,
			SearchTimeMs: resp.Metadata.SearchTimeMs,
		},
		Itineraries: make([]ItineraryDTO, len(resp.Itineraries)),
	}

	for i := range resp.Itineraries {
		dto.Itineraries[i] = ToItineraryDTO(&resp.Itineraries[i])
	}

	return dto
}

// ToItineraryDTO converts a domain Itinerary to its DTO.
func ToItineraryDTO(it *domain.Itinerary) ItineraryDTO {
	dto := ItineraryDTO{
		ID:                   it.ID,
		Segments:             make([]SegmentDTO, len(it.Segments)),
		Layovers:             make([]LayoverDTO, len(it.Layovers)),
		TotalDurationMinutes: it.TotalDurationMinutes,
		TotalDuration:        domain.FormatDuration(it.TotalDurationMinutes),
		TotalPrice:           it.TotalPrice,
		Stops:                it.Stops,
	}

	for i := range it.Segments {
		dto.Segments[i] = toSegmentDTO(&it.Segments[i])
	}
	for i, l := range it.Layovers {
		dto.Layovers[i] = LayoverDTO{
			Airport:         l.Airport,
			DurationMinutes: l.DurationMinutes,
			International:   l.International,
		}
	}

	return dto
}

// toSegmentDTO converts a domain Flight to a SegmentDTO.
func toSegmentDTO(f *domain.Flight) SegmentDTO {
	return SegmentDTO{
		ID:              f.ID,
		Airline:         f.Airline,
		FlightNumber:    f.FlightNumber,
		Aircraft:        f.Aircraft,
		Origin:          f.Origin,
		Destination:     f.Destination,
		DepartureLocal:  f.Departure.Local.Format(domain.LocalTimeLayout),
		DepartureUTC:    f.Departure.UTC.Format(time.RFC3339),
		ArrivalLocal:    f.Arrival.Local.Format(domain.LocalTimeLayout),
		ArrivalUTC:      f.Arrival.UTC.Format(time.RFC3339),
		DurationMinutes: f.DurationMinutes,
		Price:           f.Price,
	}
}

// ToAirportsResponseDTO converts the directory snapshot to its DTO.
func ToAirportsResponseDTO(airports []domain.Airport) *AirportsResponseDTO {
	dto := &AirportsResponseDTO{
		Airports: make([]AirportDTO, len(airports)),
		Total:    len(airports),
	}

	for i, a := range airports {
		dto.Airports[i] = AirportDTO{
			Code:     a.Code,
			Name:     a.Name,
			City:     a.City,
			Country:  a.Country,
			Timezone: a.Timezone,
		}
	}

	return dto
}
