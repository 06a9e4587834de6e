// Package dataset loads the static flight/airport dataset from a JSON file
// and builds the airport directory and normalized flight catalog.
//
// Loading is all-or-nothing: a single record that fails validation or time
// normalization aborts the load with an error. The process must never serve
// traffic with a partially loaded catalog.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/skypath/itinerary-search/internal/catalog"
	"github.com/skypath/itinerary-search/internal/domain"
)

// File is the on-disk dataset schema: one JSON document holding all
// airports and all flights.
type File struct {
	Airports []AirportRecord `json:"airports"`
	Flights  []FlightRecord  `json:"flights"`
}

// AirportRecord is a raw airport entry as it appears in the dataset.
type AirportRecord struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Timezone string `json:"timezone"`
}

// FlightRecord is a raw flight entry as it appears in the dataset.
// Departure and arrival times are local wall-clock date-times with no
// offset; the loader normalizes them against the airport directory.
type FlightRecord struct {
	FlightNumber  string  `json:"flightNumber"`
	Airline       string  `json:"airline"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureTime string  `json:"departureTime"`
	ArrivalTime   string  `json:"arrivalTime"`
	Price         float64 `json:"price"`
	Aircraft      string  `json:"aircraft"`
}

// Load reads and parses the dataset file at the given path.
func Load(path string) (*domain.Directory, *catalog.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, domain.WrapDataLoad("read %s: %v", path, err)
	}
	return Parse(data)
}

// Parse builds the directory and catalog from raw dataset bytes.
func Parse(data []byte) (*domain.Directory, *catalog.Catalog, error) {
	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, nil, domain.WrapDataLoad("parse dataset: %v", err)
	}

	directory, err := buildDirectory(file.Airports)
	if err != nil {
		return nil, nil, err
	}

	flights, err := normalizeFlights(directory, file.Flights)
	if err != nil {
		return nil, nil, err
	}

	return directory, catalog.New(flights), nil
}

// buildDirectory converts airport records into the immutable directory.
func buildDirectory(records []AirportRecord) (*domain.Directory, error) {
	airports := make([]domain.Airport, len(records))
	for i, r := range records {
		airports[i] = domain.Airport{
			Code:     r.Code,
			Name:     r.Name,
			City:     r.City,
			Country:  r.Country,
			Timezone: r.Timezone,
		}
	}

	directory, err := domain.NewDirectory(airports)
	if err != nil {
		return nil, domain.WrapDataLoad("build airport directory: %v", err)
	}
	return directory, nil
}

// normalizeFlights converts flight records into normalized domain flights.
// Every record must validate and normalize; the first failure aborts.
func normalizeFlights(directory *domain.Directory, records []FlightRecord) ([]domain.Flight, error) {
	normalizer := domain.NewTimeNormalizer(directory)

	flights := make([]domain.Flight, 0, len(records))
	for _, r := range records {
		f, err := normalizeFlight(directory, normalizer, r)
		if err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}

	return flights, nil
}

// normalizeFlight validates a single record and attaches normalized times.
func normalizeFlight(directory *domain.Directory, normalizer *domain.TimeNormalizer, r FlightRecord) (domain.Flight, error) {
	if r.FlightNumber == "" {
		return domain.Flight{}, domain.WrapDataLoad("flight with empty flight number")
	}
	if r.Origin == r.Destination {
		return domain.Flight{}, domain.WrapDataLoad("flight %s has identical origin and destination %s", r.FlightNumber, r.Origin)
	}
	if r.Price < 0 {
		return domain.Flight{}, domain.WrapDataLoad("flight %s has negative price %.2f", r.FlightNumber, r.Price)
	}
	if _, err := directory.Get(r.Origin); err != nil {
		return domain.Flight{}, domain.WrapDataLoad("flight %s: %v", r.FlightNumber, err)
	}
	if _, err := directory.Get(r.Destination); err != nil {
		return domain.Flight{}, domain.WrapDataLoad("flight %s: %v", r.FlightNumber, err)
	}

	f := domain.Flight{
		Airline:      r.Airline,
		FlightNumber: r.FlightNumber,
		Origin:       r.Origin,
		Destination:  r.Destination,
		Aircraft:     r.Aircraft,
		Price:        r.Price,
	}

	if err := normalizer.NormalizeFlight(&f, r.DepartureTime, r.ArrivalTime); err != nil {
		return domain.Flight{}, domain.WrapDataLoad("flight %s: %v", r.FlightNumber, err)
	}

	// Deterministic ID: flight number plus local departure date. The same
	// dataset always yields the same IDs, keeping searches reproducible.
	f.ID = fmt.Sprintf("%s-%s", f.FlightNumber, f.Departure.LocalDate())

	return f, nil
}
