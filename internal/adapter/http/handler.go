package http

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/skypath/itinerary-search/internal/adapter/http/response"
	"github.com/skypath/itinerary-search/internal/domain"
	"github.com/skypath/itinerary-search/internal/usecase"
)

// ItineraryHandler handles HTTP requests for itinerary-related endpoints.
type ItineraryHandler struct {
	useCase usecase.ItinerarySearch
}

// NewItineraryHandler creates a new ItineraryHandler with the given use case.
func NewItineraryHandler(uc usecase.ItinerarySearch) *ItineraryHandler {
	return &ItineraryHandler{
		useCase: uc,
	}
}

// SearchItineraries handles POST /api/v1/itineraries/search
//
//	@Summary		Search for itineraries
//	@Description	Finds and ranks direct and connecting itineraries between two airports on a given date
//	@Tags			itineraries
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SearchItinerariesRequest	true	"Search criteria"
//	@Success		200		{object}	SearchResponseDTO
//	@Failure		400		{object}	response.ErrorDetail	"Validation or input error"
//	@Failure		500		{object}	response.ErrorDetail	"Internal error"
//	@Router			/itineraries/search [post]
func (h *ItineraryHandler) SearchItineraries(c echo.Context) error {
	var req SearchItinerariesRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	criteria := ToDomainCriteria(&req)
	opts := ToSearchOptions(&req)

	result, err := h.useCase.Search(c.Request().Context(), criteria, opts)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, ToSearchResponseDTO(result))
}

// ListAirports handles GET /api/v1/airports
//
//	@Summary		List airports
//	@Description	Returns a read-only snapshot of the airport directory, sorted by code
//	@Tags			airports
//	@Produce		json
//	@Success		200	{object}	AirportsResponseDTO
//	@Router			/airports [get]
func (h *ItineraryHandler) ListAirports(c echo.Context) error {
	airports := h.useCase.ListAirports(c.Request().Context())
	return response.OK(c, ToAirportsResponseDTO(airports))
}

// Health handles GET /health
// Simple health check endpoint.
func (h *ItineraryHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles boundary validation errors with a 400 response.
func (h *ItineraryHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps engine errors to HTTP responses. Input errors surface
// verbatim with a machine-readable code; everything else is a 500.
func (h *ItineraryHandler) handleError(c echo.Context, err error) error {
	switch {
	case domain.IsUnknownAirport(err):
		return response.BadRequest(c, response.CodeUnknownAirport, err.Error())
	case domain.IsSameAirport(err):
		return response.BadRequest(c, response.CodeSameAirport, err.Error())
	case domain.IsInvalidDate(err):
		return response.BadRequest(c, response.CodeInvalidDate, err.Error())
	case domain.IsInvalidRequest(err):
		return response.ValidationErrorWithMessage(c, err.Error())
	default:
		return response.InternalServerError(c)
	}
}
