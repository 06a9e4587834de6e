package http

import "github.com/labstack/echo/v4"

// RegisterRoutes registers all itinerary search routes on the Echo instance.
// The health endpoint stays at root level for load balancers; everything
// else lives under /api/v1.
func RegisterRoutes(e *echo.Echo, h *ItineraryHandler) {
	e.GET("/health", h.Health)

	api := e.Group("/api/v1")
	api.POST("/itineraries/search", h.SearchItineraries)
	api.GET("/airports", h.ListAirports)
}
