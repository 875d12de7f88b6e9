package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Adeakim/lincride/services/trips/handler/http"
)

// Handler coordinates the HTTP handlers for the trip service
type Handler struct {
	tripHandler  *http.TripHandler
	matchHandler *http.MatchHandler
}

// NewHandler creates and initializes all trip handlers
func NewHandler(tripHandler *http.TripHandler, matchHandler *http.MatchHandler) *Handler {
	return &Handler{
		tripHandler:  tripHandler,
		matchHandler: matchHandler,
	}
}

// RegisterRoutes registers the trip service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	tripGroup := e.Group("/api/trips")

	// Matching must be registered before the :id routes so "match" is not
	// captured as a trip ID.
	tripGroup.GET("/match", h.matchHandler.FindMatches)

	tripGroup.POST("", h.tripHandler.CreateTrip)
	tripGroup.GET("", h.tripHandler.ListTrips)
	tripGroup.GET("/:id", h.tripHandler.GetTrip)
	tripGroup.PUT("/:id", h.tripHandler.UpdateTrip)
	tripGroup.PATCH("/:id", h.tripHandler.UpdateTrip)
	tripGroup.DELETE("/:id", h.tripHandler.DeleteTrip)
}
