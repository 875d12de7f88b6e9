package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Adeakim/lincride/internal/pkg/models"
	"github.com/Adeakim/lincride/internal/utils"
	"github.com/Adeakim/lincride/services/trips"
	"github.com/Adeakim/lincride/services/trips/usecase"
)

// MatchHandler handles route matching requests
type MatchHandler struct {
	tripUC trips.TripUC
}

// NewMatchHandler creates a new match HTTP handler
func NewMatchHandler(tripUC trips.TripUC) *MatchHandler {
	return &MatchHandler{tripUC: tripUC}
}

// FindMatches handles rider match requests against planned trips
func (h *MatchHandler) FindMatches(c echo.Context) error {
	var query models.MatchQuery
	if err := c.Bind(&query); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	if c.QueryParam("starting_latitude") == "" || c.QueryParam("starting_longitude") == "" ||
		c.QueryParam("destination_latitude") == "" || c.QueryParam("destination_longitude") == "" {
		return utils.BadRequestResponse(c, "starting and destination coordinates are required")
	}

	resp, err := h.tripUC.FindMatches(c.Request().Context(), &query)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCoordinates) {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Matches retrieved successfully", resp)
}
