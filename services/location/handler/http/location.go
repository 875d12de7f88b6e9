package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Adeakim/lincride/internal/utils"
	"github.com/Adeakim/lincride/services/location"
)

// LocationHandler handles HTTP requests for trip locations
type LocationHandler struct {
	locationUC location.LocationUC
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(locationUC location.LocationUC) *LocationHandler {
	return &LocationHandler{locationUC: locationUC}
}

// GetLastLocation returns the last cached location of a trip
func (h *LocationHandler) GetLastLocation(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	loc, err := h.locationUC.LastLocation(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, location.ErrLocationNotFound) {
			return utils.NotFoundResponse(c, "No location recorded for trip")
		}
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location retrieved successfully", loc)
}
