package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Adeakim/lincride/internal/pkg/models"
	"github.com/Adeakim/lincride/internal/utils"
	"github.com/Adeakim/lincride/services/trips"
	"github.com/Adeakim/lincride/services/trips/usecase"
)

// TripHandler handles HTTP requests for trip management
type TripHandler struct {
	tripUC trips.TripUC
}

// NewTripHandler creates a new trip HTTP handler
func NewTripHandler(tripUC trips.TripUC) *TripHandler {
	return &TripHandler{tripUC: tripUC}
}

// CreateTrip handles trip creation requests
func (h *TripHandler) CreateTrip(c echo.Context) error {
	var req models.TripCreate
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	trip, err := h.tripUC.CreateTrip(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCoordinates) {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Trip created successfully", trip)
}

// GetTrip handles trip retrieval requests
func (h *TripHandler) GetTrip(c echo.Context) error {
	id, err := parseTripID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := h.tripUC.GetTrip(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, trips.ErrTripNotFound) {
			return utils.NotFoundResponse(c, "Trip not found")
		}
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip retrieved successfully", trip)
}

// ListTrips handles trip listing requests
func (h *TripHandler) ListTrips(c echo.Context) error {
	result, err := h.tripUC.ListTrips(c.Request().Context())
	if err != nil {
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved successfully", result)
}

// UpdateTrip handles both full and partial trip update requests
func (h *TripHandler) UpdateTrip(c echo.Context) error {
	id, err := parseTripID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req models.TripUpdate
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	trip, err := h.tripUC.UpdateTrip(c.Request().Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, trips.ErrTripNotFound):
			return utils.NotFoundResponse(c, "Trip not found")
		case errors.Is(err, usecase.ErrInvalidCoordinates):
			return utils.BadRequestResponse(c, err.Error())
		default:
			return utils.ErrorResponseHandler(c, http.StatusInternalServerError, err.Error())
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip updated successfully", trip)
}

// DeleteTrip handles trip deletion requests
func (h *TripHandler) DeleteTrip(c echo.Context) error {
	id, err := parseTripID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	if err := h.tripUC.DeleteTrip(c.Request().Context(), id); err != nil {
		if errors.Is(err, trips.ErrTripNotFound) {
			return utils.NotFoundResponse(c, "Trip not found")
		}
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip deleted successfully", nil)
}

func parseTripID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
