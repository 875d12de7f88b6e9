package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Adeakim/lincride/internal/pkg/logger"
	"github.com/Adeakim/lincride/internal/pkg/models"
)

// CreateTrip creates a trip and fetches its route geometry from the
// directions provider. A directions failure does not fail the create; the
// trip is stored with empty geometry and will simply never match until the
// geometry is refreshed.
func (uc *TripUC) CreateTrip(ctx context.Context, req *models.TripCreate) (*models.Trip, error) {
	if err := validateCoordinates(req.StartingLatitude, req.StartingLongitude); err != nil {
		return nil, err
	}
	if err := validateCoordinates(req.DestinationLatitude, req.DestinationLongitude); err != nil {
		return nil, err
	}
	if req.AvailableSeats < 0 {
		return nil, fmt.Errorf("available_seats must not be negative")
	}

	allowed := true
	if req.IsRideRequestsAllowed != nil {
		allowed = *req.IsRideRequestsAllowed
	}

	trip := &models.Trip{
		StartingLatitude:      req.StartingLatitude,
		StartingLongitude:     req.StartingLongitude,
		DestinationLatitude:   req.DestinationLatitude,
		DestinationLongitude:  req.DestinationLongitude,
		AvailableSeats:        req.AvailableSeats,
		IsRideRequestsAllowed: allowed,
	}
	trip.RouteGeometry = uc.fetchGeometry(ctx, trip)

	return uc.tripRepo.CreateTrip(ctx, trip)
}

// GetTrip retrieves a trip by ID
func (uc *TripUC) GetTrip(ctx context.Context, id int64) (*models.Trip, error) {
	return uc.tripRepo.GetTrip(ctx, id)
}

// ListTrips retrieves all trips
func (uc *TripUC) ListTrips(ctx context.Context) ([]models.Trip, error) {
	return uc.tripRepo.ListTrips(ctx)
}

// UpdateTrip applies the non-nil fields of req to the trip. When any
// endpoint coordinate changes, the route geometry is refetched so matching
// keeps working against the new route.
func (uc *TripUC) UpdateTrip(ctx context.Context, id int64, req *models.TripUpdate) (*models.Trip, error) {
	trip, err := uc.tripRepo.GetTrip(ctx, id)
	if err != nil {
		return nil, err
	}

	coordsChanged := false
	if req.StartingLatitude != nil && *req.StartingLatitude != trip.StartingLatitude {
		trip.StartingLatitude = *req.StartingLatitude
		coordsChanged = true
	}
	if req.StartingLongitude != nil && *req.StartingLongitude != trip.StartingLongitude {
		trip.StartingLongitude = *req.StartingLongitude
		coordsChanged = true
	}
	if req.DestinationLatitude != nil && *req.DestinationLatitude != trip.DestinationLatitude {
		trip.DestinationLatitude = *req.DestinationLatitude
		coordsChanged = true
	}
	if req.DestinationLongitude != nil && *req.DestinationLongitude != trip.DestinationLongitude {
		trip.DestinationLongitude = *req.DestinationLongitude
		coordsChanged = true
	}
	if req.AvailableSeats != nil {
		if *req.AvailableSeats < 0 {
			return nil, fmt.Errorf("available_seats must not be negative")
		}
		trip.AvailableSeats = *req.AvailableSeats
	}
	if req.IsRideRequestsAllowed != nil {
		trip.IsRideRequestsAllowed = *req.IsRideRequestsAllowed
	}

	if err := validateCoordinates(trip.StartingLatitude, trip.StartingLongitude); err != nil {
		return nil, err
	}
	if err := validateCoordinates(trip.DestinationLatitude, trip.DestinationLongitude); err != nil {
		return nil, err
	}

	if coordsChanged {
		trip.RouteGeometry = uc.fetchGeometry(ctx, trip)
	}

	return uc.tripRepo.UpdateTrip(ctx, trip)
}

// DeleteTrip removes a trip by ID
func (uc *TripUC) DeleteTrip(ctx context.Context, id int64) error {
	return uc.tripRepo.DeleteTrip(ctx, id)
}

// TripExists reports whether a trip with the given ID exists.
func (uc *TripUC) TripExists(ctx context.Context, id int64) (bool, error) {
	return uc.tripRepo.TripExists(ctx, id)
}

// fetchGeometry asks the directions provider for the trip's route polyline.
// Failures are logged and yield an empty polyline.
func (uc *TripUC) fetchGeometry(ctx context.Context, trip *models.Trip) string {
	polyline, err := uc.directionsGW.GetRoutePolyline(ctx,
		trip.StartingLatitude, trip.StartingLongitude,
		trip.DestinationLatitude, trip.DestinationLongitude)
	if err != nil {
		logger.Warn("Failed to fetch route geometry",
			logger.Int64("trip_id", trip.ID),
			logger.Err(err))
		return ""
	}
	return polyline
}

// ErrInvalidCoordinates indicates a latitude or longitude out of range.
var ErrInvalidCoordinates = errors.New("coordinates out of range")

func validateCoordinates(lat, lng float64) error {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return fmt.Errorf("%w: (%f, %f)", ErrInvalidCoordinates, lat, lng)
	}
	return nil
}
