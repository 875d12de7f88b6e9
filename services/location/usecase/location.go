package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Adeakim/lincride/internal/pkg/constants"
	"github.com/Adeakim/lincride/internal/pkg/logger"
	"github.com/Adeakim/lincride/internal/pkg/models"
)

// ErrInvalidLocation indicates a location update with out-of-range
// coordinates.
var ErrInvalidLocation = errors.New("location coordinates out of range")

// PublishLocation validates a location update, caches it as the trip's last
// known position, and distributes it to subscribers.
//
// Distribution is broker-first: when a broker gateway is configured the
// update goes through it and the consumer loop performs the fan-out. When no
// broker is available, or the publish fails, the update falls back to a
// direct in-process fan-out so connected subscribers still receive it.
// Broker and cache failures are logged, never surfaced to the reporter.
func (uc *LocationUC) PublishLocation(ctx context.Context, update *models.LocationUpdate) error {
	if update.Latitude < -90 || update.Latitude > 90 ||
		update.Longitude < -180 || update.Longitude > 180 {
		return fmt.Errorf("%w: (%f, %f)", ErrInvalidLocation, update.Latitude, update.Longitude)
	}

	if err := uc.locationRepo.StoreLocation(ctx, update); err != nil {
		logger.Warn("Failed to cache trip location",
			logger.Int64("trip_id", update.TripID),
			logger.Err(err))
	}

	if uc.locationGW != nil {
		err := uc.locationGW.PublishLocationUpdate(ctx, update)
		if err == nil {
			return nil
		}
		logger.Warn("Broker publish failed, falling back to direct fan-out",
			logger.Int64("trip_id", update.TripID),
			logger.Err(err))
	}

	uc.FanOutUpdate(update)
	return nil
}

// FanOutUpdate delivers a location update to every subscriber of the trip's
// topic. Called directly in broker-less mode and by the broker consumer loop.
func (uc *LocationUC) FanOutUpdate(update *models.LocationUpdate) {
	data, err := json.Marshal(update)
	if err != nil {
		logger.Error("Failed to marshal location update for fan-out",
			logger.Int64("trip_id", update.TripID),
			logger.Err(err))
		return
	}

	uc.registry.FanOut(constants.TripLocationTopic(update.TripID), models.WSMessage{
		Type: constants.MessageTripLocationUpdate,
		Data: data,
	})
}

// LastLocation returns the most recently cached location for a trip.
func (uc *LocationUC) LastLocation(ctx context.Context, tripID int64) (*models.TripLocation, error) {
	return uc.locationRepo.GetLastLocation(ctx, tripID)
}
