package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/mmcloughlin/geohash"

	"github.com/Adeakim/lincride/internal/pkg/constants"
	"github.com/Adeakim/lincride/internal/pkg/database"
	"github.com/Adeakim/lincride/internal/pkg/models"
	"github.com/Adeakim/lincride/services/location"
)

// LocationTTL is how long a trip's last location stays cached. Long enough
// to cover any realistic trip plus post-trip lookups.
const LocationTTL = 24 * time.Hour

type locationRepo struct {
	redisClient *database.RedisClient
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(redisClient *database.RedisClient) location.LocationRepo {
	return &locationRepo{
		redisClient: redisClient,
	}
}

// StoreLocation caches a trip's latest location in a Redis hash, tagged with
// its geohash for spatial lookups.
func (r *locationRepo) StoreLocation(ctx context.Context, update *models.LocationUpdate) error {
	locationKey := fmt.Sprintf(constants.KeyTripLocation, update.TripID)
	locationData := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(update.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(update.Longitude, 'f', -1, 64),
		constants.FieldGeohash:   geohash.Encode(update.Latitude, update.Longitude),
	}
	if len(update.Timestamp) > 0 {
		locationData[constants.FieldTimestamp] = string(update.Timestamp)
	}

	if err := r.redisClient.HMSet(ctx, locationKey, locationData); err != nil {
		return fmt.Errorf("failed to store location update: %w", err)
	}

	if err := r.redisClient.Expire(ctx, locationKey, LocationTTL); err != nil {
		return fmt.Errorf("failed to set location TTL: %w", err)
	}

	return nil
}

// GetLastLocation returns the cached location for a trip, or
// ErrLocationNotFound when nothing has been stored yet.
func (r *locationRepo) GetLastLocation(ctx context.Context, tripID int64) (*models.TripLocation, error) {
	locationKey := fmt.Sprintf(constants.KeyTripLocation, tripID)

	fields := []string{
		constants.FieldLatitude,
		constants.FieldLongitude,
		constants.FieldTimestamp,
		constants.FieldGeohash,
	}
	values, err := r.redisClient.HMGet(ctx, locationKey, fields...)
	if err != nil {
		return nil, fmt.Errorf("failed to get location data: %w", err)
	}

	if values[0] == "" || values[1] == "" {
		return nil, location.ErrLocationNotFound
	}

	lat, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid cached latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(values[1], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid cached longitude: %w", err)
	}

	return &models.TripLocation{
		TripID:    tripID,
		Latitude:  lat,
		Longitude: lng,
		Timestamp: values[2],
		Geohash:   values[3],
	}, nil
}
