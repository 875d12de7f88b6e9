package location

import (
	"context"
	"errors"

	"github.com/Adeakim/lincride/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/Adeakim/lincride/services/location LocationRepo

// ErrLocationNotFound indicates no cached location exists for the trip.
var ErrLocationNotFound = errors.New("no location recorded for trip")

// LocationRepo represents the location repository interface
type LocationRepo interface {
	StoreLocation(ctx context.Context, update *models.LocationUpdate) error
	GetLastLocation(ctx context.Context, tripID int64) (*models.TripLocation, error)
}
