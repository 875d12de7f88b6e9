package location

import (
	"context"

	"github.com/Adeakim/lincride/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/Adeakim/lincride/services/location LocationUC

// LocationUC represents the location usecase interface
type LocationUC interface {
	// PublishLocation validates and distributes a location update to every
	// subscriber of the trip's topic.
	PublishLocation(ctx context.Context, update *models.LocationUpdate) error

	// LastLocation returns the most recently cached location for a trip.
	LastLocation(ctx context.Context, tripID int64) (*models.TripLocation, error)
}
