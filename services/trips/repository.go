package trips

import (
	"context"
	"errors"

	"github.com/Adeakim/lincride/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/Adeakim/lincride/services/trips TripRepo

// ErrTripNotFound indicates the requested trip does not exist.
var ErrTripNotFound = errors.New("trip not found")

// TripRepo represents the trip repository interface
type TripRepo interface {
	CreateTrip(ctx context.Context, trip *models.Trip) (*models.Trip, error)
	GetTrip(ctx context.Context, id int64) (*models.Trip, error)
	ListTrips(ctx context.Context) ([]models.Trip, error)
	UpdateTrip(ctx context.Context, trip *models.Trip) (*models.Trip, error)
	DeleteTrip(ctx context.Context, id int64) error
	TripExists(ctx context.Context, id int64) (bool, error)

	// GetEligibleTrips returns trips open to ride requests with at least
	// seats available seats.
	GetEligibleTrips(ctx context.Context, seats int) ([]models.Trip, error)
}
