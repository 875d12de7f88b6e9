package trips

import (
	"context"

	"github.com/Adeakim/lincride/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/Adeakim/lincride/services/trips TripUC

// TripUC represents the trip usecase interface
type TripUC interface {
	CreateTrip(ctx context.Context, req *models.TripCreate) (*models.Trip, error)
	GetTrip(ctx context.Context, id int64) (*models.Trip, error)
	ListTrips(ctx context.Context) ([]models.Trip, error)
	UpdateTrip(ctx context.Context, id int64, req *models.TripUpdate) (*models.Trip, error)
	DeleteTrip(ctx context.Context, id int64) error
	TripExists(ctx context.Context, id int64) (bool, error)

	// route matching
	FindMatches(ctx context.Context, query *models.MatchQuery) (*models.MatchResponse, error)
}
