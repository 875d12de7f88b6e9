package usecase

import (
	"github.com/Adeakim/lincride/internal/pkg/models"
	"github.com/Adeakim/lincride/services/trips"
)

// TripUC implements the trip usecase interface
type TripUC struct {
	tripRepo     trips.TripRepo
	directionsGW trips.DirectionsGW
	cfg          *models.Config
}

// NewTripUC creates a new trip usecase instance
func NewTripUC(
	tripRepo trips.TripRepo,
	directionsGW trips.DirectionsGW,
	cfg *models.Config,
) *TripUC {
	return &TripUC{
		tripRepo:     tripRepo,
		directionsGW: directionsGW,
		cfg:          cfg,
	}
}
