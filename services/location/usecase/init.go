package usecase

import (
	"github.com/Adeakim/lincride/internal/pkg/models"
	"github.com/Adeakim/lincride/internal/pkg/websocket"
	"github.com/Adeakim/lincride/services/location"
)

// LocationUC implements the location usecase interface
type LocationUC struct {
	locationRepo location.LocationRepo
	locationGW   location.LocationGW
	registry     *websocket.Registry
	cfg          *models.Config
}

// NewLocationUC creates a new location usecase instance. locationGW may be
// nil when no broker is configured; updates then fan out directly in-process.
func NewLocationUC(
	locationRepo location.LocationRepo,
	locationGW location.LocationGW,
	registry *websocket.Registry,
	cfg *models.Config,
) *LocationUC {
	return &LocationUC{
		locationRepo: locationRepo,
		locationGW:   locationGW,
		registry:     registry,
		cfg:          cfg,
	}
}

// DisableBroker drops the broker gateway so subsequent publishes fan out
// directly in-process. Called during wiring when the broker consumer cannot
// be started: publishing to a broker nobody consumes would silently drop
// updates. Not safe to call once publishes are in flight.
func (uc *LocationUC) DisableBroker() {
	uc.locationGW = nil
}
