package location

import (
	"context"

	"github.com/Adeakim/lincride/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/Adeakim/lincride/services/location LocationGW

// LocationGW publishes location updates to the message broker.
type LocationGW interface {
	PublishLocationUpdate(ctx context.Context, update *models.LocationUpdate) error
}
