package gateway

import (
	"context"

	"github.com/Adeakim/lincride/internal/pkg/constants"
	"github.com/Adeakim/lincride/internal/pkg/models"
	"github.com/Adeakim/lincride/internal/pkg/nats"
	"github.com/Adeakim/lincride/services/location"
)

type locationGW struct {
	client *nats.Client
}

// NewLocationGW creates a new location gateway over the NATS client.
func NewLocationGW(client *nats.Client) location.LocationGW {
	return &locationGW{
		client: client,
	}
}

// PublishLocationUpdate publishes a location update to the broker.
func (g *locationGW) PublishLocationUpdate(ctx context.Context, update *models.LocationUpdate) error {
	return g.client.Publish(constants.SubjectTripLocation, update)
}
