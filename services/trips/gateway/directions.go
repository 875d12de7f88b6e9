package gateway

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"github.com/Adeakim/lincride/internal/pkg/logger"
	"github.com/Adeakim/lincride/internal/pkg/models"
	"github.com/Adeakim/lincride/services/trips"
)

// directionsAPI is the subset of the Google Maps client used by the gateway,
// extracted so tests can stub the remote call.
type directionsAPI interface {
	Directions(ctx context.Context, r *maps.DirectionsRequest) ([]maps.Route, []maps.GeocodedWaypoint, error)
}

// DirectionsGateway fetches driving routes from the Google Maps Directions API.
type DirectionsGateway struct {
	client directionsAPI
}

// NewDirectionsGateway creates a directions gateway backed by the Google Maps
// Platform.
func NewDirectionsGateway(cfg *models.Config) (*DirectionsGateway, error) {
	client, err := maps.NewClient(maps.WithAPIKey(cfg.Google.MapsAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &DirectionsGateway{client: client}, nil
}

// GetRoutePolyline returns the encoded overview polyline of the driving route
// from origin to destination.
func (g *DirectionsGateway) GetRoutePolyline(ctx context.Context, originLat, originLng, destLat, destLng float64) (string, error) {
	req := &maps.DirectionsRequest{
		Origin:      fmt.Sprintf("%f,%f", originLat, originLng),
		Destination: fmt.Sprintf("%f,%f", destLat, destLng),
		Mode:        maps.TravelModeDriving,
	}

	routes, _, err := g.client.Directions(ctx, req)
	if err != nil {
		return "", fmt.Errorf("maps api error: %w", err)
	}

	if len(routes) == 0 {
		logger.Warn("Directions API returned no routes",
			logger.Float64("origin_lat", originLat),
			logger.Float64("origin_lng", originLng),
			logger.Float64("dest_lat", destLat),
			logger.Float64("dest_lng", destLng))
		return "", trips.ErrNoRouteFound
	}

	return routes[0].OverviewPolyline.Points, nil
}
