package trips

import (
	"context"
	"errors"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/Adeakim/lincride/services/trips DirectionsGW

// ErrNoRouteFound indicates the directions provider returned no route
// between the requested points.
var ErrNoRouteFound = errors.New("no route found between the given points")

// DirectionsGW fetches driving routes from the directions provider.
type DirectionsGW interface {
	// GetRoutePolyline returns the encoded overview polyline of the driving
	// route from origin to destination.
	GetRoutePolyline(ctx context.Context, originLat, originLng, destLat, destLng float64) (string, error)
}
