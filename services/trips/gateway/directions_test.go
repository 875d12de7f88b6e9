package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"

	"github.com/Adeakim/lincride/services/trips"
)

type stubDirectionsAPI struct {
	routes []maps.Route
	err    error
	gotReq *maps.DirectionsRequest
}

func (s *stubDirectionsAPI) Directions(ctx context.Context, r *maps.DirectionsRequest) ([]maps.Route, []maps.GeocodedWaypoint, error) {
	s.gotReq = r
	return s.routes, nil, s.err
}

func TestGetRoutePolyline(t *testing.T) {
	stub := &stubDirectionsAPI{
		routes: []maps.Route{
			{OverviewPolyline: maps.Polyline{Points: "_p~iF~ps|U_ulLnnqC"}},
		},
	}
	gw := &DirectionsGateway{client: stub}

	polyline, err := gw.GetRoutePolyline(context.Background(), 6.5244, 3.3792, 7.3775, 3.9470)
	require.NoError(t, err)
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC", polyline)
	assert.Equal(t, "6.524400,3.379200", stub.gotReq.Origin)
	assert.Equal(t, "7.377500,3.947000", stub.gotReq.Destination)
	assert.Equal(t, maps.TravelModeDriving, stub.gotReq.Mode)
}

func TestGetRoutePolylineNoRoute(t *testing.T) {
	gw := &DirectionsGateway{client: &stubDirectionsAPI{}}

	_, err := gw.GetRoutePolyline(context.Background(), 0, 0, 1, 1)
	assert.ErrorIs(t, err, trips.ErrNoRouteFound)
}

func TestGetRoutePolylineAPIError(t *testing.T) {
	gw := &DirectionsGateway{client: &stubDirectionsAPI{err: errors.New("quota exceeded")}}

	_, err := gw.GetRoutePolyline(context.Background(), 0, 0, 1, 1)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, trips.ErrNoRouteFound)
}
