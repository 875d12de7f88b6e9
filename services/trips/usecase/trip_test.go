package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adeakim/lincride/internal/pkg/models"
	"github.com/Adeakim/lincride/services/trips"
	"github.com/Adeakim/lincride/services/trips/mocks"
)

func setupTripUCTest(t *testing.T) (*TripUC, *mocks.MockTripRepo, *mocks.MockDirectionsGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockDirectionsGW(ctrl)
	cfg := &models.Config{
		Match: models.MatchConfig{
			RadiusMeters:    500,
			AverageSpeedKmh: 30,
		},
	}
	return NewTripUC(mockRepo, mockGW, cfg), mockRepo, mockGW
}

func TestCreateTrip(t *testing.T) {
	uc, mockRepo, mockGW := setupTripUCTest(t)

	req := &models.TripCreate{
		StartingLatitude:     6.5244,
		StartingLongitude:    3.3792,
		DestinationLatitude:  7.3775,
		DestinationLongitude: 3.9470,
		AvailableSeats:       3,
	}

	mockGW.EXPECT().
		GetRoutePolyline(gomock.Any(), req.StartingLatitude, req.StartingLongitude,
			req.DestinationLatitude, req.DestinationLongitude).
		Return("_p~iF~ps|U", nil)

	mockRepo.EXPECT().
		CreateTrip(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, trip *models.Trip) (*models.Trip, error) {
			assert.Equal(t, "_p~iF~ps|U", trip.RouteGeometry)
			// Omitted flag defaults to allowing ride requests.
			assert.True(t, trip.IsRideRequestsAllowed)
			trip.ID = 1
			return trip, nil
		})

	trip, err := uc.CreateTrip(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), trip.ID)
}

func TestCreateTripDirectionsFailure(t *testing.T) {
	uc, mockRepo, mockGW := setupTripUCTest(t)

	req := &models.TripCreate{
		StartingLatitude:     6.5244,
		StartingLongitude:    3.3792,
		DestinationLatitude:  7.3775,
		DestinationLongitude: 3.9470,
		AvailableSeats:       2,
	}

	mockGW.EXPECT().
		GetRoutePolyline(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", trips.ErrNoRouteFound)

	mockRepo.EXPECT().
		CreateTrip(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, trip *models.Trip) (*models.Trip, error) {
			assert.Empty(t, trip.RouteGeometry)
			trip.ID = 2
			return trip, nil
		})

	trip, err := uc.CreateTrip(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, trip.RouteGeometry)
}

func TestCreateTripInvalidCoordinates(t *testing.T) {
	uc, _, _ := setupTripUCTest(t)

	req := &models.TripCreate{
		StartingLatitude:  91.0,
		StartingLongitude: 3.3792,
	}

	_, err := uc.CreateTrip(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidCoordinates)
}

func TestCreateTripNegativeSeats(t *testing.T) {
	uc, _, _ := setupTripUCTest(t)

	req := &models.TripCreate{
		StartingLatitude:     6.5244,
		StartingLongitude:    3.3792,
		DestinationLatitude:  7.3775,
		DestinationLongitude: 3.9470,
		AvailableSeats:       -1,
	}

	_, err := uc.CreateTrip(context.Background(), req)
	assert.Error(t, err)
}

func TestUpdateTripCoordinateChangeRefetchesGeometry(t *testing.T) {
	uc, mockRepo, mockGW := setupTripUCTest(t)

	existing := &models.Trip{
		ID:                    7,
		StartingLatitude:      6.5244,
		StartingLongitude:     3.3792,
		DestinationLatitude:   7.3775,
		DestinationLongitude:  3.9470,
		RouteGeometry:         "old",
		AvailableSeats:        3,
		IsRideRequestsAllowed: true,
	}

	newDestLat := 7.40
	mockRepo.EXPECT().GetTrip(gomock.Any(), int64(7)).Return(existing, nil)
	mockGW.EXPECT().
		GetRoutePolyline(gomock.Any(), existing.StartingLatitude, existing.StartingLongitude,
			newDestLat, existing.DestinationLongitude).
		Return("fresh", nil)
	mockRepo.EXPECT().
		UpdateTrip(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, trip *models.Trip) (*models.Trip, error) {
			assert.Equal(t, "fresh", trip.RouteGeometry)
			return trip, nil
		})

	trip, err := uc.UpdateTrip(context.Background(), 7, &models.TripUpdate{DestinationLatitude: &newDestLat})
	require.NoError(t, err)
	assert.Equal(t, newDestLat, trip.DestinationLatitude)
}

func TestUpdateTripSeatsOnlyKeepsGeometry(t *testing.T) {
	uc, mockRepo, _ := setupTripUCTest(t)

	existing := &models.Trip{
		ID:                    7,
		StartingLatitude:      6.5244,
		StartingLongitude:     3.3792,
		DestinationLatitude:   7.3775,
		DestinationLongitude:  3.9470,
		RouteGeometry:         "old",
		AvailableSeats:        3,
		IsRideRequestsAllowed: true,
	}

	seats := 1
	mockRepo.EXPECT().GetTrip(gomock.Any(), int64(7)).Return(existing, nil)
	mockRepo.EXPECT().
		UpdateTrip(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, trip *models.Trip) (*models.Trip, error) {
			assert.Equal(t, "old", trip.RouteGeometry)
			assert.Equal(t, 1, trip.AvailableSeats)
			return trip, nil
		})

	_, err := uc.UpdateTrip(context.Background(), 7, &models.TripUpdate{AvailableSeats: &seats})
	assert.NoError(t, err)
}

func TestUpdateTripNotFound(t *testing.T) {
	uc, mockRepo, _ := setupTripUCTest(t)

	mockRepo.EXPECT().GetTrip(gomock.Any(), int64(99)).Return(nil, trips.ErrTripNotFound)

	_, err := uc.UpdateTrip(context.Background(), 99, &models.TripUpdate{})
	assert.ErrorIs(t, err, trips.ErrTripNotFound)
}

func TestDeleteTrip(t *testing.T) {
	uc, mockRepo, _ := setupTripUCTest(t)

	mockRepo.EXPECT().DeleteTrip(gomock.Any(), int64(7)).Return(nil)
	assert.NoError(t, uc.DeleteTrip(context.Background(), 7))

	mockRepo.EXPECT().DeleteTrip(gomock.Any(), int64(99)).Return(errors.New("boom"))
	assert.Error(t, uc.DeleteTrip(context.Background(), 99))
}

func TestTripExists(t *testing.T) {
	uc, mockRepo, _ := setupTripUCTest(t)

	mockRepo.EXPECT().TripExists(gomock.Any(), int64(7)).Return(true, nil)
	exists, err := uc.TripExists(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, exists)
}
