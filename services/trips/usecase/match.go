package usecase

import (
	"context"
	"math"

	"github.com/Adeakim/lincride/internal/pkg/geo"
	"github.com/Adeakim/lincride/internal/pkg/logger"
	"github.com/Adeakim/lincride/internal/pkg/models"
)

// FindMatches returns the trips whose routes pass within the query radius of
// both the rider's pickup and dropoff points, with the dropoff strictly after
// the pickup along the driver's route.
//
// Each candidate is checked in order: eligibility, seats, decodable
// non-empty geometry, pickup within radius, dropoff within radius, ordering.
// The first failing check disqualifies the trip.
func (uc *TripUC) FindMatches(ctx context.Context, query *models.MatchQuery) (*models.MatchResponse, error) {
	if err := validateCoordinates(query.StartingLatitude, query.StartingLongitude); err != nil {
		return nil, err
	}
	if err := validateCoordinates(query.DestinationLatitude, query.DestinationLongitude); err != nil {
		return nil, err
	}

	seats := query.SeatsRequired
	if seats <= 0 {
		seats = 1
	}
	radius := query.RadiusMeters
	if radius <= 0 {
		radius = uc.cfg.Match.RadiusMeters
	}

	candidates, err := uc.tripRepo.GetEligibleTrips(ctx, seats)
	if err != nil {
		return nil, err
	}

	matches := []*models.MatchedTrip{}
	for i := range candidates {
		match := uc.evaluateCandidate(&candidates[i], query, seats, radius)
		if match != nil {
			matches = append(matches, match)
		}
	}

	return &models.MatchResponse{
		TotalMatches: len(matches),
		Matches:      matches,
	}, nil
}

// evaluateCandidate checks a single trip against the rider's journey and
// returns the match details, or nil when the trip does not qualify.
func (uc *TripUC) evaluateCandidate(trip *models.Trip, query *models.MatchQuery, seats int, radius float64) *models.MatchedTrip {
	// The repository already filters on these, but the checks are cheap and
	// keep the matcher correct against any candidate source.
	if !trip.IsRideRequestsAllowed || trip.AvailableSeats < seats {
		return nil
	}
	if trip.RouteGeometry == "" {
		return nil
	}

	route, err := geo.DecodePolyline(trip.RouteGeometry)
	if err != nil {
		logger.Warn("Skipping trip with undecodable route geometry",
			logger.Int64("trip_id", trip.ID),
			logger.Err(err))
		return nil
	}
	if len(route) == 0 {
		return nil
	}

	pickup := geo.FindNearestPoint(query.StartingLatitude, query.StartingLongitude, route)
	if pickup.DistanceToPoint > radius {
		return nil
	}

	dropoff := geo.FindNearestPoint(query.DestinationLatitude, query.DestinationLongitude, route)
	if dropoff.DistanceToPoint > radius {
		return nil
	}

	// The rider must travel forward along the driver's route.
	if dropoff.RouteIndex <= pickup.RouteIndex {
		return nil
	}

	riderDistance := geo.RouteDistance(route, pickup.RouteIndex, dropoff.RouteIndex)
	// ETA is the driver's time to reach the pickup point from the route start,
	// not the rider's time on board.
	eta := geo.ETAMinutes(pickup.Point.DistanceFromStart, uc.cfg.Match.AverageSpeedKmh)

	return &models.MatchedTrip{
		TripID:                  trip.ID,
		PickupLatitude:          pickup.Point.Latitude,
		PickupLongitude:         pickup.Point.Longitude,
		DropoffLatitude:         dropoff.Point.Latitude,
		DropoffLongitude:        dropoff.Point.Longitude,
		PickupDistanceMeters:    pickup.DistanceToPoint,
		DropoffDistanceMeters:   dropoff.DistanceToPoint,
		RiderTripDistanceMeters: riderDistance,
		AvailableSeats:          trip.AvailableSeats,
		EstimatedArrivalMinutes: roundTo2(eta),
	}
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
