package models

// MatchQuery describes a rider's requested journey.
type MatchQuery struct {
	StartingLatitude     float64 `query:"starting_latitude"`
	StartingLongitude    float64 `query:"starting_longitude"`
	DestinationLatitude  float64 `query:"destination_latitude"`
	DestinationLongitude float64 `query:"destination_longitude"`
	SeatsRequired        int     `query:"no_of_seats_required"`
	RadiusMeters         float64 `query:"intersection_radius_meters"`
}

// MatchedTrip is one qualifying trip for a rider's journey.
type MatchedTrip struct {
	TripID                  int64   `json:"trip_id"`
	PickupLatitude          float64 `json:"pickup_latitude"`
	PickupLongitude         float64 `json:"pickup_longitude"`
	DropoffLatitude         float64 `json:"dropoff_latitude"`
	DropoffLongitude        float64 `json:"dropoff_longitude"`
	PickupDistanceMeters    float64 `json:"pickup_distance_meters"`
	DropoffDistanceMeters   float64 `json:"dropoff_distance_meters"`
	RiderTripDistanceMeters float64 `json:"rider_trip_distance_meters"`
	AvailableSeats          int     `json:"available_seats"`
	EstimatedArrivalMinutes float64 `json:"estimated_arrival_minutes"`
}

// MatchResponse is the payload returned by the match endpoint.
type MatchResponse struct {
	TotalMatches int            `json:"total_matches"`
	Matches      []*MatchedTrip `json:"matches"`
}
