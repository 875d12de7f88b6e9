package models

import "time"

// Trip represents a driver's planned trip with its computed route.
//
// RouteGeometry holds the encoded polyline returned by the directions
// provider; it may be empty when geometry could not be fetched.
type Trip struct {
	ID                    int64     `json:"id" db:"id"`
	StartingLatitude      float64   `json:"starting_latitude" db:"starting_latitude"`
	StartingLongitude     float64   `json:"starting_longitude" db:"starting_longitude"`
	DestinationLatitude   float64   `json:"destination_latitude" db:"destination_latitude"`
	DestinationLongitude  float64   `json:"destination_longitude" db:"destination_longitude"`
	RouteGeometry         string    `json:"route_geometry" db:"route_geometry"`
	AvailableSeats        int       `json:"available_seats" db:"available_seats"`
	IsRideRequestsAllowed bool      `json:"is_ride_requests_allowed" db:"is_ride_requests_allowed"`
	DateAdded             time.Time `json:"date_added" db:"date_added"`
	DateLastUpdated       time.Time `json:"date_last_updated" db:"date_last_updated"`
}

// TripCreate is the payload for creating a trip.
type TripCreate struct {
	StartingLatitude      float64 `json:"starting_latitude"`
	StartingLongitude     float64 `json:"starting_longitude"`
	DestinationLatitude   float64 `json:"destination_latitude"`
	DestinationLongitude  float64 `json:"destination_longitude"`
	AvailableSeats        int     `json:"available_seats"`
	IsRideRequestsAllowed *bool   `json:"is_ride_requests_allowed"`
}

// TripUpdate is the payload for a full or partial trip update.
// Nil fields are left unchanged.
type TripUpdate struct {
	StartingLatitude      *float64 `json:"starting_latitude"`
	StartingLongitude     *float64 `json:"starting_longitude"`
	DestinationLatitude   *float64 `json:"destination_latitude"`
	DestinationLongitude  *float64 `json:"destination_longitude"`
	AvailableSeats        *int     `json:"available_seats"`
	IsRideRequestsAllowed *bool    `json:"is_ride_requests_allowed"`
}
