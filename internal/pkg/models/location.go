package models

import "encoding/json"

// LocationUpdate represents a live location report for a trip.
//
// Timestamp is caller-supplied and opaque: it is carried through the broker
// and fan-out pipeline unchanged, whatever shape the client chose.
type LocationUpdate struct {
	TripID    int64           `json:"trip_id"`
	Latitude  float64         `json:"latitude"`
	Longitude float64         `json:"longitude"`
	Timestamp json.RawMessage `json:"timestamp,omitempty"`
}

// TripLocation is the last known location of a trip, as cached.
type TripLocation struct {
	TripID    int64   `json:"trip_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp string  `json:"timestamp,omitempty"`
	Geohash   string  `json:"geohash,omitempty"`
}
