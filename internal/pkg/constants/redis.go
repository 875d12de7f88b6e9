package constants

// Redis key format strings
const (
	// KeyTripLocation is the hash holding a trip's last known location.
	KeyTripLocation = "trip:location:%d"
)

// Redis hash field names
const (
	FieldLatitude  = "latitude"
	FieldLongitude = "longitude"
	FieldTimestamp = "timestamp"
	FieldGeohash   = "geohash"
)
