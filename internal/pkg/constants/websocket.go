package constants

import "fmt"

// Inbound WebSocket message types. Dispatch on these is a closed set:
// anything else is answered with MessageError.
const (
	MessagePublishLocation = "PUBLISH_LOCATION"
	MessageSubscribe       = "SUBSCRIBE_TO_TRIP_LOCATION"
	MessageUnsubscribe     = "UNSUBSCRIBE_FROM_TRIP_LOCATION"
)

// Outbound WebSocket message types
const (
	MessageLocationPublished  = "LOCATION_PUBLISHED"
	MessageSubscribed         = "SUBSCRIBED"
	MessageUnsubscribed       = "UNSUBSCRIBED"
	MessageTripLocationUpdate = "TRIP_LOCATION_UPDATE"
	MessageError              = "ERROR"
)

// StatusSuccess is the status value carried by acknowledgment messages.
const StatusSuccess = "success"

// TripLocationTopic returns the fan-out topic for a trip's location updates.
func TripLocationTopic(tripID int64) string {
	return fmt.Sprintf("trip_location_%d", tripID)
}
