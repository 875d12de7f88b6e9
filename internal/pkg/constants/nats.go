package constants

// NATS Subjects
const (
	// SubjectTripLocation carries every trip location update; per-trip
	// routing happens at fan-out time, not at the broker.
	SubjectTripLocation = "trip.location.update"
)

// QueueTripLocation is the queue group for the location consumer so that
// horizontally scaled consumers split the stream instead of duplicating it.
const QueueTripLocation = "trip-location-consumers"
