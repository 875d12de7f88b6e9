package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Adeakim/lincride/internal/pkg/models"
	"github.com/Adeakim/lincride/services/trips"
)

// TripRepo implements the trip repository interface
type TripRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTripRepo creates a new trip repository instance
func NewTripRepo(cfg *models.Config, db *sqlx.DB) *TripRepo {
	return &TripRepo{
		cfg: cfg,
		db:  db,
	}
}

const tripColumns = `id, starting_latitude, starting_longitude, destination_latitude,
		destination_longitude, route_geometry, available_seats, is_ride_requests_allowed,
		date_added, date_last_updated`

// CreateTrip inserts a new trip and returns it with its assigned ID.
func (r *TripRepo) CreateTrip(ctx context.Context, trip *models.Trip) (*models.Trip, error) {
	now := time.Now()
	trip.DateAdded = now
	trip.DateLastUpdated = now

	query := `
		INSERT INTO trips (starting_latitude, starting_longitude,
			destination_latitude, destination_longitude, route_geometry,
			available_seats, is_ride_requests_allowed, date_added, date_last_updated
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		trip.StartingLatitude,
		trip.StartingLongitude,
		trip.DestinationLatitude,
		trip.DestinationLongitude,
		trip.RouteGeometry,
		trip.AvailableSeats,
		trip.IsRideRequestsAllowed,
		trip.DateAdded,
		trip.DateLastUpdated,
	).Scan(&trip.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert trip: %w", err)
	}

	return trip, nil
}

// GetTrip retrieves a trip by ID
func (r *TripRepo) GetTrip(ctx context.Context, id int64) (*models.Trip, error) {
	query := fmt.Sprintf(`SELECT %s FROM trips WHERE id = $1`, tripColumns)

	var trip models.Trip
	err := r.db.GetContext(ctx, &trip, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, trips.ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return &trip, nil
}

// ListTrips retrieves all trips ordered by creation time, newest first.
func (r *TripRepo) ListTrips(ctx context.Context) ([]models.Trip, error) {
	query := fmt.Sprintf(`SELECT %s FROM trips ORDER BY date_added DESC`, tripColumns)

	result := []models.Trip{}
	if err := r.db.SelectContext(ctx, &result, query); err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}

	return result, nil
}

// UpdateTrip persists the given trip state and refreshes date_last_updated.
func (r *TripRepo) UpdateTrip(ctx context.Context, trip *models.Trip) (*models.Trip, error) {
	trip.DateLastUpdated = time.Now()

	query := `
		UPDATE trips
		SET starting_latitude = :starting_latitude,
			starting_longitude = :starting_longitude,
			destination_latitude = :destination_latitude,
			destination_longitude = :destination_longitude,
			route_geometry = :route_geometry,
			available_seats = :available_seats,
			is_ride_requests_allowed = :is_ride_requests_allowed,
			date_last_updated = :date_last_updated
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, trip)
	if err != nil {
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return nil, trips.ErrTripNotFound
	}

	return trip, nil
}

// DeleteTrip removes a trip by ID
func (r *TripRepo) DeleteTrip(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return trips.ErrTripNotFound
	}

	return nil
}

// TripExists reports whether a trip with the given ID exists.
func (r *TripRepo) TripExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM trips WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("failed to check trip existence: %w", err)
	}
	return exists, nil
}

// GetEligibleTrips returns trips that allow ride requests and have at least
// the requested number of seats available.
func (r *TripRepo) GetEligibleTrips(ctx context.Context, seats int) ([]models.Trip, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM trips
		WHERE is_ride_requests_allowed = TRUE AND available_seats >= $1
		ORDER BY date_added DESC
	`, tripColumns)

	result := []models.Trip{}
	if err := r.db.SelectContext(ctx, &result, query, seats); err != nil {
		return nil, fmt.Errorf("failed to get eligible trips: %w", err)
	}

	return result, nil
}
