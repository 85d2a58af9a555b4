package bookingRepo

import (
	"context"
	"time"

	"espuma/models"
)

// BookingStore persists confirmed bookings and temporary reservations.
// Expired reservations must be invisible to ListActiveReservations; callers
// never see a hold whose ReservedUntil has passed.
type BookingStore interface {
	// Confirmed bookings.
	InsertBooking(ctx context.Context, b models.ConfirmedBooking) error
	GetBooking(ctx context.Context, id string) (*models.ConfirmedBooking, error)
	ListConfirmedBookings(ctx context.Context, locationID, date string) ([]models.ConfirmedBooking, error)

	// Temporary reservations.
	InsertReservation(ctx context.Context, r models.TemporaryReservation) error
	GetReservation(ctx context.Context, id string) (*models.TemporaryReservation, error)
	ListActiveReservations(ctx context.Context, locationID, date string, now time.Time) ([]models.TemporaryReservation, error)
	DeleteReservation(ctx context.Context, id string) (bool, error)
	// DeleteReservationOwned removes the reservation only when sessionID
	// matches its owner.
	DeleteReservationOwned(ctx context.Context, id, sessionID string) (bool, error)
	// DeleteSessionServiceReservations drops any prior hold the session took
	// for the same cart service line, so a re-pick replaces rather than
	// stacks.
	DeleteSessionServiceReservations(ctx context.Context, sessionID, serviceID string) error
	DeleteExpiredReservations(ctx context.Context, now time.Time) (int64, error)

	// ConvertReservation atomically inserts the confirmed booking and removes
	// the reservation it came from.
	ConvertReservation(ctx context.Context, reservationID string, b models.ConfirmedBooking) error
}
