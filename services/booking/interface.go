package booking

import (
	"context"
	"time"

	bookingRepo "espuma/database/repository/booking"
	"espuma/models"
	"espuma/services/schedule"
)

// BookingService defines the availability and reservation surface consumed by
// the HTTP layer and the checkout flow.
type BookingService interface {
	CheckAvailability(ctx context.Context, locationID, date, timeSlot string, durationMin int) (models.AvailabilityResult, error)
	ListAvailableSlots(ctx context.Context, locationID, date string, durationMin int) ([]models.SlotAvailability, error)
	Reserve(ctx context.Context, req models.ReservationRequest, sessionID string) (models.ReservationResult, error)
	Cancel(ctx context.Context, reservationID, sessionID string) (bool, error)
	ConfirmReservation(ctx context.Context, reservationID string, customer models.Customer, item models.CartItem) (*models.ConfirmedBooking, []models.Conflict, error)
	GetBooking(ctx context.Context, bookingID string) (*models.ConfirmedBooking, error)
	SweepExpired(ctx context.Context) (int64, error)
}

// DefaultBookingService implements BookingService over a BookingStore and the
// slot grid.
type DefaultBookingService struct {
	Store bookingRepo.BookingStore
	Grid  *schedule.Grid
	Hold  time.Duration
	// Clock is injectable for tests; nil means time.Now.
	Clock func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}
