package booking

import (
	"context"
	"fmt"
	"time"

	"espuma/models"
	"espuma/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Reserve takes a temporary hold on the requested slot range. The
// availability check runs first; on success any prior hold this session took
// for the same service line is replaced, the new hold is inserted with a
// 15-minute expiry, and expired holds from any session are swept. On failure
// the checker's conflicts are returned untouched and no record is created.
func (s *DefaultBookingService) Reserve(ctx context.Context, req models.ReservationRequest, sessionID string) (models.ReservationResult, error) {
	logger := utils.GetLogger()

	result, err := s.CheckAvailability(ctx, req.LocationID, req.Date, req.TimeSlot, req.DurationMin)
	if err != nil {
		return models.ReservationResult{}, err
	}
	if !result.Available {
		return models.ReservationResult{Success: false, Conflicts: result.Conflicts}, nil
	}

	now := s.now()
	if req.ServiceID != "" {
		if err := s.Store.DeleteSessionServiceReservations(ctx, sessionID, req.ServiceID); err != nil {
			return models.ReservationResult{}, fmt.Errorf("failed to replace prior hold: %w", err)
		}
	}

	reservation := models.TemporaryReservation{
		ID:            uuid.New().String(),
		LocationID:    req.LocationID,
		Date:          req.Date,
		TimeSlot:      req.TimeSlot,
		DurationMin:   req.DurationMin,
		ReservedUntil: now.Add(s.Hold),
		ReservedBy:    sessionID,
		ServiceID:     req.ServiceID,
		CreatedAt:     now,
	}
	if err := s.Store.InsertReservation(ctx, reservation); err != nil {
		return models.ReservationResult{}, fmt.Errorf("failed to insert reservation: %w", err)
	}

	if swept, err := s.Store.DeleteExpiredReservations(ctx, now); err != nil {
		logger.Warn("Reserve: expiry sweep failed", zap.Error(err))
	} else if swept > 0 {
		logger.Debug("Reserve: swept expired holds", zap.Int64("count", swept))
	}

	return models.ReservationResult{
		Success:       true,
		ReservationID: reservation.ID,
		ReservedUntil: reservation.ReservedUntil.Format(time.RFC3339),
	}, nil
}

// Cancel removes a hold. Cancellation is session-scoped: only the owning
// session may release its reservation.
func (s *DefaultBookingService) Cancel(ctx context.Context, reservationID, sessionID string) (bool, error) {
	return s.Store.DeleteReservationOwned(ctx, reservationID, sessionID)
}

// ConfirmReservation converts a live hold into a confirmed booking. The hold
// must exist and be unexpired; the availability gates re-run (excluding the
// hold itself) as a guard against races the overlap gates should normally
// prevent. On success the booking insert and hold delete happen atomically.
func (s *DefaultBookingService) ConfirmReservation(ctx context.Context, reservationID string, customer models.Customer, item models.CartItem) (*models.ConfirmedBooking, []models.Conflict, error) {
	now := s.now()

	reservation, err := s.Store.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load reservation: %w", err)
	}
	if reservation == nil {
		return nil, []models.Conflict{{Type: models.ConflictTime, Message: msgResNotFound}}, nil
	}
	if reservation.Expired(now) {
		// Evict the stale record so the slot frees up immediately.
		if _, err := s.Store.DeleteReservation(ctx, reservationID); err != nil {
			utils.GetLogger().Warn("ConfirmReservation: failed to evict expired hold",
				zap.String("reservationID", reservationID), zap.Error(err))
		}
		return nil, []models.Conflict{{Type: models.ConflictTime, Message: msgResExpired}}, nil
	}

	recheck, err := s.checkAvailability(ctx, reservation.LocationID, reservation.Date, reservation.TimeSlot, reservation.DurationMin, reservationID)
	if err != nil {
		return nil, nil, err
	}
	if !recheck.Available {
		return nil, recheck.Conflicts, nil
	}

	booking := models.ConfirmedBooking{
		ID:          uuid.New().String(),
		LocationID:  reservation.LocationID,
		Date:        reservation.Date,
		TimeSlot:    reservation.TimeSlot,
		DurationMin: reservation.DurationMin,
		Status:      models.BookingStatusConfirmed,
		ServiceID:   reservation.ServiceID,
		ServiceName: item.Name,
		Customer:    &customer,
		CreatedAt:   now,
	}
	if item.BookingDetails != nil {
		booking.VehicleType = item.BookingDetails.VehicleType
	}
	if err := s.Store.ConvertReservation(ctx, reservationID, booking); err != nil {
		return nil, nil, fmt.Errorf("failed to finalize booking: %w", err)
	}
	return &booking, nil, nil
}

// GetBooking returns a confirmed booking record, or nil when unknown.
func (s *DefaultBookingService) GetBooking(ctx context.Context, bookingID string) (*models.ConfirmedBooking, error) {
	return s.Store.GetBooking(ctx, bookingID)
}

// SweepExpired evicts lapsed holds. The cron worker calls this periodically;
// reads are already lazy-filtered, so the sweep only bounds storage growth.
func (s *DefaultBookingService) SweepExpired(ctx context.Context) (int64, error) {
	return s.Store.DeleteExpiredReservations(ctx, s.now())
}
