package bookingRepo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"espuma/models"
)

// MemoryBookingStore is an in-process BookingStore used by tests and local
// runs without Mongo. All operations are guarded by a single mutex, which
// also gives ConvertReservation its atomicity.
type MemoryBookingStore struct {
	mu           sync.Mutex
	bookings     []models.ConfirmedBooking
	reservations []models.TemporaryReservation
}

// NewMemoryBookingStore returns an empty in-memory store.
func NewMemoryBookingStore() *MemoryBookingStore {
	return &MemoryBookingStore{}
}

func (s *MemoryBookingStore) InsertBooking(_ context.Context, b models.ConfirmedBooking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append(s.bookings, b)
	return nil
}

func (s *MemoryBookingStore) GetBooking(_ context.Context, id string) (*models.ConfirmedBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			b := s.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (s *MemoryBookingStore) ListConfirmedBookings(_ context.Context, locationID, date string) ([]models.ConfirmedBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.ConfirmedBooking
	for _, b := range s.bookings {
		if b.LocationID == locationID && b.Date == date && b.Status == models.BookingStatusConfirmed {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *MemoryBookingStore) InsertReservation(_ context.Context, r models.TemporaryReservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations = append(s.reservations, r)
	return nil
}

func (s *MemoryBookingStore) GetReservation(_ context.Context, id string) (*models.TemporaryReservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reservations {
		if s.reservations[i].ID == id {
			r := s.reservations[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (s *MemoryBookingStore) ListActiveReservations(_ context.Context, locationID, date string, now time.Time) ([]models.TemporaryReservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.TemporaryReservation
	for _, r := range s.reservations {
		if r.LocationID == locationID && r.Date == date && !r.Expired(now) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *MemoryBookingStore) DeleteReservation(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteReservationLocked(id), nil
}

func (s *MemoryBookingStore) DeleteReservationOwned(_ context.Context, id, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.reservations {
		if r.ID == id && r.ReservedBy != sessionID {
			return false, nil
		}
	}
	return s.deleteReservationLocked(id), nil
}

func (s *MemoryBookingStore) DeleteSessionServiceReservations(_ context.Context, sessionID, serviceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.reservations[:0]
	for _, r := range s.reservations {
		if r.ReservedBy == sessionID && r.ServiceID == serviceID {
			continue
		}
		kept = append(kept, r)
	}
	s.reservations = kept
	return nil
}

func (s *MemoryBookingStore) DeleteExpiredReservations(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed int64
	kept := s.reservations[:0]
	for _, r := range s.reservations {
		if r.Expired(now) {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	s.reservations = kept
	return removed, nil
}

func (s *MemoryBookingStore) ConvertReservation(_ context.Context, reservationID string, b models.ConfirmedBooking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.deleteReservationLocked(reservationID) {
		return fmt.Errorf("reservation %s no longer exists", reservationID)
	}
	s.bookings = append(s.bookings, b)
	return nil
}

func (s *MemoryBookingStore) deleteReservationLocked(id string) bool {
	for i, r := range s.reservations {
		if r.ID == id {
			s.reservations = append(s.reservations[:i], s.reservations[i+1:]...)
			return true
		}
	}
	return false
}
