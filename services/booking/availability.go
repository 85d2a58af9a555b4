package booking

import (
	"context"
	"fmt"
	"time"

	"espuma/models"
	"espuma/services/schedule"
	"espuma/utils"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// Conflict messages surfaced to the UI.
const (
	msgPastDate       = "Cannot book in the past."
	msgInvalidSlot    = "Selected time is not within business hours."
	msgPastClosing    = "Service would run past closing time."
	msgLunchBreak     = "Selected time overlaps the lunch break."
	msgSlotBooked     = "Time slot is already booked."
	msgSlotHeld       = "Time slot is temporarily held by another customer."
	msgCapacityFull   = "All service bays are occupied for this time."
	msgUnknownBranch  = "Unknown branch."
	msgMalformedDate  = "Invalid booking date."
	msgResNotFound    = "Reservation not found. Please pick a slot again."
	msgResExpired     = "Reservation has expired. Please pick a slot again."
	msgUnbookedItems  = "All services must have a booked time slot before checkout."
	msgDuplicateHold  = "Each service requires its own reserved time slot."
	msgUnknownService = "Cart contains an unknown service."
)

// CheckAvailability evaluates the requested slot range through the ordered
// gate sequence: past date, slot validity, business-hours fit, lunch break,
// confirmed-booking overlap, active-reservation overlap, capacity. The first
// three gates return immediately; the rest accumulate so the caller can see
// every reason a range is unavailable.
func (s *DefaultBookingService) CheckAvailability(ctx context.Context, locationID, date, timeSlot string, durationMin int) (models.AvailabilityResult, error) {
	return s.checkAvailability(ctx, locationID, date, timeSlot, durationMin, "")
}

// checkAvailability is the internal variant; excludeResID lets the confirm
// path re-run the gates without tripping over the hold being confirmed.
func (s *DefaultBookingService) checkAvailability(ctx context.Context, locationID, date, timeSlot string, durationMin int, excludeResID string) (models.AvailabilityResult, error) {
	now := s.now()

	reqDate, err := time.Parse(dateLayout, date)
	if err != nil {
		return unavailable(models.ConflictTime, msgMalformedDate, nil), nil
	}
	// Compare calendar dates in the parse frame (UTC), not instants; the
	// server's zone must not shift today's bookings into the past.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if reqDate.Before(today) {
		return unavailable(models.ConflictTime, msgPastDate, nil), nil
	}

	idx := s.Grid.Index(timeSlot)
	if idx < 0 {
		return unavailable(models.ConflictTime, msgInvalidSlot, nil), nil
	}
	needed := s.Grid.SlotsNeeded(durationMin)
	if !s.Grid.FitsBusinessDay(idx, needed) {
		return unavailable(models.ConflictTime, msgPastClosing, nil), nil
	}

	loc, ok := models.FindLocation(locationID)
	if !ok {
		return unavailable(models.ConflictTime, msgUnknownBranch, nil), nil
	}

	var conflicts []models.Conflict

	lunchStart, lunchEnd := s.Grid.LunchRange()
	if lunchEnd > lunchStart && schedule.Overlaps(idx, needed, lunchStart, lunchEnd-lunchStart) {
		conflicts = append(conflicts, models.Conflict{
			Type:             models.ConflictTime,
			Message:          msgLunchBreak,
			ConflictingSlots: s.labels(lunchStart, lunchEnd-lunchStart),
		})
	}

	bookings, err := s.Store.ListConfirmedBookings(ctx, locationID, date)
	if err != nil {
		return models.AvailabilityResult{}, fmt.Errorf("failed to load confirmed bookings: %w", err)
	}
	overlappingTotal := 0
	for _, b := range bookings {
		bIdx := s.Grid.Index(b.TimeSlot)
		if bIdx < 0 {
			continue
		}
		bNeeded := s.Grid.SlotsNeeded(b.DurationMin)
		if schedule.Overlaps(idx, needed, bIdx, bNeeded) {
			overlappingTotal++
			conflicts = append(conflicts, models.Conflict{
				Type:             models.ConflictTime,
				Message:          msgSlotBooked,
				ConflictingSlots: s.labels(bIdx, bNeeded),
			})
		}
	}

	reservations, err := s.Store.ListActiveReservations(ctx, locationID, date, now)
	if err != nil {
		return models.AvailabilityResult{}, fmt.Errorf("failed to load reservations: %w", err)
	}
	for _, r := range reservations {
		if r.ID == excludeResID {
			continue
		}
		rIdx := s.Grid.Index(r.TimeSlot)
		if rIdx < 0 {
			continue
		}
		rNeeded := s.Grid.SlotsNeeded(r.DurationMin)
		if schedule.Overlaps(idx, needed, rIdx, rNeeded) {
			overlappingTotal++
			conflicts = append(conflicts, models.Conflict{
				Type:             models.ConflictTime,
				Message:          msgSlotHeld,
				ConflictingSlots: s.labels(rIdx, rNeeded),
			})
		}
	}

	if overlappingTotal >= loc.Capacity {
		conflicts = append(conflicts, models.Conflict{
			Type:    models.ConflictCapacity,
			Message: msgCapacityFull,
		})
	}

	return models.AvailabilityResult{Available: len(conflicts) == 0, Conflicts: conflicts}, nil
}

// ListAvailableSlots maps every grid slot through the checker, then filters
// out slots whose range cannot fit before closing so list consumers only see
// startable times.
func (s *DefaultBookingService) ListAvailableSlots(ctx context.Context, locationID, date string, durationMin int) ([]models.SlotAvailability, error) {
	logger := utils.GetLogger()
	needed := s.Grid.SlotsNeeded(durationMin)

	var out []models.SlotAvailability
	for i, slot := range s.Grid.Slots() {
		if !s.Grid.FitsBusinessDay(i, needed) {
			continue
		}
		result, err := s.CheckAvailability(ctx, locationID, date, slot, durationMin)
		if err != nil {
			logger.Error("ListAvailableSlots: check failed",
				zap.String("locationID", locationID), zap.String("slot", slot), zap.Error(err))
			return nil, err
		}
		out = append(out, models.SlotAvailability{
			TimeSlot:  slot,
			Available: result.Available,
			Conflicts: result.Conflicts,
		})
	}
	return out, nil
}

func (s *DefaultBookingService) labels(start, count int) []string {
	slots := s.Grid.Slots()
	end := start + count
	if end > len(slots) {
		end = len(slots)
	}
	return slots[start:end]
}

func unavailable(kind, message string, slots []string) models.AvailabilityResult {
	return models.AvailabilityResult{
		Available: false,
		Conflicts: []models.Conflict{{Type: kind, Message: message, ConflictingSlots: slots}},
	}
}
