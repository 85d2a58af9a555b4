package models

// Conflict types returned by the availability checker.
const (
	ConflictTime     = "time_conflict"
	ConflictCapacity = "capacity_exceeded"
)

// Conflict describes one reason a requested slot range cannot be booked.
// Conflicts are always returned as data, never raised as errors.
type Conflict struct {
	Type             string   `json:"type"`
	Message          string   `json:"message"`
	ConflictingSlots []string `json:"conflictingSlots,omitempty"`
}

// AvailabilityResult is the outcome of a single availability check.
type AvailabilityResult struct {
	Available bool       `json:"available"`
	Conflicts []Conflict `json:"conflicts"`
}

// SlotAvailability pairs a grid slot with its checked availability for list
// consumers (the booking modal's slot picker).
type SlotAvailability struct {
	TimeSlot  string     `json:"timeSlot"`
	Available bool       `json:"available"`
	Conflicts []Conflict `json:"conflicts,omitempty"`
}

// ReservationRequest is the payload for taking a temporary hold.
type ReservationRequest struct {
	LocationID  string `json:"locationId" binding:"required"`
	Date        string `json:"date" binding:"required"` // "YYYY-MM-DD"
	TimeSlot    string `json:"timeSlot" binding:"required"`
	DurationMin int    `json:"durationMin" binding:"required"`
	ServiceID   string `json:"serviceId,omitempty"`
}

// ReservationResult is the outcome of a reserve call.
type ReservationResult struct {
	Success       bool       `json:"success"`
	ReservationID string     `json:"reservationId,omitempty"`
	ReservedUntil string     `json:"reservedUntil,omitempty"` // RFC 3339
	Conflicts     []Conflict `json:"conflicts,omitempty"`
}
