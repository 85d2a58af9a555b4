package models

import "time"

// Booking status values.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusPending   = "pending"
	BookingStatusCancelled = "cancelled"
)

// ConfirmedBooking represents a finalized booking record. Once written it is
// immutable except for its status transition; cancelled bookings stay on
// record, they are never deleted.
type ConfirmedBooking struct {
	ID          string    `bson:"id" json:"id"`
	LocationID  string    `bson:"location_id" json:"locationId"`
	Date        string    `bson:"date" json:"date"` // booking date in "YYYY-MM-DD" format
	TimeSlot    string    `bson:"time_slot" json:"timeSlot"`
	DurationMin int       `bson:"duration_min" json:"durationMin"`
	Status      string    `bson:"status" json:"status"`
	ServiceID   string    `bson:"service_id,omitempty" json:"serviceId,omitempty"`
	ServiceName string    `bson:"service_name,omitempty" json:"serviceName,omitempty"`
	VehicleType string    `bson:"vehicle_type,omitempty" json:"vehicleType,omitempty"`
	Customer    *Customer `bson:"customer,omitempty" json:"customer,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}

// TemporaryReservation is a time-bounded hold on a slot range. It expires
// naturally once ReservedUntil passes; readers must treat expired holds as
// absent.
type TemporaryReservation struct {
	ID            string    `bson:"id" json:"id"`
	LocationID    string    `bson:"location_id" json:"locationId"`
	Date          string    `bson:"date" json:"date"`
	TimeSlot      string    `bson:"time_slot" json:"timeSlot"`
	DurationMin   int       `bson:"duration_min" json:"durationMin"`
	ReservedUntil time.Time `bson:"reserved_until" json:"reservedUntil"`
	ReservedBy    string    `bson:"reserved_by" json:"reservedBy"` // owning session id
	ServiceID     string    `bson:"service_id,omitempty" json:"serviceId,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}

// Expired reports whether the hold has lapsed at the given instant.
func (r TemporaryReservation) Expired(now time.Time) bool {
	return now.After(r.ReservedUntil)
}

// Customer holds the contact details captured at checkout.
type Customer struct {
	Name  string `bson:"name" json:"name" binding:"required"`
	Phone string `bson:"phone" json:"phone" binding:"required"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
}
