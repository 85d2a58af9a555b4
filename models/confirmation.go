// File: espuma/models/confirmation.go
package models

import "time"

// OrderConfirmation is the final response returned after checkout succeeds.
type OrderConfirmation struct {
	ConfirmationCode string             `json:"confirmationCode"` // e.g. "ESP-MB2K3F-X7Q9"
	Bookings         []ConfirmedBooking `json:"bookings"`
	Items            []CartItem         `json:"items"`
	Subtotal         float64            `json:"subtotal"`
	Tax              float64            `json:"tax"`
	Total            float64            `json:"total"`
	PaymentMethod    string             `json:"paymentMethod"`
	CreatedAt        time.Time          `json:"createdAt"`
}

// CheckoutRequest is the payload for finalizing an order.
type CheckoutRequest struct {
	Customer      Customer `json:"customer" binding:"required"`
	PaymentMethod string   `json:"paymentMethod" binding:"required"` // "cash", "gcash", "card"
}
