package cart

import "espuma/models"

// Read queries over cart state. These drive UI gating (checkout is blocked
// while any service lacks a booking) and hold no state of their own.

// HasServices reports whether the cart contains any service line.
func HasServices(state models.CartState) bool {
	for _, it := range state.Items {
		if it.IsService() {
			return true
		}
	}
	return false
}

// HasProducts reports whether the cart contains any product line.
func HasProducts(state models.CartState) bool {
	for _, it := range state.Items {
		if it.Type == models.ItemTypeProduct {
			return true
		}
	}
	return false
}

// HasUnbookedServices reports whether any service line still lacks booking
// details.
func HasUnbookedServices(state models.CartState) bool {
	return ServicesNeedingBooking(state) > 0
}

// ServicesNeedingBooking counts service lines without booking details.
func ServicesNeedingBooking(state models.CartState) int {
	n := 0
	for _, it := range state.Items {
		if it.IsService() && it.BookingDetails == nil {
			n++
		}
	}
	return n
}

// ItemCount sums quantities across all lines.
func ItemCount(state models.CartState) int {
	n := 0
	for _, it := range state.Items {
		n += it.Quantity
	}
	return n
}

// Summarize builds the gating read model from a cart state.
func Summarize(state models.CartState) models.CartSummary {
	return models.CartSummary{
		ItemCount:              ItemCount(state),
		Subtotal:               state.Subtotal,
		Tax:                    state.Tax,
		Total:                  state.Total,
		HasServices:            HasServices(state),
		HasProducts:            HasProducts(state),
		HasUnbookedServices:    HasUnbookedServices(state),
		ServicesNeedingBooking: ServicesNeedingBooking(state),
	}
}
