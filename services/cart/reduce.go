// Package cart implements the cart aggregate: a small state machine over
// heterogeneous line items with VAT-inclusive totals, persisted per session.
package cart

import "espuma/models"

// addItem applies the Add transition. A service with an existing id is
// replaced wholesale — the incoming item supersedes every field, which
// deliberately discards any reservation attached to the old line. A product
// with an existing id merges quantities and keeps its other fields. New ids
// append in insertion order.
func addItem(items []models.CartItem, item models.CartItem) []models.CartItem {
	item = normalize(item)
	for i := range items {
		if items[i].ID != item.ID {
			continue
		}
		out := make([]models.CartItem, len(items))
		copy(out, items)
		if item.Type == models.ItemTypeProduct && items[i].Type == models.ItemTypeProduct {
			out[i].Quantity += item.Quantity
		} else {
			out[i] = item
		}
		return out
	}
	return append(append([]models.CartItem{}, items...), item)
}

// removeItem applies the Remove transition.
func removeItem(items []models.CartItem, id string) []models.CartItem {
	out := make([]models.CartItem, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

// updateQuantity sets an item's quantity to max(0, qty); zero removes the
// item entirely, so a stored quantity is never zero. Service quantities are
// clamped to 1 regardless of the requested value.
func updateQuantity(items []models.CartItem, id string, qty int) []models.CartItem {
	if qty < 0 {
		qty = 0
	}
	out := make([]models.CartItem, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
			continue
		}
		if qty == 0 {
			continue
		}
		if it.IsService() {
			it.Quantity = 1
		} else {
			it.Quantity = qty
		}
		out = append(out, it)
	}
	return out
}

// updateBooking replaces only the bookingDetails of the matching item,
// leaving price and quantity untouched.
func updateBooking(items []models.CartItem, id string, details *models.BookingDetails) []models.CartItem {
	out := make([]models.CartItem, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ID == id {
			out[i].BookingDetails = details
		}
	}
	return out
}

// normalize enforces item invariants on the way in: services always carry
// quantity 1, and no item enters with a non-positive quantity.
func normalize(item models.CartItem) models.CartItem {
	if item.IsService() || item.Quantity < 1 {
		item.Quantity = 1
	}
	return item
}
