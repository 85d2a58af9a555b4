package models

// Cart item types.
const (
	ItemTypeService = "service"
	ItemTypeProduct = "product"
)

// BookingDetails links a service cart item to its reserved slot.
type BookingDetails struct {
	Date          string `json:"date"`
	TimeSlot      string `json:"timeSlot"`
	LocationID    string `json:"locationId"`
	LocationName  string `json:"locationName,omitempty"`
	VehicleType   string `json:"vehicleType,omitempty"`
	ReservationID string `json:"reservationId,omitempty"`
	ReservedUntil string `json:"reservedUntil,omitempty"` // RFC 3339
}

// CartItem is one line item in a cart. Prices are VAT-inclusive Philippine
// Pesos. A service item's quantity is always 1.
type CartItem struct {
	ID             string          `json:"id"`
	Type           string          `json:"type"` // "service" or "product"
	Name           string          `json:"name"`
	Price          float64         `json:"price"`
	Quantity       int             `json:"quantity"`
	DurationMin    int             `json:"durationMin,omitempty"` // services only
	BookingDetails *BookingDetails `json:"bookingDetails,omitempty"`
}

// IsService reports whether the item is a bookable service line.
func (i CartItem) IsService() bool { return i.Type == ItemTypeService }

// Booked reports whether a service item has booking details attached. An
// expired reservation does not clear the details; staleness is surfaced
// separately via ReservedUntil.
func (i CartItem) Booked() bool {
	return i.IsService() && i.BookingDetails != nil
}

// CartState is the full cart: ordered items (insertion order, deduplicated by
// id) plus derived totals.
type CartState struct {
	Items    []CartItem `json:"items"`
	Subtotal float64    `json:"subtotal"`
	Tax      float64    `json:"tax"`
	Total    float64    `json:"total"`
}

// CartSummary is the read model handed to gating consumers.
type CartSummary struct {
	ItemCount              int     `json:"itemCount"`
	Subtotal               float64 `json:"subtotal"`
	Tax                    float64 `json:"tax"`
	Total                  float64 `json:"total"`
	HasServices            bool    `json:"hasServices"`
	HasProducts            bool    `json:"hasProducts"`
	HasUnbookedServices    bool    `json:"hasUnbookedServices"`
	ServicesNeedingBooking int     `json:"servicesNeedingBooking"`
}
