package cart

import (
	"encoding/json"

	"espuma/models"
	"espuma/utils"

	"go.uber.org/zap"
)

// persistedState mirrors the stored cart shape with items left raw so one
// malformed entry cannot poison the whole load.
type persistedState struct {
	Items []json.RawMessage `json:"items"`
}

// sanitizeState parses a persisted cart defensively. Items failing the
// structural shape check are dropped and logged, never propagated; persisted
// totals are ignored and recomputed from scratch so a VAT-formula change
// between versions cannot leave stale figures behind.
func sanitizeState(raw []byte, vatRate float64) models.CartState {
	logger := utils.GetLogger()

	var stored persistedState
	if err := json.Unmarshal(raw, &stored); err != nil {
		logger.Warn("cart: discarding unparseable persisted state", zap.Error(err))
		return withTotals(nil, vatRate)
	}

	items := make([]models.CartItem, 0, len(stored.Items))
	for i, rawItem := range stored.Items {
		item, ok := sanitizeItem(rawItem)
		if !ok {
			logger.Warn("cart: dropping malformed persisted item", zap.Int("index", i))
			continue
		}
		items = append(items, item)
	}
	return withTotals(items, vatRate)
}

// sanitizeItem validates one raw item. Required: id, type (service|product),
// name as strings; price, quantity as numbers. Optional fields are
// individually type-checked and defaulted to absent when malformed.
func sanitizeItem(raw json.RawMessage) (models.CartItem, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return models.CartItem{}, false
	}

	var item models.CartItem
	if !decodeString(fields["id"], &item.ID) || item.ID == "" {
		return models.CartItem{}, false
	}
	if !decodeString(fields["type"], &item.Type) ||
		(item.Type != models.ItemTypeService && item.Type != models.ItemTypeProduct) {
		return models.CartItem{}, false
	}
	if !decodeString(fields["name"], &item.Name) || item.Name == "" {
		return models.CartItem{}, false
	}
	if !decodeNumber(fields["price"], &item.Price) {
		return models.CartItem{}, false
	}
	var qty float64
	if !decodeNumber(fields["quantity"], &qty) || qty < 1 {
		return models.CartItem{}, false
	}
	item.Quantity = int(qty)

	var dur float64
	if decodeNumber(fields["durationMin"], &dur) && dur > 0 {
		item.DurationMin = int(dur)
	}
	item.BookingDetails = sanitizeBookingDetails(fields["bookingDetails"])

	return normalize(item), true
}

// sanitizeBookingDetails validates nested booking details independently:
// date, timeSlot and locationId must be non-empty strings or the whole block
// is dropped.
func sanitizeBookingDetails(raw json.RawMessage) *models.BookingDetails {
	if len(raw) == 0 {
		return nil
	}
	var d models.BookingDetails
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil
	}
	if d.Date == "" || d.TimeSlot == "" || d.LocationID == "" {
		return nil
	}
	return &d
}

func decodeString(raw json.RawMessage, dst *string) bool {
	if len(raw) == 0 {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

func decodeNumber(raw json.RawMessage, dst *float64) bool {
	if len(raw) == 0 {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}
