// File: espuma/services/booking/confirmation.go
package booking

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"espuma/models"
	"espuma/services/cart"
	"espuma/utils"

	"go.uber.org/zap"
)

// DefaultCheckoutService finalizes an order: it validates that every service
// line in the cart still holds a live reservation, converts each hold into a
// confirmed booking, and clears the cart.
type DefaultCheckoutService struct {
	Engine *DefaultBookingService
	Cart   cart.CartService
}

// ConfirmOrder runs the checkout flow for a session. Validation happens in
// full before any hold is converted, so a dead reservation fails the whole
// checkout without partial confirmation.
func (s *DefaultCheckoutService) ConfirmOrder(ctx context.Context, sessionID string, req models.CheckoutRequest) (*models.OrderConfirmation, []models.Conflict, error) {
	logger := utils.GetLogger()
	now := s.Engine.now()

	if !validPaymentMethod(req.PaymentMethod) {
		return nil, nil, NewBookingError(fmt.Sprintf("unsupported payment method %q", req.PaymentMethod))
	}

	state, err := s.Cart.GetCart(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(state.Items) == 0 {
		return nil, []models.Conflict{{Type: models.ConflictTime, Message: "Cart is empty."}}, nil
	}

	var serviceItems []models.CartItem
	var conflicts []models.Conflict
	for _, item := range state.Items {
		if !item.IsService() {
			continue
		}
		if item.BookingDetails == nil || item.BookingDetails.ReservationID == "" {
			conflicts = append(conflicts, models.Conflict{Type: models.ConflictTime, Message: msgUnbookedItems})
			continue
		}
		serviceItems = append(serviceItems, item)
	}
	if len(conflicts) > 0 {
		return nil, conflicts, nil
	}

	// Phase 1: every reservation must still resolve to a live hold, and a
	// hold backs at most one line; a duplicate would be consumed by the
	// first conversion and strand the rest mid-checkout.
	seen := make(map[string]bool, len(serviceItems))
	for _, item := range serviceItems {
		resID := item.BookingDetails.ReservationID
		if seen[resID] {
			conflicts = append(conflicts, models.Conflict{Type: models.ConflictTime, Message: msgDuplicateHold})
			continue
		}
		seen[resID] = true
		reservation, err := s.Engine.Store.GetReservation(ctx, resID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load reservation %s: %w", resID, err)
		}
		switch {
		case reservation == nil:
			conflicts = append(conflicts, models.Conflict{Type: models.ConflictTime, Message: msgResNotFound})
		case reservation.Expired(now):
			if _, err := s.Engine.Store.DeleteReservation(ctx, resID); err != nil {
				logger.Warn("ConfirmOrder: failed to evict expired hold",
					zap.String("reservationID", resID), zap.Error(err))
			}
			conflicts = append(conflicts, models.Conflict{Type: models.ConflictTime, Message: msgResExpired})
		}
	}
	if len(conflicts) > 0 {
		return nil, conflicts, nil
	}

	// Phase 2: convert every hold. A failure here is a race the overlap
	// gates should have prevented; it aborts with that hold's conflicts.
	var bookings []models.ConfirmedBooking
	for _, item := range serviceItems {
		booking, cfls, err := s.Engine.ConfirmReservation(ctx, item.BookingDetails.ReservationID, req.Customer, item)
		if err != nil {
			return nil, nil, err
		}
		if len(cfls) > 0 {
			return nil, cfls, nil
		}
		bookings = append(bookings, *booking)
	}

	if err := s.Cart.ClearCart(ctx, sessionID); err != nil {
		// The bookings stand; an unclearable cart is a degradation, not a failure.
		logger.Warn("ConfirmOrder: failed to clear cart", zap.String("sessionID", sessionID), zap.Error(err))
	}

	return &models.OrderConfirmation{
		ConfirmationCode: GenerateConfirmationCode(now),
		Bookings:         bookings,
		Items:            state.Items,
		Subtotal:         state.Subtotal,
		Tax:              state.Tax,
		Total:            state.Total,
		PaymentMethod:    req.PaymentMethod,
		CreatedAt:        now,
	}, nil, nil
}

// Payment methods accepted at checkout. No charge is taken here; the method
// is recorded for the branch to settle on site.
var paymentMethods = map[string]bool{"cash": true, "gcash": true, "card": true}

func validPaymentMethod(m string) bool {
	return paymentMethods[m]
}

const codeCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateConfirmationCode builds a customer-facing order code in the form
// ESP-<base36 timestamp>-<4 random chars>.
func GenerateConfirmationCode(now time.Time) string {
	stamp := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = codeCharset[rand.Intn(len(codeCharset))]
	}
	return fmt.Sprintf("ESP-%s-%s", stamp, suffix)
}
