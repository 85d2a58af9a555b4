package booking

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	bookingRepo "espuma/database/repository/booking"
	"espuma/models"
	"espuma/services/cart"

	"github.com/stretchr/testify/require"
)

var codePattern = regexp.MustCompile(`^ESP-[0-9A-Z]+-[0-9A-Z]{4}$`)

func testCheckout(store bookingRepo.BookingStore) (*DefaultCheckoutService, *DefaultBookingService, cart.CartService) {
	engine := testService(store)
	carts := &cart.DefaultCartService{Store: cart.NewMemoryCartStore(), VATRate: 0.12}
	return &DefaultCheckoutService{Engine: engine, Cart: carts}, engine, carts
}

// bookedServiceCart walks a session through the normal pre-checkout flow:
// service in cart, slot reserved, booking details attached.
func bookedServiceCart(t *testing.T, engine *DefaultBookingService, carts cart.CartService, sessionID string) string {
	t.Helper()
	ctx := context.Background()

	_, err := carts.AddToCart(ctx, sessionID, models.CartItem{
		ID: "svc-premium-wash", Type: models.ItemTypeService, Name: "Premium Wash",
		Price: 650, Quantity: 1, DurationMin: 60,
	})
	require.NoError(t, err)

	res, err := engine.Reserve(ctx, reservationRequest("09:00"), sessionID)
	require.NoError(t, err)
	require.True(t, res.Success)

	_, err = carts.UpdateItemBooking(ctx, sessionID, "svc-premium-wash", &models.BookingDetails{
		Date: "2030-05-20", TimeSlot: "09:00", LocationID: "esp-makati",
		LocationName: "Espuma Makati", VehicleType: "suv",
		ReservationID: res.ReservationID, ReservedUntil: res.ReservedUntil,
	})
	require.NoError(t, err)
	return res.ReservationID
}

func TestConfirmOrderEndToEnd(t *testing.T) {
	store := bookingRepo.NewMemoryBookingStore()
	checkout, engine, carts := testCheckout(store)
	ctx := context.Background()

	resID := bookedServiceCart(t, engine, carts, "sess-1")
	_, err := carts.AddToCart(ctx, "sess-1", models.CartItem{
		ID: "prd-microfiber", Type: models.ItemTypeProduct, Name: "Microfiber Towel Set",
		Price: 350, Quantity: 2,
	})
	require.NoError(t, err)

	confirmation, conflicts, err := checkout.ConfirmOrder(ctx, "sess-1", models.CheckoutRequest{
		Customer:      models.Customer{Name: "Ana Reyes", Phone: "+63 917 000 0000"},
		PaymentMethod: "gcash",
	})
	require.NoError(t, err)
	require.Empty(t, conflicts)
	require.NotNil(t, confirmation)

	require.Regexp(t, codePattern, confirmation.ConfirmationCode)
	require.Equal(t, "gcash", confirmation.PaymentMethod)
	require.Len(t, confirmation.Bookings, 1)
	require.Equal(t, "Premium Wash", confirmation.Bookings[0].ServiceName)
	require.Len(t, confirmation.Items, 2)
	require.Equal(t, 1350.0, confirmation.Total)

	// The hold is consumed and the cart emptied.
	gone, err := store.GetReservation(ctx, resID)
	require.NoError(t, err)
	require.Nil(t, gone)

	state, err := carts.GetCart(ctx, "sess-1")
	require.NoError(t, err)
	require.Empty(t, state.Items)

	stored, err := engine.GetBooking(ctx, confirmation.Bookings[0].ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, models.BookingStatusConfirmed, stored.Status)
}

func TestConfirmOrderRejectsUnknownPaymentMethod(t *testing.T) {
	checkout, engine, carts := testCheckout(bookingRepo.NewMemoryBookingStore())
	bookedServiceCart(t, engine, carts, "sess-1")

	_, _, err := checkout.ConfirmOrder(context.Background(), "sess-1", models.CheckoutRequest{
		Customer:      models.Customer{Name: "Ana"},
		PaymentMethod: "bitcoin",
	})
	require.Error(t, err)
	var bookingErr *BookingError
	require.True(t, errors.As(err, &bookingErr))
}

func TestConfirmOrderEmptyCart(t *testing.T) {
	checkout, _, _ := testCheckout(bookingRepo.NewMemoryBookingStore())

	confirmation, conflicts, err := checkout.ConfirmOrder(context.Background(), "sess-1", models.CheckoutRequest{
		Customer:      models.Customer{Name: "Ana"},
		PaymentMethod: "cash",
	})
	require.NoError(t, err)
	require.Nil(t, confirmation)
	require.Equal(t, []string{"Cart is empty."}, conflictMessages(conflicts))
}

func TestConfirmOrderBlocksUnbookedServices(t *testing.T) {
	checkout, _, carts := testCheckout(bookingRepo.NewMemoryBookingStore())
	ctx := context.Background()

	_, err := carts.AddToCart(ctx, "sess-1", models.CartItem{
		ID: "svc-express-wash", Type: models.ItemTypeService, Name: "Express Wash",
		Price: 250, Quantity: 1, DurationMin: 30,
	})
	require.NoError(t, err)

	confirmation, conflicts, err := checkout.ConfirmOrder(ctx, "sess-1", models.CheckoutRequest{
		Customer:      models.Customer{Name: "Ana"},
		PaymentMethod: "cash",
	})
	require.NoError(t, err)
	require.Nil(t, confirmation)
	require.Equal(t,
		[]string{"All services must have a booked time slot before checkout."},
		conflictMessages(conflicts))
}

func TestConfirmOrderExpiredReservation(t *testing.T) {
	store := bookingRepo.NewMemoryBookingStore()
	checkout, engine, carts := testCheckout(store)
	ctx := context.Background()

	resID := bookedServiceCart(t, engine, carts, "sess-1")

	// Let the hold lapse before checkout.
	engine.Clock = func() time.Time { return fixedNow.Add(16 * time.Minute) }

	confirmation, conflicts, err := checkout.ConfirmOrder(ctx, "sess-1", models.CheckoutRequest{
		Customer:      models.Customer{Name: "Ana"},
		PaymentMethod: "cash",
	})
	require.NoError(t, err)
	require.Nil(t, confirmation)
	require.Equal(t,
		[]string{"Reservation has expired. Please pick a slot again."},
		conflictMessages(conflicts))

	// The lapsed hold is evicted and the cart kept so the customer can rebook.
	gone, err := store.GetReservation(ctx, resID)
	require.NoError(t, err)
	require.Nil(t, gone)

	state, err := carts.GetCart(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, state.Items, 1)
}

func TestConfirmOrderRejectsSharedReservation(t *testing.T) {
	store := bookingRepo.NewMemoryBookingStore()
	checkout, engine, carts := testCheckout(store)
	ctx := context.Background()

	resID := bookedServiceCart(t, engine, carts, "sess-1")

	// A second service line pointing at the same hold must fail the whole
	// checkout, not convert the hold for one line and strand the other.
	_, err := carts.AddToCart(ctx, "sess-1", models.CartItem{
		ID: "svc-express-wash", Type: models.ItemTypeService, Name: "Express Wash",
		Price: 250, Quantity: 1, DurationMin: 30,
		BookingDetails: &models.BookingDetails{
			Date: "2030-05-20", TimeSlot: "09:00", LocationID: "esp-makati",
			ReservationID: resID,
		},
	})
	require.NoError(t, err)

	confirmation, conflicts, err := checkout.ConfirmOrder(ctx, "sess-1", models.CheckoutRequest{
		Customer:      models.Customer{Name: "Ana"},
		PaymentMethod: "cash",
	})
	require.NoError(t, err)
	require.Nil(t, confirmation)
	require.Equal(t,
		[]string{"Each service requires its own reserved time slot."},
		conflictMessages(conflicts))

	// Nothing was converted: no booking exists and the hold is still live.
	bookings, err := store.ListConfirmedBookings(ctx, "esp-makati", "2030-05-20")
	require.NoError(t, err)
	require.Empty(t, bookings)

	held, err := store.GetReservation(ctx, resID)
	require.NoError(t, err)
	require.NotNil(t, held)
}

func TestConfirmOrderProductsOnlyCart(t *testing.T) {
	checkout, _, carts := testCheckout(bookingRepo.NewMemoryBookingStore())
	ctx := context.Background()

	_, err := carts.AddToCart(ctx, "sess-1", models.CartItem{
		ID: "prd-shampoo", Type: models.ItemTypeProduct, Name: "Car Shampoo", Price: 280, Quantity: 1,
	})
	require.NoError(t, err)

	confirmation, conflicts, err := checkout.ConfirmOrder(ctx, "sess-1", models.CheckoutRequest{
		Customer:      models.Customer{Name: "Ana"},
		PaymentMethod: "card",
	})
	require.NoError(t, err)
	require.Empty(t, conflicts)
	require.NotNil(t, confirmation)
	require.Regexp(t, codePattern, confirmation.ConfirmationCode)
	require.Empty(t, confirmation.Bookings)
}

func TestGenerateConfirmationCodeShape(t *testing.T) {
	for i := 0; i < 20; i++ {
		require.Regexp(t, codePattern, GenerateConfirmationCode(fixedNow))
	}
}
