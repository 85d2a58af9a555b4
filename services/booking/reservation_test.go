package booking

import (
	"context"
	"testing"
	"time"

	bookingRepo "espuma/database/repository/booking"
	"espuma/models"

	"github.com/stretchr/testify/require"
)

func reservationRequest(slot string) models.ReservationRequest {
	return models.ReservationRequest{
		LocationID:  "esp-makati",
		Date:        "2030-05-20",
		TimeSlot:    slot,
		DurationMin: 60,
		ServiceID:   "svc-premium-wash",
	}
}

func TestReserveCreatesHoldWithExpiry(t *testing.T) {
	store := bookingRepo.NewMemoryBookingStore()
	svc := testService(store)
	ctx := context.Background()

	result, err := svc.Reserve(ctx, reservationRequest("09:00"), "sess-1")
	require.NoError(t, err)
	require.True(t, result.Success)
	require.NotEmpty(t, result.ReservationID)
	require.Equal(t, fixedNow.Add(15*time.Minute).Format(time.RFC3339), result.ReservedUntil)

	held, err := store.GetReservation(ctx, result.ReservationID)
	require.NoError(t, err)
	require.NotNil(t, held)
	require.Equal(t, "sess-1", held.ReservedBy)
	require.Equal(t, "svc-premium-wash", held.ServiceID)
}

func TestReserveFailsOnConflictWithoutRecord(t *testing.T) {
	store := bookingRepo.NewMemoryBookingStore()
	svc := testService(store)
	ctx := context.Background()

	first, err := svc.Reserve(ctx, reservationRequest("09:00"), "sess-1")
	require.NoError(t, err)
	require.True(t, first.Success)

	second, err := svc.Reserve(ctx, reservationRequest("09:30"), "sess-2")
	require.NoError(t, err)
	require.False(t, second.Success)
	require.Empty(t, second.ReservationID)
	require.NotEmpty(t, second.Conflicts)

	live, err := store.ListActiveReservations(ctx, "esp-makati", "2030-05-20", fixedNow)
	require.NoError(t, err)
	require.Len(t, live, 1)
}

func TestReserveReplacesSameSessionServiceHold(t *testing.T) {
	store := bookingRepo.NewMemoryBookingStore()
	svc := testService(store)
	ctx := context.Background()

	first, err := svc.Reserve(ctx, reservationRequest("09:00"), "sess-1")
	require.NoError(t, err)
	require.True(t, first.Success)

	// Picking a new time for the same service line swaps the hold instead of
	// stacking a second one.
	second, err := svc.Reserve(ctx, reservationRequest("14:00"), "sess-1")
	require.NoError(t, err)
	require.True(t, second.Success)

	live, err := store.ListActiveReservations(ctx, "esp-makati", "2030-05-20", fixedNow)
	require.NoError(t, err)
	require.Len(t, live, 1)
	require.Equal(t, "14:00", live[0].TimeSlot)

	gone, err := store.GetReservation(ctx, first.ReservationID)
	require.NoError(t, err)
	require.Nil(t, gone)
}

func TestCancelIsSessionScoped(t *testing.T) {
	store := bookingRepo.NewMemoryBookingStore()
	svc := testService(store)
	ctx := context.Background()

	result, err := svc.Reserve(ctx, reservationRequest("09:00"), "sess-1")
	require.NoError(t, err)

	ok, err := svc.Cancel(ctx, result.ReservationID, "sess-2")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = svc.Cancel(ctx, result.ReservationID, "sess-1")
	require.NoError(t, err)
	require.True(t, ok)

	check, err := svc.CheckAvailability(ctx, "esp-makati", "2030-05-20", "09:00", 30)
	require.NoError(t, err)
	require.True(t, check.Available)
}

func TestSweepExpiredEvictsLapsedHolds(t *testing.T) {
	store := bookingRepo.NewMemoryBookingStore()
	svc := testService(store)
	ctx := context.Background()

	require.NoError(t, store.InsertReservation(ctx,
		holdAt("res-old", "esp-makati", "2030-05-20", "09:00", 30, fixedNow.Add(-time.Minute))))
	require.NoError(t, store.InsertReservation(ctx,
		holdAt("res-live", "esp-makati", "2030-05-20", "10:00", 30, fixedNow.Add(10*time.Minute))))

	swept, err := svc.SweepExpired(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), swept)

	remaining, err := store.GetReservation(ctx, "res-live")
	require.NoError(t, err)
	require.NotNil(t, remaining)
}

func TestConfirmReservationConvertsHold(t *testing.T) {
	store := bookingRepo.NewMemoryBookingStore()
	svc := testService(store)
	ctx := context.Background()

	result, err := svc.Reserve(ctx, reservationRequest("09:00"), "sess-1")
	require.NoError(t, err)
	require.True(t, result.Success)

	item := models.CartItem{
		ID: "svc-premium-wash", Type: models.ItemTypeService, Name: "Premium Wash",
		Price: 450, Quantity: 1, DurationMin: 60,
		BookingDetails: &models.BookingDetails{
			Date: "2030-05-20", TimeSlot: "09:00", LocationID: "esp-makati",
			VehicleType: "suv", ReservationID: result.ReservationID,
		},
	}
	customer := models.Customer{Name: "Ana Reyes", Phone: "+63 917 000 0000"}

	booked, conflicts, err := svc.ConfirmReservation(ctx, result.ReservationID, customer, item)
	require.NoError(t, err)
	require.Empty(t, conflicts)
	require.NotNil(t, booked)
	require.Equal(t, models.BookingStatusConfirmed, booked.Status)
	require.Equal(t, "Premium Wash", booked.ServiceName)
	require.Equal(t, "suv", booked.VehicleType)

	// The hold is consumed by the conversion.
	gone, err := store.GetReservation(ctx, result.ReservationID)
	require.NoError(t, err)
	require.Nil(t, gone)

	stored, err := svc.GetBooking(ctx, booked.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, "Ana Reyes", stored.Customer.Name)
}

func TestConfirmReservationUnknownHold(t *testing.T) {
	svc := testService(bookingRepo.NewMemoryBookingStore())

	booked, conflicts, err := svc.ConfirmReservation(context.Background(), "missing", models.Customer{}, models.CartItem{})
	require.NoError(t, err)
	require.Nil(t, booked)
	require.Equal(t, []string{"Reservation not found. Please pick a slot again."}, conflictMessages(conflicts))
}

func TestConfirmReservationExpiredHoldIsEvicted(t *testing.T) {
	store := bookingRepo.NewMemoryBookingStore()
	svc := testService(store)
	ctx := context.Background()

	require.NoError(t, store.InsertReservation(ctx,
		holdAt("res-old", "esp-makati", "2030-05-20", "09:00", 60, fixedNow.Add(-time.Second))))

	booked, conflicts, err := svc.ConfirmReservation(ctx, "res-old", models.Customer{}, models.CartItem{})
	require.NoError(t, err)
	require.Nil(t, booked)
	require.Equal(t, []string{"Reservation has expired. Please pick a slot again."}, conflictMessages(conflicts))

	gone, err := store.GetReservation(ctx, "res-old")
	require.NoError(t, err)
	require.Nil(t, gone)
}

func TestConfirmedSlotCannotBeDoubleBooked(t *testing.T) {
	store := bookingRepo.NewMemoryBookingStore()
	svc := testService(store)
	ctx := context.Background()

	first, err := svc.Reserve(ctx, reservationRequest("09:00"), "sess-1")
	require.NoError(t, err)
	_, conflicts, err := svc.ConfirmReservation(ctx, first.ReservationID, models.Customer{Name: "Ana"}, models.CartItem{Name: "Premium Wash"})
	require.NoError(t, err)
	require.Empty(t, conflicts)

	second, err := svc.Reserve(ctx, reservationRequest("09:00"), "sess-2")
	require.NoError(t, err)
	require.False(t, second.Success)
	require.Contains(t, conflictMessages(second.Conflicts), "Time slot is already booked.")
}
