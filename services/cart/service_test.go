package cart

import (
	"context"
	"testing"

	"espuma/models"

	"github.com/stretchr/testify/require"
)

func testCartService() *DefaultCartService {
	return &DefaultCartService{Store: NewMemoryCartStore(), VATRate: vat}
}

func TestCartPersistsAcrossLoads(t *testing.T) {
	ctx := context.Background()
	svc := testCartService()

	_, err := svc.AddToCart(ctx, "sess-1", productItem("prd-1", 2))
	require.NoError(t, err)

	state, err := svc.GetCart(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, state.Items, 1)
	require.Equal(t, 700.0, state.Total)
}

func TestCartsAreSessionScoped(t *testing.T) {
	ctx := context.Background()
	svc := testCartService()

	_, err := svc.AddToCart(ctx, "sess-1", productItem("prd-1", 1))
	require.NoError(t, err)

	other, err := svc.GetCart(ctx, "sess-2")
	require.NoError(t, err)
	require.Empty(t, other.Items)
}

func TestEmptySessionLoadsEmptyCart(t *testing.T) {
	ctx := context.Background()
	svc := testCartService()

	state, err := svc.GetCart(ctx, "nobody")
	require.NoError(t, err)
	require.NotNil(t, state.Items)
	require.Empty(t, state.Items)
	require.Zero(t, state.Total)
}

func TestClearCartRemovesState(t *testing.T) {
	ctx := context.Background()
	svc := testCartService()

	_, err := svc.AddToCart(ctx, "sess-1", productItem("prd-1", 1))
	require.NoError(t, err)

	require.NoError(t, svc.ClearCart(ctx, "sess-1"))

	state, err := svc.GetCart(ctx, "sess-1")
	require.NoError(t, err)
	require.Empty(t, state.Items)
}

func TestUpdateItemBookingPersists(t *testing.T) {
	ctx := context.Background()
	svc := testCartService()

	_, err := svc.AddToCart(ctx, "sess-1", serviceItem("svc-1", 450))
	require.NoError(t, err)

	details := &models.BookingDetails{
		Date:       "2030-05-20",
		TimeSlot:   "09:00",
		LocationID: "esp-makati",
	}
	_, err = svc.UpdateItemBooking(ctx, "sess-1", "svc-1", details)
	require.NoError(t, err)

	state, err := svc.GetCart(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, state.Items, 1)
	require.NotNil(t, state.Items[0].BookingDetails)
	require.Equal(t, "esp-makati", state.Items[0].BookingDetails.LocationID)
}

func TestSummaryReflectsCartContents(t *testing.T) {
	ctx := context.Background()
	svc := testCartService()

	_, err := svc.AddToCart(ctx, "sess-1", serviceItem("svc-1", 450))
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, "sess-1", productItem("prd-1", 3))
	require.NoError(t, err)

	summary, err := svc.Summary(ctx, "sess-1")
	require.NoError(t, err)
	require.Equal(t, 4, summary.ItemCount)
	require.True(t, summary.HasServices)
	require.True(t, summary.HasProducts)
	require.True(t, summary.HasUnbookedServices)
	require.Equal(t, 1, summary.ServicesNeedingBooking)
}
