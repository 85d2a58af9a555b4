package cart

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeDropsItemMissingPrice(t *testing.T) {
	raw := []byte(`{"items":[
		{"id":"prd-1","type":"product","name":"Towel","price":350,"quantity":2},
		{"id":"prd-2","type":"product","name":"Shampoo","quantity":1}
	],"subtotal":0,"tax":0,"total":0}`)

	state := sanitizeState(raw, vat)
	require.Len(t, state.Items, 1)
	require.Equal(t, "prd-1", state.Items[0].ID)
}

func TestSanitizeDropsWrongTypes(t *testing.T) {
	raw := []byte(`{"items":[
		{"id":42,"type":"product","name":"Towel","price":350,"quantity":2},
		{"id":"prd-2","type":"widget","name":"Shampoo","price":280,"quantity":1},
		{"id":"prd-3","type":"product","name":"Gel","price":"180","quantity":1},
		{"id":"prd-4","type":"product","name":"Spray","price":200,"quantity":1}
	]}`)

	state := sanitizeState(raw, vat)
	require.Len(t, state.Items, 1)
	require.Equal(t, "prd-4", state.Items[0].ID)
}

func TestSanitizeDropsIncompleteBookingDetails(t *testing.T) {
	raw := []byte(`{"items":[
		{"id":"svc-1","type":"service","name":"Wash","price":450,"quantity":1,
		 "bookingDetails":{"date":"2030-05-20","timeSlot":"09:00"}}
	]}`)

	state := sanitizeState(raw, vat)
	require.Len(t, state.Items, 1)
	require.Nil(t, state.Items[0].BookingDetails)
}

func TestSanitizeKeepsValidBookingDetails(t *testing.T) {
	raw := []byte(`{"items":[
		{"id":"svc-1","type":"service","name":"Wash","price":450,"quantity":1,
		 "bookingDetails":{"date":"2030-05-20","timeSlot":"09:00","locationId":"esp-makati","reservationId":"res-1"}}
	]}`)

	state := sanitizeState(raw, vat)
	require.Len(t, state.Items, 1)
	require.NotNil(t, state.Items[0].BookingDetails)
	require.Equal(t, "res-1", state.Items[0].BookingDetails.ReservationID)
}

func TestSanitizeRecomputesTotalsFromScratch(t *testing.T) {
	// Persisted totals are stale on purpose; the load must ignore them.
	raw := []byte(`{"items":[
		{"id":"prd-1","type":"product","name":"Towel","price":350,"quantity":2}
	],"subtotal":9999,"tax":9999,"total":9999}`)

	state := sanitizeState(raw, vat)
	require.Equal(t, 700.0, state.Total)
	require.Equal(t, 625.0, state.Subtotal)
	require.Equal(t, 75.0, state.Tax)
}

func TestSanitizeUnparseableStateDegradesToEmpty(t *testing.T) {
	state := sanitizeState([]byte(`{not json`), vat)
	require.Empty(t, state.Items)
	require.Zero(t, state.Total)
}

func TestSanitizeClampsServiceQuantity(t *testing.T) {
	raw := []byte(`{"items":[
		{"id":"svc-1","type":"service","name":"Wash","price":450,"quantity":3}
	]}`)

	state := sanitizeState(raw, vat)
	require.Len(t, state.Items, 1)
	require.Equal(t, 1, state.Items[0].Quantity)
}
