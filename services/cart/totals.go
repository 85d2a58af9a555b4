package cart

import (
	"math"

	"espuma/models"
)

// round2 rounds to two decimal places (centavo precision).
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// computeTotals derives subtotal/tax/total from the item list. Catalog prices
// already include VAT, so the total is the plain sum and the subtotal is
// backed out of it. Subtotal and tax are rounded independently; their sum may
// drift from the total by a centavo.
func computeTotals(items []models.CartItem, vatRate float64) (subtotal, tax, total float64) {
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	total = round2(total)
	subtotal = round2(total / (1 + vatRate))
	tax = round2(total - subtotal)
	return subtotal, tax, total
}

// withTotals returns the state with totals recomputed from its items.
func withTotals(items []models.CartItem, vatRate float64) models.CartState {
	if items == nil {
		items = []models.CartItem{}
	}
	subtotal, tax, total := computeTotals(items, vatRate)
	return models.CartState{Items: items, Subtotal: subtotal, Tax: tax, Total: total}
}
