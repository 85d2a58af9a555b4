package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"espuma/models"
)

// CartService defines the cart aggregate surface. Every mutation recomputes
// totals and persists the full state before returning it.
type CartService interface {
	GetCart(ctx context.Context, sessionID string) (models.CartState, error)
	AddToCart(ctx context.Context, sessionID string, item models.CartItem) (models.CartState, error)
	RemoveFromCart(ctx context.Context, sessionID, itemID string) (models.CartState, error)
	UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (models.CartState, error)
	UpdateItemBooking(ctx context.Context, sessionID, itemID string, details *models.BookingDetails) (models.CartState, error)
	ClearCart(ctx context.Context, sessionID string) error
	Summary(ctx context.Context, sessionID string) (models.CartSummary, error)
}

// DefaultCartService implements CartService over a CartStore.
type DefaultCartService struct {
	Store   CartStore
	VATRate float64
}

func (s *DefaultCartService) GetCart(ctx context.Context, sessionID string) (models.CartState, error) {
	return s.load(ctx, sessionID)
}

func (s *DefaultCartService) AddToCart(ctx context.Context, sessionID string, item models.CartItem) (models.CartState, error) {
	return s.mutate(ctx, sessionID, func(items []models.CartItem) []models.CartItem {
		return addItem(items, item)
	})
}

func (s *DefaultCartService) RemoveFromCart(ctx context.Context, sessionID, itemID string) (models.CartState, error) {
	return s.mutate(ctx, sessionID, func(items []models.CartItem) []models.CartItem {
		return removeItem(items, itemID)
	})
}

func (s *DefaultCartService) UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (models.CartState, error) {
	return s.mutate(ctx, sessionID, func(items []models.CartItem) []models.CartItem {
		return updateQuantity(items, itemID, quantity)
	})
}

func (s *DefaultCartService) UpdateItemBooking(ctx context.Context, sessionID, itemID string, details *models.BookingDetails) (models.CartState, error) {
	return s.mutate(ctx, sessionID, func(items []models.CartItem) []models.CartItem {
		return updateBooking(items, itemID, details)
	})
}

func (s *DefaultCartService) ClearCart(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}

func (s *DefaultCartService) Summary(ctx context.Context, sessionID string) (models.CartSummary, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return models.CartSummary{}, err
	}
	return Summarize(state), nil
}

// load rehydrates the session's cart through the sanitizing parse. A missing
// or unreadable cart degrades to an empty one; storage failures are the only
// errors surfaced.
func (s *DefaultCartService) load(ctx context.Context, sessionID string) (models.CartState, error) {
	raw, err := s.Store.Load(ctx, sessionID)
	if err != nil {
		return models.CartState{}, err
	}
	if raw == nil {
		return withTotals(nil, s.VATRate), nil
	}
	return sanitizeState(raw, s.VATRate), nil
}

func (s *DefaultCartService) mutate(ctx context.Context, sessionID string, transition func([]models.CartItem) []models.CartItem) (models.CartState, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return models.CartState{}, err
	}
	next := withTotals(transition(state.Items), s.VATRate)

	data, err := json.Marshal(next)
	if err != nil {
		return models.CartState{}, fmt.Errorf("failed to marshal cart state: %w", err)
	}
	if err := s.Store.Save(ctx, sessionID, data); err != nil {
		return models.CartState{}, err
	}
	return next, nil
}
