package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/client/api"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// CartService owns the in-memory cart snapshot.
//
// All operations require an authenticated session; without one they return
// common.ErrNotAuthenticated with no network call and an unchanged snapshot.
// Every successful mutation is followed by an unconditional full re-fetch;
// there is no optimistic local update, the last fetch wins.
type CartService interface {
	Refresh(ctx context.Context) error
	Items() models.Cart
	Add(ctx context.Context, productID string, quantity int) error
	SetQuantity(ctx context.Context, itemID string, quantity int) error
	Remove(ctx context.Context, itemID string) error
	TotalItems() int
	TotalPrice() float64
	Reset()
}

type cartService struct {
	client  api.Client
	session SessionService
	log     logging.Logger

	items models.Cart
}

func NewCartService(client api.Client, session SessionService, log logging.Logger) CartService {
	return &cartService{client: client, session: session, log: log}
}

// credential returns the session token, or ErrNotAuthenticated before any
// network activity when the user is signed out.
func (s *cartService) credential() (string, error) {
	if !s.session.IsAuthenticated() {
		return "", common.ErrNotAuthenticated
	}
	return s.session.Token(), nil
}

func (s *cartService) Refresh(ctx context.Context) error {
	token, err := s.credential()
	if err != nil {
		return err
	}

	items, err := s.client.Cart(ctx, token)
	if err != nil {
		return fmt.Errorf("cart fetch error: %w", err)
	}

	s.items = items
	return nil
}

// Items returns the current snapshot, exactly as last fetched.
func (s *cartService) Items() models.Cart { return s.items }

// Add posts the product and quantity; the server decides whether to increment
// an existing line or create a new one.
func (s *cartService) Add(ctx context.Context, productID string, quantity int) error {
	token, err := s.credential()
	if err != nil {
		return err
	}

	if err := s.client.AddCartItem(ctx, token, productID, quantity); err != nil {
		return fmt.Errorf("add to cart error: %w", err)
	}
	s.log.Info(ctx, "added to cart", "product_id", productID, "quantity", quantity)

	return s.Refresh(ctx)
}

// SetQuantity sends the absolute quantity, clamped to a minimum of 1.
func (s *cartService) SetQuantity(ctx context.Context, itemID string, quantity int) error {
	token, err := s.credential()
	if err != nil {
		return err
	}

	if quantity < 1 {
		quantity = 1
	}

	if err := s.client.UpdateCartItem(ctx, token, itemID, quantity); err != nil {
		return fmt.Errorf("cart update error: %w", err)
	}

	return s.Refresh(ctx)
}

func (s *cartService) Remove(ctx context.Context, itemID string) error {
	token, err := s.credential()
	if err != nil {
		return err
	}

	if err := s.client.RemoveCartItem(ctx, token, itemID); err != nil {
		return fmt.Errorf("cart remove error: %w", err)
	}

	return s.Refresh(ctx)
}

func (s *cartService) TotalItems() int { return s.items.TotalItems() }

func (s *cartService) TotalPrice() float64 { return s.items.TotalPrice() }

// Reset drops the local snapshot. Called when the session ends.
func (s *cartService) Reset() { s.items = nil }
