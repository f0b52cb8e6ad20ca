package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/client/api"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// ErrEmptyCart is returned by Checkout when there is nothing to order;
// no request is issued in that case.
var ErrEmptyCart = errors.New("cart is empty")

// OrderService places orders from the current cart snapshot and lists order
// history. The backend clears the cart on a successful order, so Checkout
// re-fetches the cart afterward.
type OrderService interface {
	Checkout(ctx context.Context, addr models.ShippingAddress) (*models.Order, error)
	History(ctx context.Context) ([]models.Order, error)
}

type orderService struct {
	client  api.Client
	session SessionService
	cart    CartService
	log     logging.Logger
}

func NewOrderService(client api.Client, session SessionService, cart CartService, log logging.Logger) OrderService {
	return &orderService{client: client, session: session, cart: cart, log: log}
}

func (s *orderService) credential() (string, error) {
	if !s.session.IsAuthenticated() {
		return "", common.ErrNotAuthenticated
	}
	return s.session.Token(), nil
}

func (s *orderService) Checkout(ctx context.Context, addr models.ShippingAddress) (*models.Order, error) {
	token, err := s.credential()
	if err != nil {
		return nil, err
	}

	snapshot := s.cart.Items()
	if len(snapshot) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]models.OrderItem, 0, len(snapshot))
	for _, line := range snapshot {
		items = append(items, models.OrderItem{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Price:     line.Product.Price,
			Quantity:  line.Quantity,
		})
	}

	order, err := s.client.CreateOrder(ctx, token, models.OrderCreate{
		Items:           items,
		TotalAmount:     snapshot.TotalPrice(),
		ShippingAddress: addr,
	})
	if err != nil {
		return nil, fmt.Errorf("checkout error: %w", err)
	}
	s.log.Info(ctx, "order placed", "order_id", order.ID, "total", order.TotalAmount)

	// the server cleared the cart; pick up the empty state
	if err := s.cart.Refresh(ctx); err != nil {
		s.log.Warn(ctx, "cart refresh after checkout failed", "error", err)
	}

	return order, nil
}

func (s *orderService) History(ctx context.Context) ([]models.Order, error) {
	token, err := s.credential()
	if err != nil {
		return nil, err
	}

	orders, err := s.client.Orders(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("order history error: %w", err)
	}
	return orders, nil
}
