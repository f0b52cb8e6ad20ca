package api

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

// Client is the API contract against the storefront backend. The bearer
// credential is an explicit parameter on every authenticated operation; the
// transport holds no shared mutable auth state.
type Client interface {
	// Auth.
	Login(ctx context.Context, email string, password []byte) (string, error)
	Register(ctx context.Context, email string, password []byte, fullName string) (string, error)
	Me(ctx context.Context, token string) (*models.User, error)

	// Catalog (public).
	Products(ctx context.Context, category, search string) ([]models.Product, error)
	Product(ctx context.Context, id string) (*models.Product, error)
	Categories(ctx context.Context) ([]models.Category, error)

	// Admin product CRUD (create and delete only).
	CreateProduct(ctx context.Context, token string, in models.ProductCreate) (*models.Product, error)
	DeleteProduct(ctx context.Context, token, id string) error

	// Cart.
	Cart(ctx context.Context, token string) (models.Cart, error)
	AddCartItem(ctx context.Context, token, productID string, quantity int) error
	UpdateCartItem(ctx context.Context, token, itemID string, quantity int) error
	RemoveCartItem(ctx context.Context, token, itemID string) error

	// Orders.
	CreateOrder(ctx context.Context, token string, in models.OrderCreate) (*models.Order, error)
	Orders(ctx context.Context, token string) ([]models.Order, error)
}
