package services

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

// fakeAPI is a hand-rolled api.Client for service tests: captured inputs on
// the left, preset outputs on the right.
type fakeAPI struct {
	// inputs captured
	calls []string

	lastLoginEmail    string
	lastLoginPass     []byte
	lastRegisterEmail string
	lastRegisterName  string
	lastMeToken       string

	lastCategory string
	lastSearch   string
	lastGetID    string

	lastCreateToken   string
	lastCreateProduct models.ProductCreate
	lastDeleteToken   string
	lastDeleteID      string

	lastCartToken string
	lastAddID     string
	lastAddQty    int
	lastUpdateID  string
	lastUpdateQty int
	lastRemoveID  string

	lastOrderToken string
	lastOrder      models.OrderCreate

	// outputs preset
	loginToken    string
	loginErr      error
	registerToken string
	registerErr   error
	meUser        *models.User
	meErr         error

	products      []models.Product
	productsErr   error
	product       *models.Product
	productErr    error
	categories    []models.Category
	categoriesErr error

	createdProduct *models.Product
	createErr      error
	deleteErr      error

	cart      models.Cart
	cartErr   error
	addErr    error
	updateErr error
	removeErr error

	order     *models.Order
	orderErr  error
	orders    []models.Order
	ordersErr error
}

func (f *fakeAPI) Login(_ context.Context, email string, password []byte) (string, error) {
	f.calls = append(f.calls, "login")
	f.lastLoginEmail = email
	f.lastLoginPass = append([]byte(nil), password...)
	return f.loginToken, f.loginErr
}

func (f *fakeAPI) Register(_ context.Context, email string, password []byte, fullName string) (string, error) {
	f.calls = append(f.calls, "register")
	f.lastRegisterEmail = email
	f.lastRegisterName = fullName
	return f.registerToken, f.registerErr
}

func (f *fakeAPI) Me(_ context.Context, token string) (*models.User, error) {
	f.calls = append(f.calls, "me")
	f.lastMeToken = token
	return f.meUser, f.meErr
}

func (f *fakeAPI) Products(_ context.Context, category, search string) ([]models.Product, error) {
	f.calls = append(f.calls, "products")
	f.lastCategory, f.lastSearch = category, search
	return f.products, f.productsErr
}

func (f *fakeAPI) Product(_ context.Context, id string) (*models.Product, error) {
	f.calls = append(f.calls, "product")
	f.lastGetID = id
	return f.product, f.productErr
}

func (f *fakeAPI) Categories(_ context.Context) ([]models.Category, error) {
	f.calls = append(f.calls, "categories")
	return f.categories, f.categoriesErr
}

func (f *fakeAPI) CreateProduct(_ context.Context, token string, in models.ProductCreate) (*models.Product, error) {
	f.calls = append(f.calls, "create_product")
	f.lastCreateToken, f.lastCreateProduct = token, in
	return f.createdProduct, f.createErr
}

func (f *fakeAPI) DeleteProduct(_ context.Context, token, id string) error {
	f.calls = append(f.calls, "delete_product")
	f.lastDeleteToken, f.lastDeleteID = token, id
	return f.deleteErr
}

func (f *fakeAPI) Cart(_ context.Context, token string) (models.Cart, error) {
	f.calls = append(f.calls, "cart")
	f.lastCartToken = token
	return f.cart, f.cartErr
}

func (f *fakeAPI) AddCartItem(_ context.Context, token, productID string, quantity int) error {
	f.calls = append(f.calls, "add_cart_item")
	f.lastCartToken, f.lastAddID, f.lastAddQty = token, productID, quantity
	return f.addErr
}

func (f *fakeAPI) UpdateCartItem(_ context.Context, token, itemID string, quantity int) error {
	f.calls = append(f.calls, "update_cart_item")
	f.lastCartToken, f.lastUpdateID, f.lastUpdateQty = token, itemID, quantity
	return f.updateErr
}

func (f *fakeAPI) RemoveCartItem(_ context.Context, token, itemID string) error {
	f.calls = append(f.calls, "remove_cart_item")
	f.lastCartToken, f.lastRemoveID = token, itemID
	return f.removeErr
}

func (f *fakeAPI) CreateOrder(_ context.Context, token string, in models.OrderCreate) (*models.Order, error) {
	f.calls = append(f.calls, "create_order")
	f.lastOrderToken, f.lastOrder = token, in
	return f.order, f.orderErr
}

func (f *fakeAPI) Orders(_ context.Context, token string) ([]models.Order, error) {
	f.calls = append(f.calls, "orders")
	f.lastOrderToken = token
	return f.orders, f.ordersErr
}

// sessionStub satisfies SessionService for stores that only need the
// authentication gate.
type sessionStub struct {
	authed bool
	token  string
}

func (s *sessionStub) Login(_ context.Context, _ string, _ []byte) error         { return nil }
func (s *sessionStub) Register(_ context.Context, _ string, _ []byte, _ string) error { return nil }
func (s *sessionStub) Logout(_ context.Context) error                            { return nil }
func (s *sessionStub) Restore(_ context.Context) error                           { return nil }
func (s *sessionStub) CurrentUser() *models.User                                 { return nil }
func (s *sessionStub) Token() string                                             { return s.token }
func (s *sessionStub) IsAuthenticated() bool                                     { return s.authed }

func (s *sessionStub) State() SessionState {
	if s.authed {
		return StateAuthenticated
	}
	return StateUnauthenticated
}
