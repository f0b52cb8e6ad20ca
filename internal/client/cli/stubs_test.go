package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/services"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// capturePrintln redirects user-facing output into the returned slice for the
// duration of the test.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			if s, ok := a.(string); ok {
				parts = append(parts, s)
			}
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func stubInputs(t *testing.T, answers []string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", nil
		}
		v := answers[i]
		i++
		return v, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func stubConfirmation(t *testing.T, answer bool) {
	t.Helper()
	orig := getConfirmation
	getConfirmation = func(_ *bufio.Reader, _ string, _ io.Writer) (bool, error) {
		return answer, nil
	}
	t.Cleanup(func() { getConfirmation = orig })
}

type fakeSession struct {
	authed bool
	user   *models.User

	loginEmail   string
	loginErr     error
	registerName string
	registerErr  error
	logoutCalled bool
}

func (f *fakeSession) Login(_ context.Context, email string, _ []byte) error {
	f.loginEmail = email
	if f.loginErr == nil {
		f.authed = true
	}
	return f.loginErr
}

func (f *fakeSession) Register(_ context.Context, email string, _ []byte, fullName string) error {
	f.registerName = fullName
	if f.registerErr == nil {
		f.authed = true
	}
	return f.registerErr
}

func (f *fakeSession) Logout(_ context.Context) error {
	f.logoutCalled = true
	f.authed = false
	f.user = nil
	return nil
}

func (f *fakeSession) Restore(_ context.Context) error { return nil }
func (f *fakeSession) CurrentUser() *models.User       { return f.user }
func (f *fakeSession) Token() string                   { return "tok" }
func (f *fakeSession) IsAuthenticated() bool           { return f.authed }

func (f *fakeSession) State() services.SessionState {
	if f.authed {
		return services.StateAuthenticated
	}
	return services.StateUnauthenticated
}

type fakeCart struct {
	items models.Cart
	calls []string

	refreshErr error
	addErr     error
	setErr     error
	removeErr  error

	lastAddID  string
	lastAddQty int
	lastSetID  string
	lastSetQty int
}

func (f *fakeCart) Refresh(_ context.Context) error {
	f.calls = append(f.calls, "refresh")
	return f.refreshErr
}

func (f *fakeCart) Items() models.Cart { return f.items }

func (f *fakeCart) Add(_ context.Context, productID string, quantity int) error {
	f.calls = append(f.calls, "add")
	f.lastAddID, f.lastAddQty = productID, quantity
	return f.addErr
}

func (f *fakeCart) SetQuantity(_ context.Context, itemID string, quantity int) error {
	f.calls = append(f.calls, "set")
	f.lastSetID, f.lastSetQty = itemID, quantity
	return f.setErr
}

func (f *fakeCart) Remove(_ context.Context, itemID string) error {
	f.calls = append(f.calls, "remove")
	return f.removeErr
}

func (f *fakeCart) TotalItems() int     { return f.items.TotalItems() }
func (f *fakeCart) TotalPrice() float64 { return f.items.TotalPrice() }

func (f *fakeCart) Reset() {
	f.calls = append(f.calls, "reset")
	f.items = nil
}

type fakeCatalog struct {
	products []models.Product

	lastCategory string
	lastSearch   string
}

func (f *fakeCatalog) List(_ context.Context, category, search string) ([]models.Product, error) {
	f.lastCategory, f.lastSearch = category, search
	return f.products, nil
}

func (f *fakeCatalog) Get(_ context.Context, id string) (*models.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return &models.Product{ID: id}, nil
}

func (f *fakeCatalog) Categories(_ context.Context) ([]models.Category, error) {
	return nil, nil
}

type fakeAdmin struct {
	calls    []string
	lastForm services.ProductForm
	lastID   string

	created   *models.Product
	createErr error
	deleteErr error
	products  []models.Product
}

func (f *fakeAdmin) List(_ context.Context) ([]models.Product, error) {
	f.calls = append(f.calls, "list")
	return f.products, nil
}

func (f *fakeAdmin) Create(_ context.Context, form services.ProductForm) (*models.Product, error) {
	f.calls = append(f.calls, "create")
	f.lastForm = form
	return f.created, f.createErr
}

func (f *fakeAdmin) Delete(_ context.Context, id string) error {
	f.calls = append(f.calls, "delete")
	f.lastID = id
	return f.deleteErr
}

type fakeOrders struct {
	order    *models.Order
	orderErr error
	history  []models.Order

	lastAddr models.ShippingAddress
}

func (f *fakeOrders) Checkout(_ context.Context, addr models.ShippingAddress) (*models.Order, error) {
	f.lastAddr = addr
	return f.order, f.orderErr
}

func (f *fakeOrders) History(_ context.Context) ([]models.Order, error) {
	return f.history, nil
}

func newTestApp(session *fakeSession, cart *fakeCart, catalog *fakeCatalog, admin *fakeAdmin, orders *fakeOrders) *App {
	if session == nil {
		session = &fakeSession{}
	}
	if cart == nil {
		cart = &fakeCart{}
	}
	if catalog == nil {
		catalog = &fakeCatalog{}
	}
	if admin == nil {
		admin = &fakeAdmin{}
	}
	if orders == nil {
		orders = &fakeOrders{}
	}
	return &App{
		session: session,
		cart:    cart,
		catalog: catalog,
		admin:   admin,
		orders:  orders,
		log:     logging.Discard(),
		reader:  bufio.NewReader(strings.NewReader("")),
	}
}
