package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/storefront/internal/client/api"
	"github.com/dmitrijs2005/storefront/internal/client/config"
	"github.com/dmitrijs2005/storefront/internal/client/services"
	"github.com/dmitrijs2005/storefront/internal/client/store"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// App wires the stores together and owns the command loop.
type App struct {
	config  *config.Config
	session services.SessionService
	catalog services.CatalogService
	cart    services.CartService
	admin   services.AdminService
	orders  services.OrderService
	log     logging.Logger
	reader  *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	level := slog.LevelInfo
	if c.Debug {
		level = slog.LevelDebug
	}
	log := logging.NewCLI(os.Stderr, level)

	db, err := store.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing local database", "error", err)
		return nil, err
	}

	apiClient := api.NewRESTClient(c.ServerBaseURL)

	session := services.NewSessionService(apiClient, db, log)
	catalog := services.NewCatalogService(apiClient, log)
	cart := services.NewCartService(apiClient, session, log)
	admin := services.NewAdminService(apiClient, session, log)
	orders := services.NewOrderService(apiClient, session, cart, log)

	return &App{
		config:  c,
		session: session,
		catalog: catalog,
		cart:    cart,
		admin:   admin,
		orders:  orders,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// getStatus renders the prompt suffix: the signed-in user's email, or nothing.
func (a *App) getStatus() string {
	if user := a.session.CurrentUser(); user != nil {
		return fmt.Sprintf(" (%s)", user.Email)
	}
	return ""
}

// Run restores a persisted session, then hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to the storefront CLI (type 'help' for commands)")

	if err := a.session.Restore(ctx); err != nil {
		a.log.Error(ctx, "session restore failed", "error", err)
	}
	a.syncAuthState(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// syncAuthState re-fetches authentication-gated state after the session
// changes: the cart is loaded while signed in and dropped when signed out.
func (a *App) syncAuthState(ctx context.Context) {
	if !a.session.IsAuthenticated() {
		a.cart.Reset()
		return
	}
	if err := a.cart.Refresh(ctx); err != nil {
		a.log.Error(ctx, "cart refresh failed", "error", err)
	}
}
