// Package cli implements the interactive WifiKeeper client. It ties the
// remote API, the persisted session and the route guards together behind a
// small REPL.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/wifikeeper/internal/client/api"
	"github.com/dmitrijs2005/wifikeeper/internal/client/config"
	"github.com/dmitrijs2005/wifikeeper/internal/client/guard"
	"github.com/dmitrijs2005/wifikeeper/internal/client/services"
	"github.com/dmitrijs2005/wifikeeper/internal/client/session"
	"github.com/dmitrijs2005/wifikeeper/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config *config.Config
	store  *session.Store
	auth   *services.AuthService
	wifi   *services.WifiService
	logger logging.Logger
	reader *bufio.Reader
	route  string
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := session.OpenDatabase(ctx, c.SessionDBPath)
	if err != nil {
		logger.Error(ctx, "error initializing session database", "error", err)
		return nil, err
	}

	store := session.NewStore(db)
	if err := store.Initialize(ctx); err != nil {
		// start logged out rather than refuse to start
		logger.Warn(ctx, "could not restore persisted session", "error", err)
	}

	apiClient := api.NewHTTPClient(c.ServerBaseURL, store.Token)

	app := &App{
		config: c,
		store:  store,
		auth:   services.NewAuthService(apiClient, store, logger),
		wifi:   services.NewWifiService(apiClient),
		logger: logger,
		reader: bufio.NewReader(os.Stdin),
		route:  guard.PathLogin,
	}
	if store.IsAuthenticated() {
		app.route = guard.PathDashboard
	}
	return app, nil
}

func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to WifiKeeper CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.store.IsAuthenticated()
}

func (a *App) isAdmin() bool {
	return a.store.IsAdmin()
}

func (a *App) getStatus() string {
	snap := a.store.Snapshot()
	if !snap.IsAuthenticated() {
		return a.route
	}
	s := snap.User.Email
	if snap.IsAdmin() {
		s += " admin"
	}
	return "(" + s + ") " + a.route
}

// navigate runs the route guards for path. When access is denied the current
// route becomes the guard's redirect target and the command that asked is
// skipped, nothing is ever sent to the backend for a denied route.
func (a *App) navigate(path string) bool {
	route, ok := guard.Lookup(path)
	if !ok {
		printlnFn("Unknown page:", path)
		return false
	}

	decision := guard.Evaluate(route, a.store.Snapshot())
	if !decision.Allow {
		a.route = decision.RedirectTo
		printlnFn("Redirected to", decision.RedirectTo)
		return false
	}

	a.route = path
	return true
}
