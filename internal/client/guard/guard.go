// Package guard decides whether a navigation target is allowed for the
// current session. Decisions are pure and never touch the network, so a
// denied route costs nothing and leaks nothing.
package guard

import "github.com/dmitrijs2005/wifikeeper/internal/client/session"

// Route describes the access requirements of a navigation target.
type Route struct {
	Path          string
	RequiresAuth  bool
	RequiresAdmin bool
}

// Well-known paths.
const (
	PathLogin       = "/login"
	PathRegister    = "/register"
	PathDashboard   = "/dashboard"
	PathQRGenerator = "/qr-generator"
	PathMyCodes     = "/my-codes"
	PathAdminCodes  = "/admin/credentials"
)

// Routes is the application route table.
var Routes = []Route{
	{Path: PathLogin},
	{Path: PathRegister},
	{Path: PathDashboard, RequiresAuth: true},
	{Path: PathQRGenerator, RequiresAuth: true},
	{Path: PathMyCodes, RequiresAuth: true},
	{Path: PathAdminCodes, RequiresAuth: true, RequiresAdmin: true},
}

// Decision is the outcome of evaluating a route against a session.
// When Allow is false, RedirectTo names the fallback target.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Lookup finds a route by path.
func Lookup(path string) (Route, bool) {
	for _, r := range Routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// Evaluate applies the access rules for route to the given session snapshot.
// Unauthenticated users are sent to the login page; authenticated non-admins
// asking for an admin route are sent to the dashboard.
func Evaluate(route Route, s session.Session) Decision {
	if route.RequiresAuth && !s.IsAuthenticated() {
		return Decision{RedirectTo: PathLogin}
	}
	if route.RequiresAdmin && !s.IsAdmin() {
		return Decision{RedirectTo: PathDashboard}
	}
	return Decision{Allow: true}
}
