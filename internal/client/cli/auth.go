package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/wifikeeper/internal/client/guard"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for an email and password and creates a new account. On
// success the session is already active, registration logs the user in.
func (a *App) Register(ctx context.Context) error {
	if !a.navigate(guard.PathRegister) {
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.Register(ctx, email, password); err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	a.route = guard.PathDashboard
	printlnFn("Welcome,", email)
	return nil
}

// Login prompts for credentials and authenticates against the backend.
func (a *App) Login(ctx context.Context) error {
	if !a.navigate(guard.PathLogin) {
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, email, password); err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	a.route = guard.PathDashboard
	printlnFn("Welcome,", email)
	return nil
}

// Logout drops the local session and returns to the login page. The backend
// is not contacted, the token simply stops being used.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	a.route = guard.PathLogin
	printlnFn("Logged out")
	return nil
}

// Whoami reports the identity behind the current session. Reads the local
// snapshot only, no request is made.
func (a *App) Whoami(ctx context.Context) error {
	snap := a.store.Snapshot()
	if !snap.IsAuthenticated() {
		printlnFn("Not logged in")
		return nil
	}
	printlnFn("Logged in as", snap.User.Email, "("+string(snap.User.Role)+")")
	return nil
}
