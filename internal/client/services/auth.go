// Package services contains the client-side use cases. Each service wires
// the remote API client to the local session store and keeps the CLI free
// of transport and persistence details.
package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/wifikeeper/internal/client/api"
	"github.com/dmitrijs2005/wifikeeper/internal/client/models"
	"github.com/dmitrijs2005/wifikeeper/internal/client/session"
	"github.com/dmitrijs2005/wifikeeper/internal/logging"
)

// AuthService handles login, registration and logout.
type AuthService struct {
	client api.Client
	store  *session.Store
	logger logging.Logger
}

func NewAuthService(client api.Client, store *session.Store, logger logging.Logger) *AuthService {
	return &AuthService{client: client, store: store, logger: logger}
}

// Login authenticates against the backend and activates the session.
// A failure to persist the session is logged and swallowed, the user is
// still logged in for the rest of the process lifetime.
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	token, user, err := s.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return s.activate(ctx, token, user)
}

// Register creates an account and activates the session immediately.
func (s *AuthService) Register(ctx context.Context, email, password string) error {
	token, user, err := s.client.Register(ctx, email, password)
	if err != nil {
		return err
	}
	return s.activate(ctx, token, user)
}

func (s *AuthService) activate(ctx context.Context, token string, user *models.User) error {
	if err := s.store.Set(ctx, token, user); err != nil {
		if errors.Is(err, session.ErrPersist) {
			s.logger.Warn(ctx, "session not persisted, it will not survive a restart", "error", err)
			return nil
		}
		return err
	}
	return nil
}

// Logout clears the local session. It never talks to the backend, the
// issued token simply stops being sent.
func (s *AuthService) Logout(ctx context.Context) {
	if err := s.store.Clear(ctx); err != nil {
		s.logger.Warn(ctx, "failed to clear persisted session", "error", err)
	}
}
