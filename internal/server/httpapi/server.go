// Package httpapi exposes the WifiKeeper services over a REST API mounted
// under /api.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/wifikeeper/internal/logging"
	"github.com/dmitrijs2005/wifikeeper/internal/server/services"
	"github.com/gorilla/mux"
)

type Server struct {
	httpServer *http.Server
	logger     logging.Logger
	users      *services.UserService
	creds      *services.CredentialService
	jwtSecret  []byte
}

func NewServer(addr string, logger logging.Logger, users *services.UserService, creds *services.CredentialService, jwtSecret []byte) *Server {
	s := &Server{
		logger:    logger,
		users:     users,
		creds:     creds,
		jwtSecret: jwtSecret,
	}

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	return s
}

func (s *Server) routes() http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/register", s.handleRegister).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)

	authed := api.NewRoute().Subrouter()
	authed.Use(s.authMiddleware)
	authed.HandleFunc("/wifi", s.handleCreateCredential).Methods(http.MethodPost)
	authed.HandleFunc("/wifi", s.handleListCredentials).Methods(http.MethodGet)
	authed.HandleFunc("/wifi/{id}", s.handleGetCredential).Methods(http.MethodGet)
	authed.HandleFunc("/wifi/{id}", s.handleDeleteCredential).Methods(http.MethodDelete)

	admin := authed.NewRoute().Subrouter()
	admin.Use(s.adminMiddleware)
	admin.HandleFunc("/admin/users", s.handleAdminListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/admin/credentials", s.handleAdminListCredentials).Methods(http.MethodGet)
	admin.HandleFunc("/admin/stats", s.handleAdminStats).Methods(http.MethodGet)

	return r
}

// Run starts the HTTP server and blocks until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info(ctx, "http server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}
