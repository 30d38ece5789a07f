package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/wifikeeper/internal/common"
	"github.com/dmitrijs2005/wifikeeper/internal/server/auth"
	"github.com/dmitrijs2005/wifikeeper/internal/server/models"
	"github.com/dmitrijs2005/wifikeeper/internal/server/services"
)

type contextKey string

const actorKey contextKey = "actor"

// actorFromContext returns the authenticated caller stored by authMiddleware.
func actorFromContext(ctx context.Context) (services.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(services.Actor)
	return actor, ok
}

// authMiddleware validates the bearer token and stores the caller identity in
// the request context. Requests without a valid token get 401.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(common.AuthorizationHeaderName)
		if !strings.HasPrefix(header, common.BearerPrefix) {
			respondError(w, common.ErrorUnauthorized)
			return
		}

		claims, err := auth.ParseToken(strings.TrimPrefix(header, common.BearerPrefix), s.jwtSecret)
		if err != nil {
			respondError(w, err)
			return
		}

		actor := services.Actor{UserID: claims.UserID, Role: claims.Role}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorKey, actor)))
	})
}

// adminMiddleware rejects non-admin callers with 403. Must run after
// authMiddleware.
func (s *Server) adminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromContext(r.Context())
		if !ok {
			respondError(w, common.ErrorUnauthorized)
			return
		}
		if actor.Role != models.RoleAdmin {
			respondError(w, common.ErrorForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
