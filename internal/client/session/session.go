// Package session holds the client's authenticated identity: the bearer
// token plus the user record, kept in memory and persisted to a local SQLite
// database so a session survives restarts.
//
// Invariant: token and user are both present or both absent. Every read is a
// consistent snapshot and every write replaces the pair atomically, so the
// store is safe to consult from concurrent guard evaluations.
package session

import "github.com/dmitrijs2005/wifikeeper/internal/client/models"

// Session is an immutable snapshot of the authentication state.
type Session struct {
	Token string
	User  *models.User
}

// IsAuthenticated reports whether both halves of the session are present.
func (s Session) IsAuthenticated() bool {
	return s.Token != "" && s.User != nil
}

// IsAdmin reports whether the session belongs to an admin account.
func (s Session) IsAdmin() bool {
	return s.IsAuthenticated() && s.User.Role == models.RoleAdmin
}
