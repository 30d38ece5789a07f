// Package models defines the client-side domain types: the authenticated
// user and the WiFi credential with its QR payload.
package models

import "time"

// Role is the authorization role assigned to a user account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is the account identity returned by the backend on login/register
// and persisted alongside the auth token between runs.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
