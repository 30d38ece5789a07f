package models

import (
	"errors"
	"fmt"
	"time"
)

// SecurityType is the WiFi authentication scheme encoded into the QR payload.
type SecurityType string

const (
	SecurityWPA  SecurityType = "WPA"
	SecurityWPA2 SecurityType = "WPA2"
	SecurityWEP  SecurityType = "WEP"
	SecurityNone SecurityType = "nopass"
)

// SecurityTypes lists every accepted security type, in display order.
var SecurityTypes = []SecurityType{SecurityWPA, SecurityWPA2, SecurityWEP, SecurityNone}

// MinPasswordLength applies to every secured network type.
const MinPasswordLength = 8

var (
	ErrSSIDRequired     = errors.New("ssid is required")
	ErrInvalidSecurity  = errors.New("invalid security type")
	ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
)

// IsValidSecurityType reports whether st names a known security type.
func IsValidSecurityType(st string) bool {
	switch SecurityType(st) {
	case SecurityWPA, SecurityWPA2, SecurityWEP, SecurityNone:
		return true
	default:
		return false
	}
}

// RequiredPasswordLength returns the minimum password length for the given
// security type: zero for open networks, MinPasswordLength otherwise.
func RequiredPasswordLength(st SecurityType) int {
	if st == SecurityNone {
		return 0
	}
	return MinPasswordLength
}

// WiFiCredential is a stored network with its server-generated QR payload.
// Password is write-mostly: it is sent on create and never returned by reads.
type WiFiCredential struct {
	ID           string
	OwnerUserID  string
	SSID         string
	Password     string
	SecurityType SecurityType
	Hidden       bool
	QRCodeData   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AdminCredential is a credential row from the admin listing, enriched with
// the owner's email for display. The email is denormalized, never persisted
// on the credential itself.
type AdminCredential struct {
	WiFiCredential
	OwnerEmail string
}

// CreateRequest carries the user-supplied fields for a new credential.
type CreateRequest struct {
	SSID         string
	Password     string
	SecurityType SecurityType
	Hidden       bool
}

// Validate applies the client-side form rules: SSID must be non-empty, the
// security type known, and the password at least RequiredPasswordLength
// characters. Open networks (nopass) accept an empty password.
func (r CreateRequest) Validate() error {
	if r.SSID == "" {
		return ErrSSIDRequired
	}
	if !IsValidSecurityType(string(r.SecurityType)) {
		return fmt.Errorf("%w: %q", ErrInvalidSecurity, r.SecurityType)
	}
	if len(r.Password) < RequiredPasswordLength(r.SecurityType) {
		return ErrPasswordTooShort
	}
	return nil
}
