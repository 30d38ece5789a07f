package models

import "time"

// WifiCredential is a stored network credential. EncryptedPassword holds the
// AES-GCM encrypted WiFi password, never the plaintext.
type WifiCredential struct {
	ID                string
	UserID            string
	SSID              string
	EncryptedPassword string
	SecurityType      string
	Hidden            bool
	QRCodeData        string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// OwnedWifiCredential augments a credential with its owner's email for the
// admin listing.
type OwnedWifiCredential struct {
	WifiCredential
	UserEmail string
}
