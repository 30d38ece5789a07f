package httpapi

import (
	"time"

	"github.com/dmitrijs2005/wifikeeper/internal/server/models"
)

// Wire DTOs. The API speaks snake_case JSON throughout.

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type authRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type statsResponse struct {
	TotalUsers       int   `json:"total_users"`
	TotalCredentials int64 `json:"total_credentials"`
}

type createCredentialRequest struct {
	SSID         string `json:"ssid"`
	Password     string `json:"password"`
	SecurityType string `json:"security_type"`
	IsHidden     bool   `json:"is_hidden"`
}

type credentialResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	SSID         string    `json:"ssid"`
	SecurityType string    `json:"security_type"`
	IsHidden     bool      `json:"is_hidden"`
	QRCodeData   string    `json:"qr_code_data"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	UserEmail    string    `json:"user_email,omitempty"` // admin listing only
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func toCredentialResponse(c *models.WifiCredential) credentialResponse {
	return credentialResponse{
		ID:           c.ID,
		UserID:       c.UserID,
		SSID:         c.SSID,
		SecurityType: c.SecurityType,
		IsHidden:     c.Hidden,
		QRCodeData:   c.QRCodeData,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func toOwnedCredentialResponse(c *models.OwnedWifiCredential) credentialResponse {
	resp := toCredentialResponse(&c.WifiCredential)
	resp.UserEmail = c.UserEmail
	return resp
}
