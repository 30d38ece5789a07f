package api

import (
	"time"

	"github.com/dmitrijs2005/wifikeeper/internal/client/models"
)

// Wire DTOs. The backend speaks snake_case; everything leaving this package
// is a camelCase model. The mapping is exact and bidirectional on the
// creatable subset of fields.

type userDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type authRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponseDTO struct {
	Token string  `json:"token"`
	User  userDTO `json:"user"`
}

type createCredentialDTO struct {
	SSID         string `json:"ssid"`
	Password     string `json:"password"`
	SecurityType string `json:"security_type"`
	IsHidden     bool   `json:"is_hidden"`
}

type credentialDTO struct {
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

type errorDTO struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func (d userDTO) toModel() *models.User {
	return &models.User{
		ID:        d.ID,
		Email:     d.Email,
		Role:      models.Role(d.Role),
		CreatedAt: d.CreatedAt,
	}
}

func (d credentialDTO) toModel() models.WiFiCredential {
	return models.WiFiCredential{
		ID:           d.ID,
		OwnerUserID:  d.UserID,
		SSID:         d.SSID,
		SecurityType: models.SecurityType(d.SecurityType),
		Hidden:       d.IsHidden,
		QRCodeData:   d.QRCodeData,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (d credentialDTO) toAdminModel() models.AdminCredential {
	return models.AdminCredential{
		WiFiCredential: d.toModel(),
		OwnerEmail:     d.UserEmail,
	}
}

func toCreateDTO(req models.CreateRequest) createCredentialDTO {
	return createCredentialDTO{
		SSID:         req.SSID,
		Password:     req.Password,
		SecurityType: string(req.SecurityType),
		IsHidden:     req.Hidden,
	}
}
