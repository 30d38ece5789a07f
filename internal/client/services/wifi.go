package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/wifikeeper/internal/client/api"
	"github.com/dmitrijs2005/wifikeeper/internal/client/models"
)

// WifiService exposes the credential use cases to the CLI.
type WifiService struct {
	client api.Client
}

func NewWifiService(client api.Client) *WifiService {
	return &WifiService{client: client}
}

// Create validates the request locally before sending it, so obviously
// broken input never reaches the backend.
func (s *WifiService) Create(ctx context.Context, req models.CreateRequest) (*models.WiFiCredential, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.client.CreateCredential(ctx, req)
}

// ListMine returns the current user's credentials.
func (s *WifiService) ListMine(ctx context.Context) ([]models.WiFiCredential, error) {
	return s.client.ListCredentials(ctx)
}

// GetByID returns a single credential owned by the current user.
func (s *WifiService) GetByID(ctx context.Context, id string) (*models.WiFiCredential, error) {
	return s.client.GetCredential(ctx, id)
}

// Delete removes a credential owned by the current user.
func (s *WifiService) Delete(ctx context.Context, id string) error {
	return s.client.DeleteCredential(ctx, id)
}

// ListAll returns every credential with owner emails. Admin only.
func (s *WifiService) ListAll(ctx context.Context) ([]models.AdminCredential, error) {
	return s.client.ListAllCredentials(ctx)
}

// ResolveImageURL turns a stored QR payload into a displayable data URL.
// Payloads that already carry a data URL prefix pass through unchanged,
// anything else is treated as raw base64 image data.
func ResolveImageURL(payload string) string {
	if strings.HasPrefix(payload, "data:") {
		return payload
	}
	return "data:image/png;base64," + payload
}
