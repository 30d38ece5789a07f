// Package api implements the typed HTTP surface of the WifiKeeper backend.
// It isolates the rest of the client from the backend's snake_case wire
// conventions and maps transport failures onto a small set of sentinel
// errors that always carry a human-readable message.
package api

import (
	"context"

	"github.com/dmitrijs2005/wifikeeper/internal/client/models"
)

// Client is the remote API surface consumed by the client services.
//
// All calls are blocking and honor context cancellation. Failures are
// reported through the returned error, never via panic; use errors.Is with
// the package sentinels to branch on the failure class.
type Client interface {
	// Login exchanges credentials for a token and the account identity.
	Login(ctx context.Context, email, password string) (string, *models.User, error)

	// Register creates an account; same response contract as Login.
	Register(ctx context.Context, email, password string) (string, *models.User, error)

	// CreateCredential stores a new WiFi credential and returns the persisted
	// record including the server-generated id and QR payload.
	CreateCredential(ctx context.Context, req models.CreateRequest) (*models.WiFiCredential, error)

	// ListCredentials returns the calling user's credentials.
	ListCredentials(ctx context.Context) ([]models.WiFiCredential, error)

	// GetCredential returns one credential by id.
	GetCredential(ctx context.Context, id string) (*models.WiFiCredential, error)

	// DeleteCredential removes a credential by id.
	DeleteCredential(ctx context.Context, id string) error

	// ListAllCredentials returns every credential with its owner's email.
	// Admin only; non-admin callers receive ErrForbidden.
	ListAllCredentials(ctx context.Context) ([]models.AdminCredential, error)
}
