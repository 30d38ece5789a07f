package credentials

import (
	"context"

	"github.com/dmitrijs2005/wifikeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, cred *models.WifiCredential) (*models.WifiCredential, error)
	ListByUser(ctx context.Context, userID string) ([]models.WifiCredential, error)
	GetByID(ctx context.Context, id string) (*models.WifiCredential, error)
	Delete(ctx context.Context, id string) error
	ListAllWithOwner(ctx context.Context) ([]models.OwnedWifiCredential, error)
	Count(ctx context.Context) (int64, error)
}
