package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/wifikeeper/internal/common"
	"github.com/dmitrijs2005/wifikeeper/internal/cryptox"
	"github.com/dmitrijs2005/wifikeeper/internal/server/config"
	"github.com/dmitrijs2005/wifikeeper/internal/server/models"
	"github.com/dmitrijs2005/wifikeeper/internal/server/qrpayload"
	"github.com/dmitrijs2005/wifikeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// Actor identifies the authenticated caller of a service method.
type Actor struct {
	UserID string
	Role   string
}

func (a Actor) isAdmin() bool {
	return a.Role == models.RoleAdmin
}

// Valid WiFi security types on the wire.
var securityTypes = map[string]struct{}{
	"WPA": {}, "WPA2": {}, "WEP": {}, "nopass": {},
}

const securityNone = "nopass"

// CreateCredentialRequest carries the validated input for Create.
type CreateCredentialRequest struct {
	SSID         string
	Password     string
	SecurityType string
	Hidden       bool
}

func (r *CreateCredentialRequest) validate() error {
	if r.SSID == "" {
		return fmt.Errorf("%w: ssid is required", common.ErrorValidation)
	}
	if _, ok := securityTypes[r.SecurityType]; !ok {
		return fmt.Errorf("%w: unknown security type %q", common.ErrorValidation, r.SecurityType)
	}
	if r.SecurityType != securityNone && len(r.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrorValidation, minPasswordLength)
	}
	return nil
}

type CredentialService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	encryptionKey []byte
}

func NewCredentialService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *CredentialService {
	return &CredentialService{
		db:            db,
		repomanager:   m,
		encryptionKey: []byte(cfg.EncryptionKey),
	}
}

// Create validates the request, encrypts the WiFi password and stores the
// credential together with its QR payload.
func (s *CredentialService) Create(ctx context.Context, actor Actor, req CreateCredentialRequest) (*models.WifiCredential, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	password := req.Password
	if req.SecurityType == securityNone {
		password = ""
	}

	encrypted, err := cryptox.EncryptString(password, s.encryptionKey)
	if err != nil {
		return nil, fmt.Errorf("error encrypting password: %w", err)
	}

	cred := &models.WifiCredential{
		ID:                uuid.NewString(),
		UserID:            actor.UserID,
		SSID:              req.SSID,
		EncryptedPassword: encrypted,
		SecurityType:      req.SecurityType,
		Hidden:            req.Hidden,
		QRCodeData:        qrpayload.Encode(req.SSID, password, req.SecurityType, req.Hidden),
	}

	repo := s.repomanager.Credentials(s.db)

	cred, err = repo.Create(ctx, cred)
	if err != nil {
		return nil, fmt.Errorf("error creating credential: %w", err)
	}

	return cred, nil
}

// ListMine returns the actor's own credentials.
func (s *CredentialService) ListMine(ctx context.Context, actor Actor) ([]models.WifiCredential, error) {
	return s.repomanager.Credentials(s.db).ListByUser(ctx, actor.UserID)
}

// GetByID returns one credential. Someone else's credential yields
// ErrorForbidden, a missing one ErrorNotFound; the two are intentionally
// distinguishable.
func (s *CredentialService) GetByID(ctx context.Context, actor Actor, id string) (*models.WifiCredential, error) {
	cred, err := s.repomanager.Credentials(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if cred.UserID != actor.UserID && !actor.isAdmin() {
		return nil, common.ErrorForbidden
	}

	return cred, nil
}

// Delete removes a credential with the same access rules as GetByID.
func (s *CredentialService) Delete(ctx context.Context, actor Actor, id string) error {
	repo := s.repomanager.Credentials(s.db)

	cred, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if cred.UserID != actor.UserID && !actor.isAdmin() {
		return common.ErrorForbidden
	}

	return repo.Delete(ctx, id)
}

// ListAll returns every credential with owner emails. Admin only.
func (s *CredentialService) ListAll(ctx context.Context, actor Actor) ([]models.OwnedWifiCredential, error) {
	if !actor.isAdmin() {
		return nil, common.ErrorForbidden
	}
	return s.repomanager.Credentials(s.db).ListAllWithOwner(ctx)
}

// CountAll returns the number of stored credentials across all users.
// Admin only.
func (s *CredentialService) CountAll(ctx context.Context, actor Actor) (int64, error) {
	if !actor.isAdmin() {
		return 0, common.ErrorForbidden
	}
	return s.repomanager.Credentials(s.db).Count(ctx)
}
