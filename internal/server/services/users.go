// Package services implements the server-side use cases on top of the
// repositories.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/wifikeeper/internal/common"
	"github.com/dmitrijs2005/wifikeeper/internal/server/auth"
	"github.com/dmitrijs2005/wifikeeper/internal/server/config"
	"github.com/dmitrijs2005/wifikeeper/internal/server/models"
	"github.com/dmitrijs2005/wifikeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

func validateCredentials(email, password string) error {
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: valid email is required", common.ErrorValidation)
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrorValidation, minPasswordLength)
	}
	return nil
}

// Register creates an account and returns a ready-to-use access token, so a
// fresh registration is also a login.
func (s *UserService) Register(ctx context.Context, email, password string) (string, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateCredentials(email, password); err != nil {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}

	repo := s.repomanager.Users(s.db)

	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorEmailTaken) {
			return "", nil, common.ErrorEmailTaken
		}
		return "", nil, fmt.Errorf("error creating user: %w", err)
	}

	return s.issueToken(user)
}

// Login verifies the credentials and returns an access token. Unknown emails
// and wrong passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, common.ErrorUnauthorized
		}
		return "", nil, common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, common.ErrorUnauthorized
	}

	return s.issueToken(user)
}

func (s *UserService) issueToken(user *models.User) (string, *models.User, error) {
	token, err := auth.GenerateToken(user.ID, user.Email, user.Role, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", nil, fmt.Errorf("error generating token: %w", err)
	}
	return token, user, nil
}

// ListAll returns every registered account. Admin only.
func (s *UserService) ListAll(ctx context.Context, actor Actor) ([]models.User, error) {
	if !actor.isAdmin() {
		return nil, common.ErrorForbidden
	}
	return s.repomanager.Users(s.db).ListAll(ctx)
}
