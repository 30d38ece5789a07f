package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/wifikeeper/internal/common"
	"github.com/dmitrijs2005/wifikeeper/internal/server/auth"
	"github.com/dmitrijs2005/wifikeeper/internal/server/config"
	"github.com/dmitrijs2005/wifikeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "test-secret"
	cfg.TokenValidityDuration = time.Hour
	return cfg
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(nil, newFakeRepoManager(), testConfig())

	token, user, err := svc.Register(ctx, "User@Example.com", "pass12345")
	require.NoError(t, err)

	// email normalized, role defaulted
	assert.Equal(t, "user@example.com", user.Email)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEmpty(t, user.ID)

	// stored hash verifies against the password
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass12345")))

	// the token is immediately usable
	claims, err := auth.ParseToken(token, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, models.RoleUser, claims.Role)
}

func TestUserService_RegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(nil, newFakeRepoManager(), testConfig())

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "pass12345"},
		{"email without at sign", "not-an-email", "pass12345"},
		{"short password", "user@example.com", "short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Register(ctx, tt.email, tt.password)
			require.ErrorIs(t, err, common.ErrorValidation)
		})
	}
}

func TestUserService_RegisterEmailTaken(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(nil, newFakeRepoManager(), testConfig())

	_, _, err := svc.Register(ctx, "user@example.com", "pass12345")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "user@example.com", "different123")
	require.ErrorIs(t, err, common.ErrorEmailTaken)
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(nil, newFakeRepoManager(), testConfig())

	_, registered, err := svc.Register(ctx, "user@example.com", "pass12345")
	require.NoError(t, err)

	token, user, err := svc.Login(ctx, "user@example.com", "pass12345")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	claims, err := auth.ParseToken(token, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.UserID)
}

func TestUserService_LoginFailures(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(nil, newFakeRepoManager(), testConfig())

	_, _, err := svc.Register(ctx, "user@example.com", "pass12345")
	require.NoError(t, err)

	// wrong password and unknown email look the same to the caller
	_, _, err = svc.Login(ctx, "user@example.com", "wrong-password")
	require.ErrorIs(t, err, common.ErrorUnauthorized)

	_, _, err = svc.Login(ctx, "nobody@example.com", "pass12345")
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestUserService_ListAll(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(nil, newFakeRepoManager(), testConfig())

	_, _, err := svc.Register(ctx, "first@example.com", "pass12345")
	require.NoError(t, err)
	_, _, err = svc.Register(ctx, "second@example.com", "pass12345")
	require.NoError(t, err)

	_, err = svc.ListAll(ctx, alice)
	require.ErrorIs(t, err, common.ErrorForbidden)

	all, err := svc.ListAll(ctx, root)
	require.NoError(t, err)
	require.Len(t, all, 2)
	emails := []string{all[0].Email, all[1].Email}
	assert.Contains(t, emails, "first@example.com")
	assert.Contains(t, emails, "second@example.com")
}
