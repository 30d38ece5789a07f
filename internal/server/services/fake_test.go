package services

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/dmitrijs2005/wifikeeper/internal/common"
	"github.com/dmitrijs2005/wifikeeper/internal/dbx"
	"github.com/dmitrijs2005/wifikeeper/internal/server/models"
	"github.com/dmitrijs2005/wifikeeper/internal/server/repositories/credentials"
	"github.com/dmitrijs2005/wifikeeper/internal/server/repositories/users"
)

// fakeRepoManager vends in-memory repositories so the services can be tested
// without a database.
type fakeRepoManager struct {
	users *fakeUserRepo
	creds *fakeCredentialRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		users: &fakeUserRepo{byEmail: map[string]*models.User{}},
		creds: &fakeCredentialRepo{byID: map[string]*models.WifiCredential{}},
	}
}

func (m *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository                  { return m.users }
func (m *fakeRepoManager) Credentials(db dbx.DBTX) credentials.Repository     { return m.creds }

type fakeUserRepo struct {
	byEmail map[string]*models.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if _, exists := r.byEmail[user.Email]; exists {
		return nil, common.ErrorEmailTaken
	}
	user.CreatedAt = time.Now()
	r.byEmail[user.Email] = user
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	for _, user := range r.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *fakeUserRepo) ListAll(ctx context.Context) ([]models.User, error) {
	var result []models.User
	for _, user := range r.byEmail {
		result = append(result, *user)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

type fakeCredentialRepo struct {
	byID map[string]*models.WifiCredential
	seq  int
}

func (r *fakeCredentialRepo) Create(ctx context.Context, cred *models.WifiCredential) (*models.WifiCredential, error) {
	r.seq++
	cred.CreatedAt = time.Now().Add(time.Duration(r.seq) * time.Millisecond)
	cred.UpdatedAt = cred.CreatedAt
	r.byID[cred.ID] = cred
	return cred, nil
}

func (r *fakeCredentialRepo) ListByUser(ctx context.Context, userID string) ([]models.WifiCredential, error) {
	var result []models.WifiCredential
	for _, c := range r.byID {
		if c.UserID == userID {
			result = append(result, *c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (r *fakeCredentialRepo) GetByID(ctx context.Context, id string) (*models.WifiCredential, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copy := *c
	return &copy, nil
}

func (r *fakeCredentialRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeCredentialRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

func (r *fakeCredentialRepo) ListAllWithOwner(ctx context.Context) ([]models.OwnedWifiCredential, error) {
	var result []models.OwnedWifiCredential
	for _, c := range r.byID {
		result = append(result, models.OwnedWifiCredential{
			WifiCredential: *c,
			UserEmail:      c.UserID + "@example.com",
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}
