package session

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/dmitrijs2005/wifikeeper/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser(role models.Role) *models.User {
	return &models.User{ID: "u1", Email: "user@example.com", Role: role}
}

func TestStore_InitializeEmpty(t *testing.T) {
	store := NewStore(openTestDB(t))

	require.NoError(t, store.Initialize(context.Background()))

	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.Token())
	assert.Nil(t, store.Snapshot().User)
}

func TestStore_SetRequiresCompletePair(t *testing.T) {
	ctx := context.Background()
	store := NewStore(openTestDB(t))

	err := store.Set(ctx, "", testUser(models.RoleUser))
	require.ErrorIs(t, err, ErrIncompleteSession)

	err = store.Set(ctx, "token", nil)
	require.ErrorIs(t, err, ErrIncompleteSession)

	assert.False(t, store.IsAuthenticated())
}

func TestStore_SetAndSnapshot(t *testing.T) {
	ctx := context.Background()
	store := NewStore(openTestDB(t))

	require.NoError(t, store.Set(ctx, "token1", testUser(models.RoleUser)))

	assert.True(t, store.IsAuthenticated())
	assert.False(t, store.IsAdmin())
	assert.Equal(t, "token1", store.Token())

	snap := store.Snapshot()
	require.NotNil(t, snap.User)
	assert.Equal(t, "user@example.com", snap.User.Email)

	// snapshot is a copy, mutating it does not affect the store
	snap.User.Email = "changed@example.com"
	assert.Equal(t, "user@example.com", store.Snapshot().User.Email)
}

func TestStore_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	store := NewStore(db)

	require.NoError(t, store.Set(ctx, "token1", testUser(models.RoleUser)))
	require.NoError(t, store.Set(ctx, "token2", &models.User{ID: "u2", Email: "second@example.com", Role: models.RoleAdmin}))

	assert.Equal(t, "token2", store.Token())
	assert.Equal(t, "second@example.com", store.Snapshot().User.Email)
	assert.True(t, store.IsAdmin())

	// the replacement survives a restart
	restarted := NewStore(db)
	require.NoError(t, restarted.Initialize(ctx))
	assert.Equal(t, "token2", restarted.Token())
	assert.Equal(t, "u2", restarted.Snapshot().User.ID)
}

func TestStore_InitializeRestoresPersistedSession(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	require.NoError(t, NewStore(db).Set(ctx, "token1", testUser(models.RoleAdmin)))

	store := NewStore(db)
	require.NoError(t, store.Initialize(ctx))

	assert.True(t, store.IsAuthenticated())
	assert.True(t, store.IsAdmin())
	assert.Equal(t, "token1", store.Token())
}

func TestStore_InitializeFailsClosedOnPartialState(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewSQLiteRepository(db)

	// token present, user missing
	require.NoError(t, repo.Set(ctx, keyToken, []byte("orphan")))

	store := NewStore(db)
	require.NoError(t, store.Initialize(ctx))

	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.Token())

	// the remnant was wiped
	value, err := repo.Get(ctx, keyToken)
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestStore_InitializeFailsClosedOnCorruptUser(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewSQLiteRepository(db)

	require.NoError(t, repo.Set(ctx, keyToken, []byte("token1")))
	require.NoError(t, repo.Set(ctx, keyUser, []byte("{not json")))

	store := NewStore(db)
	require.NoError(t, store.Initialize(ctx))

	assert.False(t, store.IsAuthenticated())

	value, err := repo.Get(ctx, keyToken)
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestStore_ClearRemovesMemoryAndStorage(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	store := NewStore(db)

	require.NoError(t, store.Set(ctx, "token1", testUser(models.RoleUser)))
	require.NoError(t, store.Clear(ctx))

	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.Token())

	restarted := NewStore(db)
	require.NoError(t, restarted.Initialize(ctx))
	assert.False(t, restarted.IsAuthenticated())
}

func TestStore_PersistsUserAsJSON(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	require.NoError(t, NewStore(db).Set(ctx, "token1", testUser(models.RoleUser)))

	raw, err := NewSQLiteRepository(db).Get(ctx, keyUser)
	require.NoError(t, err)

	var user models.User
	require.NoError(t, json.Unmarshal(raw, &user))
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, models.RoleUser, user.Role)
}

func TestStore_SubscribeCoalesces(t *testing.T) {
	ctx := context.Background()
	store := NewStore(openTestDB(t))

	ch := store.Subscribe()

	// two writes without a read in between, slow consumer sees only the latest
	require.NoError(t, store.Set(ctx, "token1", testUser(models.RoleUser)))
	require.NoError(t, store.Set(ctx, "token2", testUser(models.RoleAdmin)))

	snap := <-ch
	assert.Equal(t, "token2", snap.Token)
	assert.True(t, snap.IsAdmin())

	require.NoError(t, store.Clear(ctx))
	snap = <-ch
	assert.False(t, snap.IsAuthenticated())
}
