package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/wifikeeper/internal/client/models"
	"github.com/dmitrijs2005/wifikeeper/internal/dbx"
)

// Persisted entry keys.
const (
	keyToken = "auth_token"
	keyUser  = "current_user"
)

var (
	// ErrIncompleteSession is returned when a write would break the
	// token-and-user-together invariant.
	ErrIncompleteSession = errors.New("session requires both token and user")

	// ErrPersist wraps storage failures. The in-memory session stays
	// authoritative for the rest of the process lifetime, so callers may
	// treat this as a warning.
	ErrPersist = errors.New("session persistence failed")
)

// Store is the single source of truth for "who is logged in".
type Store struct {
	mu      sync.RWMutex
	current Session
	db      *sql.DB
	subs    []chan Session
}

// NewStore binds a store to the local state database. Call Initialize before
// first use to load any persisted session.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) repo() Repository {
	return NewSQLiteRepository(s.db)
}

// Initialize loads the persisted (token, user) pair. The session becomes
// active only when both entries are present and the user record parses;
// anything less leaves the store inactive and wipes the partial remnant,
// so corrupt storage can never produce a half-authenticated state.
func (s *Store) Initialize(ctx context.Context) error {
	repo := s.repo()

	tokenRaw, err := repo.Get(ctx, keyToken)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	userRaw, err := repo.Get(ctx, keyUser)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}

	token := string(tokenRaw)
	var user *models.User
	if len(userRaw) > 0 {
		user = &models.User{}
		if err := json.Unmarshal(userRaw, user); err != nil {
			user = nil
		}
	}

	if token == "" || user == nil {
		// fail closed: discard whichever half survived
		if token != "" || len(userRaw) > 0 {
			_ = repo.Clear(ctx)
		}
		return nil
	}

	s.mu.Lock()
	s.current = Session{Token: token, User: user}
	s.mu.Unlock()
	s.notify()
	return nil
}

// Set replaces both session fields atomically and persists them in one
// transaction. A persistence failure is reported via ErrPersist but does not
// undo the in-memory update.
func (s *Store) Set(ctx context.Context, token string, user *models.User) error {
	if token == "" || user == nil {
		return ErrIncompleteSession
	}

	u := *user
	s.mu.Lock()
	s.current = Session{Token: token, User: &u}
	s.mu.Unlock()
	s.notify()

	userRaw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, keyUser, userRaw)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}

// Clear removes both fields from memory and storage.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.current = Session{}
	s.mu.Unlock()
	s.notify()

	if err := s.repo().Clear(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}

// Snapshot returns a consistent copy of the current session.
func (s *Store) Snapshot() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cur := s.current
	if cur.User != nil {
		u := *cur.User
		cur.User = &u
	}
	return cur
}

// Token returns the current bearer token, or "" when logged out.
// Satisfies api.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token
}

// IsAuthenticated reports whether a complete session is active.
func (s *Store) IsAuthenticated() bool {
	return s.Snapshot().IsAuthenticated()
}

// IsAdmin reports whether the active session has the admin role.
func (s *Store) IsAdmin() bool {
	return s.Snapshot().IsAdmin()
}

// Subscribe returns a channel that receives a coalesced snapshot after every
// mutation. A slow consumer only ever observes the latest state.
func (s *Store) Subscribe() <-chan Session {
	ch := make(chan Session, 1)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

func (s *Store) notify() {
	snap := s.Snapshot()
	s.mu.RLock()
	subs := s.subs
	s.mu.RUnlock()

	for _, ch := range subs {
		// replace any unconsumed snapshot with the fresh one
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}
