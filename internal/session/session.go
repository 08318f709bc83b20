// Package session tracks the authenticated admin derived from a stored
// bearer token. The token and the in-memory user are kept consistent as a
// pair: any failure to resolve the user clears both.
package session

import (
	"context"
	"sync"

	"github.com/authx-dev/authx/internal/authx"
)

// State is the session lifecycle state.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// TokenStore is the capability interface over wherever the bearer token
// lives: a browser cookie on the console path, the OS keyring for the CLI,
// memory in tests. It is a dumb container; expiry and validity are
// enforced entirely by the identity API.
type TokenStore interface {
	// Get returns the stored token and whether one is present.
	Get() (string, bool)
	// Set persists the token.
	Set(token string) error
	// Clear removes the stored token immediately.
	Clear() error
	// IsPresent reports token existence without fetching user data.
	IsPresent() bool
}

// UserFetcher resolves the current admin from a token. *authx.Client
// satisfies it.
type UserFetcher interface {
	Me(ctx context.Context) (*authx.AdminMe, error)
}

// Manager owns the session lifecycle:
//
//	uninitialized -> loading -> {authenticated, unauthenticated}
//
// Every refresh re-enters loading; there is no authenticated ->
// authenticated shortcut that skips the re-check.
type Manager struct {
	mu    sync.Mutex
	store TokenStore
	api   UserFetcher
	state State
	user  *authx.AdminMe
}

// NewManager creates a session manager in the uninitialized state.
func NewManager(store TokenStore, api UserFetcher) *Manager {
	return &Manager{
		store: store,
		api:   api,
		state: StateUninitialized,
	}
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// User returns the current admin, if the session is authenticated.
func (m *Manager) User() (*authx.AdminMe, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateAuthenticated || m.user == nil {
		return nil, false
	}
	return m.user, true
}

// Initialized reports whether the initial user fetch has completed.
func (m *Manager) Initialized() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state == StateAuthenticated || m.state == StateUnauthenticated
}

// Refresh re-derives the user from the stored token. On any failure
// (expired token, rejected token, transport failure) the token is cleared
// along with the user, so the pair never goes independently stale. The
// underlying error is returned so callers can tell a transport failure
// apart from a rejection.
func (m *Manager) Refresh(ctx context.Context) error {
	m.mu.Lock()
	m.state = StateLoading
	m.mu.Unlock()

	if !m.store.IsPresent() {
		m.setUnauthenticated()
		return nil
	}

	user, err := m.api.Me(ctx)
	if err != nil {
		_ = m.store.Clear()
		m.setUnauthenticated()
		return err
	}

	m.mu.Lock()
	m.user = user
	m.state = StateAuthenticated
	m.mu.Unlock()
	return nil
}

// Login stores a token already validated by the identity API and resolves
// the user behind it. Credential checking happened before this call; the
// token is taken at face value until the refresh says otherwise.
func (m *Manager) Login(ctx context.Context, token string) error {
	if err := m.store.Set(token); err != nil {
		return err
	}
	return m.Refresh(ctx)
}

// Logout clears the token and the in-memory user.
func (m *Manager) Logout() error {
	err := m.store.Clear()
	m.setUnauthenticated()
	return err
}

// RequireLogin implements the route guard decision for a protected route:
// it reports whether the caller must redirect to the login entry point.
// The guard never fires before the initial load completes, so a valid
// token gets its chance to be checked before any redirect.
func (m *Manager) RequireLogin() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state == StateUnauthenticated
}

func (m *Manager) setUnauthenticated() {
	m.mu.Lock()
	m.user = nil
	m.state = StateUnauthenticated
	m.mu.Unlock()
}
