// ABOUTME: Session lifecycle manager owning the authentication state machine
// ABOUTME: Restores, establishes, and clears the persisted login session

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mstore/storefront/internal/api"
)

// User-facing failure messages. These are what screens display; the
// underlying cause travels on the returned error.
const (
	msgRestoreFailed = "Failed to restore login session"
	msgLoginFailed   = "Login failed"
	msgUnexpected    = "An unexpected error occurred"
	msgLogoutFailed  = "Failed to logout"
)

var (
	// ErrEmptyCredentials is returned before any I/O when username or
	// password is empty after trimming.
	ErrEmptyCredentials = errors.New("username and password are required")

	// ErrBusy is returned when a session operation is already in flight.
	ErrBusy = errors.New("another session operation is in progress")

	// ErrLoginRejected is returned when the server rejects the credentials.
	ErrLoginRejected = errors.New("login rejected")
)

// Status is the session state machine position.
type Status int

const (
	StatusUnknown Status = iota
	StatusRestoring
	StatusLoggingIn
	StatusLoggingOut
	StatusAuthenticated
	StatusUnauthenticated
)

// String returns the status name for logs and error output.
func (s Status) String() string {
	switch s {
	case StatusUnknown:
		return "unknown"
	case StatusRestoring:
		return "restoring"
	case StatusLoggingIn:
		return "logging-in"
	case StatusLoggingOut:
		return "logging-out"
	case StatusAuthenticated:
		return "authenticated"
	case StatusUnauthenticated:
		return "unauthenticated"
	}
	return "invalid"
}

// Authenticator is the auth API surface the manager depends on.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*api.LoginResult, error)
}

// Snapshot is a copy of the session state for consumption by screens.
type Snapshot struct {
	Status        Status
	Authenticated bool
	Pending       bool
	Err           string
	User          *api.User
}

// Manager owns the in-memory session and its persisted mirror.
//
// Session-mutating operations are single-flight: a second Restore,
// Login, or Logout issued while one is in flight fails with ErrBusy
// and leaves state untouched.
type Manager struct {
	store Store
	auth  Authenticator
	log   zerolog.Logger

	op sync.Mutex // serializes session-mutating operations

	mu      sync.Mutex
	status  Status
	pending bool
	lastErr string
	user    *api.User
}

// NewManager creates a manager in the Unknown state.
func NewManager(store Store, auth Authenticator) *Manager {
	return &Manager{
		store:  store,
		auth:   auth,
		log:    zerolog.Nop(),
		status: StatusUnknown,
	}
}

// SetLogger routes manager events to the given logger.
func (m *Manager) SetLogger(l zerolog.Logger) {
	m.log = l
}

// Snapshot returns a copy of the current session state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{
		Status:        m.status,
		Authenticated: m.status == StatusAuthenticated,
		Pending:       m.pending,
		Err:           m.lastErr,
	}
	if m.user != nil {
		u := *m.user
		snap.User = &u
	}
	return snap
}

// Restore loads the persisted session, if any.
//
// An absent or undecodable session record is not a failure: the state
// becomes Unauthenticated with no error recorded. Only a store read
// failure surfaces an error message.
func (m *Manager) Restore() error {
	if !m.op.TryLock() {
		return ErrBusy
	}
	defer m.op.Unlock()

	m.begin(StatusRestoring)

	token, haveToken, err := m.store.Get(TokenKey)
	if err != nil {
		m.finish(StatusUnauthenticated, msgRestoreFailed, nil)
		return fmt.Errorf("restore session: %w", err)
	}
	userRaw, haveUser, err := m.store.Get(UserKey)
	if err != nil {
		m.finish(StatusUnauthenticated, msgRestoreFailed, nil)
		return fmt.Errorf("restore session: %w", err)
	}

	// Both-or-neither: a lone token or a lone user record (a crash
	// mid-login or mid-logout can leave either) is not a session.
	if !haveToken || !haveUser || token == "" {
		m.finish(StatusUnauthenticated, "", nil)
		return nil
	}

	var user api.User
	if err := json.Unmarshal([]byte(userRaw), &user); err != nil {
		m.log.Debug().Err(err).Msg("discarding undecodable session record")
		m.finish(StatusUnauthenticated, "", nil)
		return nil
	}

	m.finish(StatusAuthenticated, "", &user)
	m.log.Debug().Str("username", user.Username).Msg("session restored")
	return nil
}

// Login authenticates the user and persists the resulting session.
func (m *Manager) Login(ctx context.Context, username, password string) error {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return ErrEmptyCredentials
	}

	if !m.op.TryLock() {
		return ErrBusy
	}
	defer m.op.Unlock()

	m.begin(StatusLoggingIn)

	res, err := m.auth.Login(ctx, username, password)
	if err != nil {
		m.finish(StatusUnauthenticated, msgUnexpected, nil)
		return fmt.Errorf("login: %w", err)
	}

	if res.Token == "" || res.User == nil {
		msg := res.Error
		if msg == "" {
			msg = msgLoginFailed
		}
		m.finish(StatusUnauthenticated, msg, nil)
		return fmt.Errorf("%w: %s", ErrLoginRejected, msg)
	}

	userData, err := json.Marshal(res.User)
	if err != nil {
		m.finish(StatusUnauthenticated, msgUnexpected, nil)
		return fmt.Errorf("login: %w", err)
	}

	// Token first, then the user record. Restore requires both, so a
	// crash between the writes leaves a record Restore treats as absent.
	if err := m.store.Set(TokenKey, res.Token); err != nil {
		m.finish(StatusUnauthenticated, msgUnexpected, nil)
		return fmt.Errorf("login: persist token: %w", err)
	}
	if err := m.store.Set(UserKey, string(userData)); err != nil {
		m.finish(StatusUnauthenticated, msgUnexpected, nil)
		return fmt.Errorf("login: persist user: %w", err)
	}

	m.finish(StatusAuthenticated, "", res.User)
	m.log.Debug().Str("username", res.User.Username).Msg("login succeeded")
	return nil
}

// Logout clears the persisted and in-memory session.
//
// Logout is best-effort: both keys are always deleted and the
// in-memory session is always cleared, even when a deletion fails.
// A deletion failure surfaces as an error with the state already safe.
func (m *Manager) Logout() error {
	if !m.op.TryLock() {
		return ErrBusy
	}
	defer m.op.Unlock()

	m.begin(StatusLoggingOut)

	tokenErr := m.store.Delete(TokenKey)
	userErr := m.store.Delete(UserKey)

	if tokenErr != nil || userErr != nil {
		m.finish(StatusUnauthenticated, msgLogoutFailed, nil)
		m.log.Debug().AnErr("token", tokenErr).AnErr("user", userErr).Msg("logout cleanup failed")
		return fmt.Errorf("logout: %w", errors.Join(tokenErr, userErr))
	}

	m.finish(StatusUnauthenticated, "", nil)
	m.log.Debug().Msg("logged out")
	return nil
}

// begin enters a transitional state, clearing the previous error.
func (m *Manager) begin(s Status) {
	m.mu.Lock()
	m.status = s
	m.pending = true
	m.lastErr = ""
	m.mu.Unlock()
}

// finish enters a terminal state. Pending always clears here, on every
// exit path, so the UI can never be stuck on a loading indicator.
func (m *Manager) finish(s Status, errMsg string, user *api.User) {
	m.mu.Lock()
	m.status = s
	m.pending = false
	m.lastErr = errMsg
	m.user = user
	m.mu.Unlock()
}
