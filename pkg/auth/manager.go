// Package auth owns the client's login session: the in-memory
// user/token state, its persistence across the storage areas, and the
// conversion of backend failures into user-visible notifications.
package auth

import (
	"context"
	"errors"
	"sync"

	"github.com/edu2job/edu2job/pkg/api"
	"github.com/edu2job/edu2job/pkg/logging"
	"github.com/edu2job/edu2job/pkg/session"
)

// Manager is the session state machine. One instance lives for the
// whole process: Bootstrap once at startup, then login/logout/refresh
// as the user drives the UI.
//
// Login and password failures never escape as errors; they become a
// false return plus a notification. LoginWithGoogle is the deliberate
// exception: its caller must distinguish a failed exchange from a
// declined consent, so it returns the error.
type Manager struct {
	api      *api.Client
	store    *session.Store
	notifier Notifier
	logger   logging.Logger

	mu         sync.Mutex
	user       *session.User
	token      string
	rememberMe bool
	loading    bool
}

// NewManager wires the session manager. notifier and logger may be
// nil.
func NewManager(client *api.Client, store *session.Store, notifier Notifier, logger logging.Logger) *Manager {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	if logger == nil {
		logger = logging.Nop{}
	}
	return &Manager{
		api:      client,
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// Bootstrap hydrates the session from local storage. It runs once at
// process start and always finishes with the loading flag down, even
// when the stored state is corrupt, so the UI can never hang on boot.
func (m *Manager) Bootstrap(ctx context.Context) {
	m.setLoading(true)
	defer m.setLoading(false)

	sess, rememberMe, err := m.store.Read(ctx)
	if err != nil {
		m.logger.Warn("failed to read persisted session", "error", err)
		return
	}
	if sess == nil {
		m.logger.Debug("no persisted session")
		return
	}

	m.mu.Lock()
	m.user = sess.User
	m.token = sess.Token
	m.rememberMe = rememberMe
	m.mu.Unlock()

	m.logger.Info("session restored", "email", sess.User.Email, "remember_me", rememberMe)
}

// Login authenticates with email and password. It reports success as
// a plain bool; every failure path has already notified the user by
// the time it returns.
func (m *Manager) Login(ctx context.Context, email, password string, rememberMe bool) bool {
	m.setLoading(true)
	defer m.setLoading(false)

	resp, err := m.api.Login(ctx, email, password)
	if err != nil {
		m.notifyLoginFailure(err)
		return false
	}

	user := normalizeUser(resp.User, session.ProviderEmail)
	m.adopt(ctx, user, resp.Tokens.Access, rememberMe)
	m.notifier.Notify(SeveritySuccess, "Login successful")
	return true
}

func (m *Manager) notifyLoginFailure(err error) {
	var apiErr *api.Error
	switch {
	case errors.As(err, &apiErr):
		detail := apiErr.Detail
		if detail == "" {
			detail = "Invalid email or password"
		}
		m.notifier.Notify(SeverityError, detail)
	case errors.Is(err, api.ErrMalformedAuthResponse):
		m.notifier.Notify(SeverityError, "Login failed: no user data received")
	default:
		m.notifier.Notify(SeverityError, "Login failed. Please try again.")
	}
	m.logger.Warn("login failed", "error", err)
}

// LoginWithGoogle exchanges a Google access token for a backend
// session. Google sessions are always persisted durably, regardless
// of any earlier remember-me choice.
func (m *Manager) LoginWithGoogle(ctx context.Context, accessToken string) (*session.User, error) {
	m.setLoading(true)
	defer m.setLoading(false)

	resp, err := m.api.LoginWithGoogle(ctx, accessToken)
	if err != nil {
		m.notifier.Notify(SeverityError, "Google login failed. Please try again.")
		m.logger.Warn("google login failed", "error", err)
		return nil, err
	}

	user := normalizeUser(resp.User, session.ProviderGoogle)
	m.adopt(ctx, user, resp.Tokens.Access, true)
	m.notifier.Notify(SeveritySuccess, "Google login successful")
	return user, nil
}

// Register creates an account and logs straight into it, matching the
// backend's register-then-issue-tokens behavior.
func (m *Manager) Register(ctx context.Context, name, email, password string) bool {
	m.setLoading(true)
	defer m.setLoading(false)

	resp, err := m.api.Register(ctx, name, email, password)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Detail != "" {
			m.notifier.Notify(SeverityError, apiErr.Detail)
		} else {
			m.notifier.Notify(SeverityError, "Registration failed. Please try again.")
		}
		m.logger.Warn("registration failed", "error", err)
		return false
	}

	user := normalizeUser(resp.User, session.ProviderEmail)
	m.adopt(ctx, user, resp.Tokens.Access, false)
	m.notifier.Notify(SeveritySuccess, "Account created")
	return true
}

// adopt commits a fresh session to storage and memory.
func (m *Manager) adopt(ctx context.Context, user *session.User, token string, rememberMe bool) {
	sess := &session.Session{User: user, Token: token}
	if err := m.store.Write(ctx, sess, rememberMe); err != nil {
		// Losing persistence degrades restart continuity, not this
		// session; keep going.
		m.logger.Warn("failed to persist session", "error", err)
	}

	m.mu.Lock()
	m.user = user
	m.token = token
	m.rememberMe = rememberMe
	m.mu.Unlock()

	m.logger.Info("logged in", "email", user.Email, "provider", user.Provider, "remember_me", rememberMe)
}

// RefreshUserData re-pulls the authoritative user record. It is a
// best-effort background sync: failures stay silent apart from a
// debug log, the bearer token is never touched, and the result is
// dropped if a logout raced the request.
func (m *Manager) RefreshUserData(ctx context.Context) {
	m.mu.Lock()
	token := m.token
	user := m.user
	m.mu.Unlock()

	if token == "" || user == nil {
		return
	}

	profile, err := m.api.Profile(ctx, token)
	if err != nil {
		m.logger.Debug("user data refresh failed", "error", err)
		return
	}
	if profile.User == nil {
		return
	}

	m.mu.Lock()
	if m.token != token || m.user == nil {
		// Logged out (or re-logged-in) while the request was in
		// flight; the response belongs to a dead session.
		m.mu.Unlock()
		return
	}
	merged := mergeUser(m.user, profile.User)
	m.user = merged
	rememberMe := m.rememberMe
	m.mu.Unlock()

	if err := m.store.Write(ctx, &session.Session{User: merged, Token: token}, rememberMe); err != nil {
		m.logger.Debug("failed to persist refreshed user", "error", err)
	}
}

// Logout clears the session everywhere. Safe to call when already
// logged out.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	wasAuthenticated := m.token != ""
	m.user = nil
	m.token = ""
	m.rememberMe = false
	m.mu.Unlock()

	if err := m.store.Clear(ctx); err != nil {
		m.logger.Warn("failed to clear persisted session", "error", err)
	}

	if wasAuthenticated {
		m.notifier.Notify(SeverityInfo, "Logged out successfully")
		m.logger.Info("logged out")
	}
}

// User returns a copy of the current user, or nil when anonymous.
func (m *Manager) User() *session.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	user := *m.user
	return &user
}

// Token returns the current bearer token, empty when anonymous.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// IsAuthenticated reports whether a session is active.
func (m *Manager) IsAuthenticated() bool {
	return m.Token() != ""
}

// RememberMe reports the policy of the current session.
func (m *Manager) RememberMe() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rememberMe
}

// IsLoading reports whether bootstrap or an auth call is in flight.
func (m *Manager) IsLoading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

func (m *Manager) setLoading(v bool) {
	m.mu.Lock()
	m.loading = v
	m.mu.Unlock()
}
