package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edu2job/edu2job/pkg/api"
	"github.com/edu2job/edu2job/pkg/kvs"
	"github.com/edu2job/edu2job/pkg/session"
)

// recordingNotifier captures notifications for assertions.
type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (r *recordingNotifier) Notify(severity Severity, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, string(severity)+": "+message)
}

func (r *recordingNotifier) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.messages) == 0 {
		return ""
	}
	return r.messages[len(r.messages)-1]
}

func (r *recordingNotifier) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.messages)
}

type testEnv struct {
	manager  *Manager
	store    *session.Store
	notifier *recordingNotifier
}

func newTestEnv(t *testing.T, handler http.Handler) *testEnv {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	durable := kvs.NewMemoryStore()
	ephemeral := kvs.NewMemoryStore()
	t.Cleanup(func() {
		_ = durable.Close()
		_ = ephemeral.Close()
	})

	store := session.NewStore(durable, ephemeral)
	notifier := &recordingNotifier{}
	manager := NewManager(api.NewClient(srv.URL, nil), store, notifier, nil)

	return &testEnv{manager: manager, store: store, notifier: notifier}
}

func authOKHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"user":   map[string]interface{}{"id": 1, "email": "a@b.com", "role": "student"},
			"tokens": map[string]string{"access": "tok123"},
		})
	})
}

func TestManager_LoginSuccess(t *testing.T) {
	env := newTestEnv(t, authOKHandler(t))
	ctx := context.Background()

	ok := env.manager.Login(ctx, "a@b.com", "x", true)
	require.True(t, ok)

	user := env.manager.User()
	require.NotNil(t, user)
	assert.Equal(t, "a@b.com", user.Email)
	assert.Equal(t, "a", user.Name, "display name derives from the email local-part")
	assert.Equal(t, session.RoleStudent, user.Role)
	assert.Equal(t, session.ProviderEmail, user.Provider)
	assert.Equal(t, "tok123", env.manager.Token())
	assert.True(t, env.manager.RememberMe())
	assert.False(t, env.manager.IsLoading())
	assert.Equal(t, "success: Login successful", env.notifier.last())

	// The durable area reconstructs an equivalent session.
	persisted, rememberMe, err := env.store.Read(ctx)
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.True(t, rememberMe)
	assert.Equal(t, "tok123", persisted.Token)
	assert.Equal(t, user, persisted.User)
}

func TestManager_LoginRejected(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid email or password"})
	}))
	ctx := context.Background()

	ok := env.manager.Login(ctx, "a@b.com", "wrong", false)
	assert.False(t, ok)
	assert.Nil(t, env.manager.User())
	assert.Empty(t, env.manager.Token())
	assert.Equal(t, "error: Invalid email or password", env.notifier.last())

	persisted, _, err := env.store.Read(ctx)
	require.NoError(t, err)
	assert.Nil(t, persisted, "a failed login must not persist anything")
}

func TestManager_LoginTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	durable := kvs.NewMemoryStore()
	ephemeral := kvs.NewMemoryStore()
	defer durable.Close()
	defer ephemeral.Close()

	notifier := &recordingNotifier{}
	manager := NewManager(api.NewClient(srv.URL, nil), session.NewStore(durable, ephemeral), notifier, nil)

	ok := manager.Login(context.Background(), "a@b.com", "x", false)
	assert.False(t, ok, "transport failure converts to a false return, never a panic or error")
	assert.Equal(t, "error: Login failed. Please try again.", notifier.last())
	assert.False(t, manager.IsLoading())
}

func TestManager_LoginWithGoogleAlwaysRemembered(t *testing.T) {
	env := newTestEnv(t, authOKHandler(t))
	ctx := context.Background()

	user, err := env.manager.LoginWithGoogle(ctx, "google-access-token")
	require.NoError(t, err)
	assert.Equal(t, session.ProviderGoogle, user.Provider)

	_, rememberMe, err := env.store.Read(ctx)
	require.NoError(t, err)
	assert.True(t, rememberMe, "Google sessions are always persisted durably")
}

func TestManager_LoginWithGoogleFailureReturnsError(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := env.manager.LoginWithGoogle(context.Background(), "bad-token")
	require.Error(t, err, "unlike password login, the Google path signals failure by error")
	assert.True(t, api.IsUnauthorized(err))
	assert.Equal(t, "error: Google login failed. Please try again.", env.notifier.last())
}

func TestManager_BootstrapEmpty(t *testing.T) {
	env := newTestEnv(t, authOKHandler(t))

	env.manager.Bootstrap(context.Background())

	assert.Nil(t, env.manager.User())
	assert.Empty(t, env.manager.Token())
	assert.False(t, env.manager.IsLoading(), "bootstrap must always land with loading=false")
}

func TestManager_BootstrapRestoresSession(t *testing.T) {
	env := newTestEnv(t, authOKHandler(t))
	ctx := context.Background()

	sess := &session.Session{
		User:  &session.User{ID: 1, Email: "a@b.com", Name: "a", Role: session.RoleStudent},
		Token: "tok123",
	}
	require.NoError(t, env.store.Write(ctx, sess, true))

	env.manager.Bootstrap(ctx)

	assert.Equal(t, "tok123", env.manager.Token())
	require.NotNil(t, env.manager.User())
	assert.Equal(t, "a@b.com", env.manager.User().Email)
	assert.True(t, env.manager.RememberMe())
	assert.False(t, env.manager.IsLoading())
}

func TestManager_BootstrapCorruptStorage(t *testing.T) {
	durable := kvs.NewMemoryStore()
	ephemeral := kvs.NewMemoryStore()
	defer durable.Close()
	defer ephemeral.Close()
	ctx := context.Background()

	require.NoError(t, durable.Set(ctx, "session:remember_me", []byte("true"), 0))
	require.NoError(t, durable.Set(ctx, "session:token", []byte("tok"), 0))
	require.NoError(t, durable.Set(ctx, "session:user", []byte("{truncated"), 0))

	manager := NewManager(api.NewClient("http://127.0.0.1:0", nil), session.NewStore(durable, ephemeral), nil, nil)
	manager.Bootstrap(ctx)

	assert.Nil(t, manager.User())
	assert.Empty(t, manager.Token())
	assert.False(t, manager.IsLoading())
}

func TestManager_RefreshUserData(t *testing.T) {
	var profileCalls int
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login/":
			authOKHandler(t).ServeHTTP(w, r)
		case "/profile/":
			profileCalls++
			require.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"user": map[string]interface{}{
					"id": 1, "email": "a@b.com", "role": "student",
					"is_flagged": true, "flag_reason": "abuse",
				},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	ctx := context.Background()

	require.True(t, env.manager.Login(ctx, "a@b.com", "x", true))

	env.manager.RefreshUserData(ctx)
	require.Equal(t, 1, profileCalls)

	user := env.manager.User()
	require.NotNil(t, user)
	assert.True(t, user.IsFlagged)
	assert.Equal(t, "abuse", user.FlagReason)
	assert.Equal(t, "tok123", env.manager.Token(), "refresh must never alter the bearer token")

	// The merge is persisted under the established policy.
	persisted, rememberMe, err := env.store.Read(ctx)
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.True(t, rememberMe)
	assert.True(t, persisted.User.IsFlagged)
	assert.Equal(t, "tok123", persisted.Token)
}

func TestManager_RefreshNoopWhenAnonymous(t *testing.T) {
	called := false
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	env.manager.RefreshUserData(context.Background())
	assert.False(t, called, "refresh without a session must not hit the network")
}

func TestManager_RefreshFailsSilently(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/login/" {
			authOKHandler(t).ServeHTTP(w, r)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	ctx := context.Background()

	require.True(t, env.manager.Login(ctx, "a@b.com", "x", false))
	before := env.notifier.count()
	userBefore := env.manager.User()

	env.manager.RefreshUserData(ctx)

	assert.Equal(t, before, env.notifier.count(), "background refresh failures stay silent")
	assert.Equal(t, userBefore, env.manager.User(), "state untouched on refresh failure")
	assert.Equal(t, "tok123", env.manager.Token())
}

func TestManager_LogoutIdempotent(t *testing.T) {
	env := newTestEnv(t, authOKHandler(t))
	ctx := context.Background()

	require.True(t, env.manager.Login(ctx, "a@b.com", "x", true))

	env.manager.Logout(ctx)
	assert.Nil(t, env.manager.User())
	assert.Empty(t, env.manager.Token())
	assert.Equal(t, "info: Logged out successfully", env.notifier.last())

	persisted, rememberMe, err := env.store.Read(ctx)
	require.NoError(t, err)
	assert.Nil(t, persisted)
	assert.False(t, rememberMe)

	// Second logout: same empty state, no duplicate toast.
	before := env.notifier.count()
	env.manager.Logout(ctx)
	assert.Nil(t, env.manager.User())
	assert.Empty(t, env.manager.Token())
	assert.Equal(t, before, env.notifier.count())
}

func TestManager_RegisterLogsIn(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register/", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"user":   map[string]interface{}{"id": 5, "email": "new@b.com", "name": "New User"},
			"tokens": map[string]string{"access": "tok-new"},
		})
	}))

	ok := env.manager.Register(context.Background(), "New User", "new@b.com", "pw")
	require.True(t, ok)
	assert.Equal(t, "tok-new", env.manager.Token())
	assert.Equal(t, "New User", env.manager.User().Name)
	assert.Equal(t, session.RoleStudent, env.manager.User().Role)
}
