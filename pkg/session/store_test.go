package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edu2job/edu2job/pkg/kvs"
)

func newTestStore(t *testing.T) (*Store, kvs.Store, kvs.Store) {
	t.Helper()

	durable := kvs.NewMemoryStore()
	ephemeral := kvs.NewMemoryStore()
	t.Cleanup(func() {
		_ = durable.Close()
		_ = ephemeral.Close()
	})
	return NewStore(durable, ephemeral), durable, ephemeral
}

func testSession() *Session {
	return &Session{
		User: &User{
			ID:       1,
			Email:    "a@b.com",
			Name:     "a",
			Role:     RoleStudent,
			Provider: ProviderEmail,
		},
		Token: "tok123",
	}
}

func TestStore_RoundTrip(t *testing.T) {
	for _, rememberMe := range []bool{true, false} {
		store, _, _ := newTestStore(t)
		ctx := context.Background()

		require.NoError(t, store.Write(ctx, testSession(), rememberMe))

		got, gotRemember, err := store.Read(ctx)
		require.NoError(t, err)
		require.NotNil(t, got, "rememberMe=%v", rememberMe)
		assert.Equal(t, rememberMe, gotRemember)
		assert.Equal(t, "tok123", got.Token)
		assert.Equal(t, testSession().User, got.User)
	}
}

func TestStore_ExactlyOneAreaHoldsPayload(t *testing.T) {
	store, durable, ephemeral := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, testSession(), true))
	exists, _ := durable.Exists(ctx, "session:token")
	assert.True(t, exists, "durable should hold the remembered session")
	exists, _ = ephemeral.Exists(ctx, "session:token")
	assert.False(t, exists, "ephemeral must be empty after a remembered write")

	// A second login without remember-me moves the payload and leaves
	// nothing stale behind.
	second := testSession()
	second.User.Email = "c@d.com"
	second.Token = "tok456"
	require.NoError(t, store.Write(ctx, second, false))

	exists, _ = durable.Exists(ctx, "session:token")
	assert.False(t, exists, "durable payload must be cleared by the second write")
	exists, _ = durable.Exists(ctx, "session:user")
	assert.False(t, exists)

	got, rememberMe, err := store.Read(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, rememberMe)
	assert.Equal(t, "tok456", got.Token)
	assert.Equal(t, "c@d.com", got.User.Email)
}

func TestStore_ReadEmpty(t *testing.T) {
	store, _, _ := newTestStore(t)

	got, rememberMe, err := store.Read(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, rememberMe)
}

func TestStore_CorruptUserReadsAsNoSession(t *testing.T) {
	store, durable, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, testSession(), true))
	require.NoError(t, durable.Set(ctx, "session:user", []byte(`{"email":"a@`), 0))

	got, _, err := store.Read(ctx)
	require.NoError(t, err, "corrupt payload must not surface as an error")
	assert.Nil(t, got)
}

func TestStore_MissingTokenReadsAsNoSession(t *testing.T) {
	store, durable, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, testSession(), true))
	require.NoError(t, durable.Delete(ctx, "session:token"))

	got, _, err := store.Read(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_LegacyPayloadDefaultsFlags(t *testing.T) {
	store, durable, _ := newTestStore(t)
	ctx := context.Background()

	// A payload written before the moderation fields existed.
	require.NoError(t, durable.Set(ctx, "session:remember_me", []byte("true"), 0))
	require.NoError(t, durable.Set(ctx, "session:token", []byte("tok123"), 0))
	require.NoError(t, durable.Set(ctx, "session:user",
		[]byte(`{"email":"a@b.com","name":"a","role":"student","flag_reason":"stale"}`), 0))

	got, _, err := store.Read(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.User.IsFlagged)
	assert.Empty(t, got.User.FlagReason, "unflagged user must not carry a reason")
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	store, durable, ephemeral := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, testSession(), true))
	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))

	got, rememberMe, err := store.Read(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, rememberMe)

	for _, area := range []kvs.Store{durable, ephemeral} {
		keys, err := area.List(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, keys)
	}
}

func TestStore_RefusesPartialSession(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	assert.Error(t, store.Write(ctx, &Session{Token: "tok"}, true))
	assert.Error(t, store.Write(ctx, &Session{User: &User{Email: "a@b.com"}}, true))
	assert.Error(t, store.Write(ctx, nil, true))
}
