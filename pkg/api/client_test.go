package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login/", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "a@b.com", body["email"])
		require.Equal(t, "x", body["password"])

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"user":   map[string]interface{}{"id": 1, "email": "a@b.com", "role": "student"},
			"tokens": map[string]string{"access": "tok123"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	resp, err := client.Login(context.Background(), "a@b.com", "x")
	require.NoError(t, err)
	assert.Equal(t, "tok123", resp.Tokens.Access)
	assert.Equal(t, "a@b.com", resp.User.Email)
	assert.Equal(t, 1, resp.User.ID)
}

func TestClient_LoginRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid email or password"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	_, err := client.Login(context.Background(), "a@b.com", "wrong")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Invalid email or password", apiErr.Detail)
	assert.Equal(t, "Invalid email or password", ErrorDetail(err))
}

func TestClient_LoginMalformedSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"tokens": map[string]string{"access": "tok"}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	_, err := client.Login(context.Background(), "a@b.com", "x")
	assert.ErrorIs(t, err, ErrMalformedAuthResponse)
}

func TestClient_BearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"user": map[string]interface{}{"email": "a@b.com"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	profile, err := client.Profile(context.Background(), "tok123")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", profile.User.Email)
}

func TestClient_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	_, err := client.Profile(context.Background(), "stale")
	assert.True(t, IsUnauthorized(err))
}

func TestClient_ErrorFieldFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Education details not found"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	_, err := client.Predict(context.Background(), "tok")
	assert.Equal(t, "Education details not found", ErrorDetail(err))
}

func TestClient_TransportFailure(t *testing.T) {
	// A server that is already closed gives a connection error.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, nil)
	_, err := client.Profile(context.Background(), "tok")
	require.Error(t, err)

	var apiErr *Error
	assert.NotErrorAs(t, err, &apiErr, "transport failures are not backend rejections")
	assert.Empty(t, ErrorDetail(err))
}

func TestClient_DefaultBaseURL(t *testing.T) {
	client := NewClient("", nil)
	assert.Equal(t, DefaultBaseURL, client.BaseURL())

	trimmed := NewClient("http://example.com/api/", nil)
	assert.Equal(t, "http://example.com/api", trimmed.BaseURL())
}

func TestClient_AdminPaths(t *testing.T) {
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		_, _ = w.Write([]byte("{}"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	ctx := context.Background()

	require.NoError(t, client.SetUserRole(ctx, "tok", 7, "admin"))
	assert.Equal(t, "/admin/users/7/role/", gotPath)
	assert.Equal(t, http.MethodPatch, gotMethod)

	require.NoError(t, client.FlagUser(ctx, "tok", 7, "abuse"))
	assert.Equal(t, "/admin/users/7/flag/", gotPath)
	assert.Equal(t, http.MethodPost, gotMethod)

	require.NoError(t, client.DeleteTicket(ctx, "tok", 3))
	assert.Equal(t, "/support/tickets/3/delete/", gotPath)
	assert.Equal(t, http.MethodDelete, gotMethod)
}
