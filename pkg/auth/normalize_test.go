package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edu2job/edu2job/pkg/api"
	"github.com/edu2job/edu2job/pkg/session"
)

func TestNormalizeUser_Defaults(t *testing.T) {
	tests := []struct {
		name     string
		wire     api.User
		wantName string
		wantRole session.Role
	}{
		{
			name:     "backend omits name and role",
			wire:     api.User{ID: 1, Email: "a@b.com"},
			wantName: "a",
			wantRole: session.RoleStudent,
		},
		{
			name:     "backend provides everything",
			wire:     api.User{ID: 2, Email: "x@y.com", Name: "Xavier", Role: "admin"},
			wantName: "Xavier",
			wantRole: session.RoleAdmin,
		},
		{
			name:     "unknown role degrades to student",
			wire:     api.User{Email: "a@b.com", Role: "superuser"},
			wantName: "a",
			wantRole: session.RoleStudent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeUser(&tt.wire, session.ProviderEmail)
			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, tt.wantRole, got.Role)
			assert.Equal(t, session.ProviderEmail, got.Provider)
		})
	}
}

func TestNormalizeUser_FlagConsistency(t *testing.T) {
	got := normalizeUser(&api.User{Email: "a@b.com", IsFlagged: false, FlagReason: "leftover"}, session.ProviderEmail)
	assert.False(t, got.IsFlagged)
	assert.Empty(t, got.FlagReason)

	got = normalizeUser(&api.User{Email: "a@b.com", IsFlagged: true, FlagReason: "abuse"}, session.ProviderEmail)
	assert.True(t, got.IsFlagged)
	assert.Equal(t, "abuse", got.FlagReason)
}

func TestMergeUser(t *testing.T) {
	current := &session.User{
		ID:       1,
		Email:    "a@b.com",
		Name:     "a",
		Role:     session.RoleStudent,
		Provider: session.ProviderEmail,
		Picture:  "avatar.png",
	}

	merged := mergeUser(current, &api.User{Name: "Alice", Role: "admin", IsFlagged: true, FlagReason: "abuse"})

	assert.Equal(t, "Alice", merged.Name)
	assert.Equal(t, session.RoleAdmin, merged.Role)
	assert.True(t, merged.IsFlagged)
	assert.Equal(t, "abuse", merged.FlagReason)
	// Fields the backend left empty survive the merge.
	assert.Equal(t, "a@b.com", merged.Email)
	assert.Equal(t, "avatar.png", merged.Picture)
	assert.Equal(t, session.ProviderEmail, merged.Provider)
	// The input is not mutated.
	assert.Equal(t, "a", current.Name)
}

func TestMergeUser_UnflagClearsReason(t *testing.T) {
	current := &session.User{Email: "a@b.com", IsFlagged: true, FlagReason: "abuse"}

	merged := mergeUser(current, &api.User{IsFlagged: false})

	assert.False(t, merged.IsFlagged)
	assert.Empty(t, merged.FlagReason)
}

func TestEmailLocalPart(t *testing.T) {
	assert.Equal(t, "a", emailLocalPart("a@b.com"))
	assert.Equal(t, "no-at-sign", emailLocalPart("no-at-sign"))
	assert.Equal(t, "first.last", emailLocalPart("first.last@company.org"))
}
