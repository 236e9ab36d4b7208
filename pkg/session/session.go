// Package session holds the local login session and its persistence
// across the client's two storage areas.
package session

// Role is a user's role in Edu2Job.
type Role string

const (
	// RoleAdmin can access the admin console.
	RoleAdmin Role = "admin"
	// RoleStudent is the default role.
	RoleStudent Role = "student"
)

// Provider identifies how a session was established.
type Provider string

const (
	// ProviderEmail is email/password login.
	ProviderEmail Provider = "email"
	// ProviderGoogle is Google OAuth login.
	ProviderGoogle Provider = "google"
)

// User is the normalized local user record. JSON tags match the
// backend wire names so stored payloads stay readable across versions.
type User struct {
	ID         int      `json:"id,omitempty"`
	Email      string   `json:"email"`
	Name       string   `json:"name"`
	Role       Role     `json:"role"`
	Username   string   `json:"username,omitempty"`
	Provider   Provider `json:"provider,omitempty"`
	Picture    string   `json:"picture,omitempty"`
	IsFlagged  bool     `json:"is_flagged"`
	FlagReason string   `json:"flag_reason"`
}

// IsAdmin reports whether the user may use the admin console.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Session pairs the user record with its bearer token. Both are
// present or the session does not exist; there is no partial state.
type Session struct {
	User  *User
	Token string
}
