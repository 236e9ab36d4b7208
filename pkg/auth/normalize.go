package auth

import (
	"strings"

	"github.com/edu2job/edu2job/pkg/api"
	"github.com/edu2job/edu2job/pkg/session"
)

// normalizeUser converts a backend user into the local record,
// filling the documented defaults exactly once so nothing downstream
// re-checks optionality: display name falls back to the email
// local-part, role to student, and the moderation pair stays
// consistent.
func normalizeUser(wire *api.User, provider session.Provider) *session.User {
	user := &session.User{
		ID:         wire.ID,
		Email:      wire.Email,
		Name:       wire.Name,
		Role:       session.Role(wire.Role),
		Username:   wire.Username,
		Provider:   provider,
		Picture:    wire.Picture,
		IsFlagged:  wire.IsFlagged,
		FlagReason: wire.FlagReason,
	}

	if user.Name == "" {
		user.Name = emailLocalPart(wire.Email)
	}
	if user.Role != session.RoleAdmin && user.Role != session.RoleStudent {
		user.Role = session.RoleStudent
	}
	if !user.IsFlagged {
		user.FlagReason = ""
	}

	return user
}

// mergeUser folds refreshed backend fields into the current record.
// Empty backend fields keep the existing value; the moderation pair is
// always recomputed from the response since "no longer flagged" must
// win over a stale local flag.
func mergeUser(current *session.User, wire *api.User) *session.User {
	merged := *current

	if wire.ID != 0 {
		merged.ID = wire.ID
	}
	if wire.Email != "" {
		merged.Email = wire.Email
	}
	if wire.Name != "" {
		merged.Name = wire.Name
	}
	if wire.Role != "" {
		merged.Role = session.Role(wire.Role)
	}
	if wire.Username != "" {
		merged.Username = wire.Username
	}
	if wire.Picture != "" {
		merged.Picture = wire.Picture
	}

	merged.IsFlagged = wire.IsFlagged
	merged.FlagReason = wire.FlagReason
	if !merged.IsFlagged {
		merged.FlagReason = ""
	}

	return &merged
}

func emailLocalPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
