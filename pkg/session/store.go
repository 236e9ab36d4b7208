package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/edu2job/edu2job/pkg/kvs"
)

// Storage keys. The remember-me flag always lives in the durable area,
// independent of where the payload is, so a fresh start knows which
// area to hydrate from.
const (
	keyToken    = "session:token"
	keyUser     = "session:user"
	keyRemember = "session:remember_me"
)

// Store persists the login session across the client's two storage
// areas: the durable one survives restarts, the ephemeral one is tied
// to the process. The remember-me policy chosen at login selects the
// area; exactly one of them holds the payload at any time.
type Store struct {
	durable   kvs.Store
	ephemeral kvs.Store
}

// NewStore creates a persisted session store over the two areas.
func NewStore(durable, ephemeral kvs.Store) *Store {
	return &Store{durable: durable, ephemeral: ephemeral}
}

// Write persists sess to the area selected by rememberMe, clearing the
// other area first so no stale duplicate survives, and records the
// remember-me flag durably.
func (s *Store) Write(ctx context.Context, sess *Session, rememberMe bool) error {
	if sess == nil || sess.User == nil || sess.Token == "" {
		return errors.New("session: refusing to persist a partial session")
	}

	userJSON, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("session: marshal user: %w", err)
	}

	if err := s.clearPayload(ctx); err != nil {
		return err
	}

	area := s.ephemeral
	if rememberMe {
		area = s.durable
	}
	if err := area.Set(ctx, keyToken, []byte(sess.Token), 0); err != nil {
		return fmt.Errorf("session: write token: %w", err)
	}
	if err := area.Set(ctx, keyUser, userJSON, 0); err != nil {
		return fmt.Errorf("session: write user: %w", err)
	}

	flag := "false"
	if rememberMe {
		flag = "true"
	}
	if err := s.durable.Set(ctx, keyRemember, []byte(flag), 0); err != nil {
		return fmt.Errorf("session: write remember flag: %w", err)
	}

	return nil
}

// Read reconstructs the persisted session. The durable remember flag
// (absent means false) picks the area to read. A missing token or
// user, or a payload that does not parse, reads as "no session";
// corrupt local state must never break startup.
func (s *Store) Read(ctx context.Context) (*Session, bool, error) {
	rememberMe := false
	if raw, err := s.durable.Get(ctx, keyRemember); err == nil {
		rememberMe = string(raw) == "true"
	} else if !errors.Is(err, kvs.ErrNotFound) {
		return nil, false, fmt.Errorf("session: read remember flag: %w", err)
	}

	area := s.ephemeral
	if rememberMe {
		area = s.durable
	}

	token, err := area.Get(ctx, keyToken)
	if err != nil || len(token) == 0 {
		return nil, rememberMe, nil
	}
	userJSON, err := area.Get(ctx, keyUser)
	if err != nil {
		return nil, rememberMe, nil
	}

	var user User
	if err := json.Unmarshal(userJSON, &user); err != nil || user.Email == "" {
		return nil, rememberMe, nil
	}

	// Older payloads predate the moderation fields; keep the
	// flagged/reason pairing consistent.
	if !user.IsFlagged {
		user.FlagReason = ""
	}

	return &Session{User: &user, Token: string(token)}, rememberMe, nil
}

// Clear empties both areas and the remember flag. Idempotent.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.clearPayload(ctx); err != nil {
		return err
	}
	if err := s.durable.Delete(ctx, keyRemember); err != nil {
		return fmt.Errorf("session: clear remember flag: %w", err)
	}
	return nil
}

func (s *Store) clearPayload(ctx context.Context) error {
	for _, area := range []kvs.Store{s.durable, s.ephemeral} {
		if err := area.Delete(ctx, keyToken); err != nil {
			return fmt.Errorf("session: clear token: %w", err)
		}
		if err := area.Delete(ctx, keyUser); err != nil {
			return fmt.Errorf("session: clear user: %w", err)
		}
	}
	return nil
}
