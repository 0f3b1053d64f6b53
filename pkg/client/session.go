package client

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	pkgerrors "github.com/socialai/socialai-backend/pkg/errors"
	"github.com/socialai/socialai-backend/pkg/logger"
)

// SessionState is an immutable snapshot of the credential+profile pair.
// The zero value is Anonymous.
type SessionState struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Authenticated reports whether the snapshot carries a live credential.
func (s SessionState) Authenticated() bool {
	return s.Token != "" && s.User != nil
}

// Session owns the process-wide authentication state and makes it durable in
// a single JSON file. Only Session methods transition the state; reads get
// atomic snapshots, so any number of readers are safe alongside the single
// writer.
type Session struct {
	gateway *Gateway
	path    string
	logg    *logger.Logger

	mu    sync.RWMutex
	state SessionState
}

// NewSession builds a session persisted at path. When the gateway has no
// token source of its own, the session registers itself so authenticated
// calls pick up the stored credential.
func NewSession(gateway *Gateway, path string) *Session {
	s := &Session{
		gateway: gateway,
		path:    path,
		logg:    gateway.logg,
	}
	if gateway.tokens == nil {
		gateway.tokens = s
	}
	return s
}

// Gateway exposes the underlying API client for entity calls.
func (s *Session) Gateway() *Gateway { return s.gateway }

// Token implements TokenSource. Empty while Anonymous.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

// Current returns the live state snapshot.
func (s *Session) Current() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Restore loads the persisted pair from disk. A missing or corrupt file means
// Anonymous; Restore never fails and calling it twice yields the same result.
func (s *Session) Restore() SessionState {
	state := SessionState{}

	raw, err := os.ReadFile(s.path)
	switch {
	case err == nil:
		if err := json.Unmarshal(raw, &state); err != nil {
			s.logg.Warn(context.Background(), "stored session is corrupt, treating as anonymous")
			state = SessionState{}
		}
	case !os.IsNotExist(err):
		s.logg.Warn(context.Background(), "stored session unreadable, treating as anonymous")
	}
	if !state.Authenticated() {
		state = SessionState{}
	}

	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
	return state
}

// Login exchanges credentials for a session. Empty fields fail locally
// without any network attempt; a rejected login leaves the state unchanged.
func (s *Session) Login(ctx context.Context, email, password string) (*User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email and password are required")
	}

	result, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.transition(SessionState{Token: result.Token, User: result.User}); err != nil {
		return nil, err
	}
	return result.User, nil
}

// Register creates an account and signs in. Empty required fields fail
// locally; an email collision surfaces as the server's CONFLICT error.
func (s *Session) Register(ctx context.Context, input RegisterInput) (*User, error) {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		input.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name, email and password are required")
	}

	result, err := s.gateway.Register(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := s.transition(SessionState{Token: result.Token, User: result.User}); err != nil {
		return nil, err
	}
	return result.User, nil
}

// Logout clears the persisted pair and transitions to Anonymous. The
// server-side revoke is best effort; local state is cleared regardless.
// Idempotent.
func (s *Session) Logout(ctx context.Context) error {
	if s.Current().Authenticated() {
		if err := s.gateway.Logout(ctx); err != nil {
			s.logg.Warn(ctx, "server-side logout failed, clearing local session anyway")
		}
	}
	return s.transition(SessionState{})
}

// transition persists the new state, then swaps the in-memory snapshot. The
// pair is always written or cleared together.
func (s *Session) transition(state SessionState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !state.Authenticated() {
		if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "clear stored session")
		}
		s.state = SessionState{}
		return nil
	}

	payload, err := json.Marshal(state)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode session")
	}
	if err := writeFileAtomic(s.path, payload); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist session")
	}
	s.state = state
	return nil
}

// writeFileAtomic writes via a temp file and rename so readers never observe
// a half-written session.
func writeFileAtomic(path string, payload []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
