package client

import (
	"errors"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenStore persists the raw bearer token between sessions.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// MemoryStore keeps the token in memory only.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Clear() error {
	return s.Save("")
}

// FileStore persists the token to a single file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore { return &FileStore{path: path} }

func (s *FileStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *FileStore) Save(token string) error {
	return os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Session holds the bearer token and its expiry-driven lifecycle. It is
// constructed explicitly and passed to the client, never shared globally.
// A persisted token that is already expired (or malformed) is cleared on
// construction.
type Session struct {
	mu    sync.Mutex
	store TokenStore
	token string
	timer *time.Timer
}

func NewSession(store TokenStore) (*Session, error) {
	s := &Session{store: store}

	token, err := store.Load()
	if err != nil {
		return nil, err
	}
	if token == "" {
		return s, nil
	}

	expiry, err := tokenExpiry(token)
	if err != nil || !expiry.After(time.Now()) {
		// malformed counts as expired
		if err := store.Clear(); err != nil {
			return nil, err
		}
		return s, nil
	}

	s.token = token
	s.scheduleLogout(time.Until(expiry))
	return s, nil
}

func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// IsAuthenticated reports whether a token is present and its decoded
// expiry is in the future. A token that cannot be decoded counts as
// expired.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return false
	}
	expiry, err := tokenExpiry(s.token)
	if err != nil {
		return false
	}
	return expiry.After(time.Now())
}

// Login stores and persists the token and re-arms the auto-logout timer:
// any previously armed timer is cancelled before the new one is scheduled.
func (s *Session) Login(token string) error {
	expiry, err := tokenExpiry(token)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(token); err != nil {
		return err
	}
	s.token = token
	s.scheduleLogout(time.Until(expiry))
	return nil
}

// Logout clears the token from memory and the store and cancels any armed
// auto-logout timer.
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logoutLocked()
}

func (s *Session) logoutLocked() error {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.token = ""
	return s.store.Clear()
}

// scheduleLogout requires s.mu held (or exclusive access during construction).
func (s *Session) scheduleLogout(d time.Duration) {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.logoutLocked()
	})
}

// tokenExpiry decodes the exp claim without verifying the signature; the
// server remains the authority, this only drives client-side state.
func tokenExpiry(token string) (time.Time, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}
	expiry, err := parsed.Claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return time.Time{}, errors.New("token has no expiry")
	}
	return expiry.Time, nil
}
