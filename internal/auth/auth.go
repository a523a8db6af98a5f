// Package auth implements the email/password sign-in variant. The user
// record lives in the persistent store under its own slot; session tokens
// are held in memory only.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/ananyadwivedi1010/TUF-Flash/internal/store"
)

// User is the record consumed by the view layer.
type User struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl"`
}

// record is what actually gets persisted; the hash never leaves the package.
type record struct {
	User
	PasswordHash string `json:"passwordHash"`
}

var (
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so sign-in does not leak which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrEmptyEmail    = errors.New("email is required")
	ErrEmptyPassword = errors.New("password is required")
)

// Service signs users up and in against the persistent store.
type Service struct {
	store store.Store

	mu       sync.Mutex
	sessions map[string]string // token -> email
}

// New returns a Service over the given store.
func New(s store.Store) *Service {
	return &Service{store: s, sessions: make(map[string]string)}
}

// SignUp creates (or replaces) the stored user record. Name defaults to the
// email local part, the avatar to a generated initials image, matching the
// original frontend.
func (s *Service) SignUp(name, email, password string) (User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return User{}, ErrEmptyEmail
	}
	if password == "" {
		return User{}, ErrEmptyPassword
	}
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	rec := record{
		User: User{
			Name:      name,
			Email:     email,
			AvatarURL: "https://api.dicebear.com/7.x/initials/svg?seed=" + name,
		},
		PasswordHash: string(hash),
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return User{}, fmt.Errorf("failed to encode user: %w", err)
	}
	if err := s.store.Save(store.KeyUser, raw); err != nil {
		return User{}, fmt.Errorf("failed to save user: %w", err)
	}
	return rec.User, nil
}

// SignIn verifies the credentials against the stored record and returns the
// user plus a fresh session token.
func (s *Service) SignIn(email, password string) (User, string, error) {
	raw, err := s.store.Load(store.KeyUser)
	if err != nil {
		return User{}, "", ErrInvalidCredentials
	}
	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return User{}, "", fmt.Errorf("corrupt user record: %w", err)
	}

	if !strings.EqualFold(rec.Email, strings.TrimSpace(email)) {
		return User{}, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)) != nil {
		return User{}, "", ErrInvalidCredentials
	}

	token, err := gonanoid.New()
	if err != nil {
		return User{}, "", fmt.Errorf("failed to create session token: %w", err)
	}

	s.mu.Lock()
	s.sessions[token] = rec.Email
	s.mu.Unlock()

	return rec.User, token, nil
}

// UserFor resolves a session token back to the signed-in user.
func (s *Service) UserFor(token string) (User, bool) {
	s.mu.Lock()
	_, ok := s.sessions[token]
	s.mu.Unlock()
	if !ok {
		return User{}, false
	}

	raw, err := s.store.Load(store.KeyUser)
	if err != nil {
		return User{}, false
	}
	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return User{}, false
	}
	return rec.User, true
}

// SignOut invalidates a session token.
func (s *Service) SignOut(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
