// Package auth is the credential collaborator for the progression core.
// The core treats it as a black box: signup stores an opaque secret,
// login checks one. The stored secret is a bcrypt hash; the core never
// sees plaintext after the call returns.
package auth

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Victor-Rafael0/MATHPATH/internal/progression"
	"github.com/Victor-Rafael0/MATHPATH/internal/store"
)

var (
	// ErrUserExists is returned when signing up an already-taken name.
	ErrUserExists = errors.New("auth: usuário já existe")

	// ErrInvalidCredentials is returned on unknown name or wrong secret.
	ErrInvalidCredentials = errors.New("auth: erro de acesso")

	// ErrEmptyInput is returned when name or secret is blank.
	ErrEmptyInput = errors.New("auth: nome e chave de acesso são obrigatórios")
)

// Service implements signup and login over the persistence gateway.
type Service struct {
	gw store.Gateway
}

// New creates an auth service backed by the given gateway.
func New(gw store.Gateway) *Service {
	return &Service{gw: gw}
}

// Normalize canonicalizes a learner name: trimmed and lower-cased.
// Identity is case-insensitive.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Signup registers a new account and returns its fresh profile. The
// profile is also stored as the active session.
func (s *Service) Signup(name, secret string) (progression.Profile, error) {
	name = Normalize(name)
	if name == "" || secret == "" {
		return progression.Profile{}, ErrEmptyInput
	}

	existing, err := s.gw.GetAccount(name)
	if err != nil {
		return progression.Profile{}, fmt.Errorf("check account: %w", err)
	}
	if existing != nil {
		return progression.Profile{}, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return progression.Profile{}, fmt.Errorf("hash secret: %w", err)
	}

	profile := progression.NewProfile(name)
	acc := store.Account{Profile: profile, SecretHash: string(hash)}
	if err := s.gw.PutAccount(acc); err != nil {
		return progression.Profile{}, fmt.Errorf("store account: %w", err)
	}
	if err := s.gw.SaveSession(profile); err != nil {
		return progression.Profile{}, fmt.Errorf("store session: %w", err)
	}
	return profile, nil
}

// Login authenticates an existing account and returns its profile,
// storing it as the active session. Unknown name and wrong secret are
// indistinguishable to the caller.
func (s *Service) Login(name, secret string) (progression.Profile, error) {
	name = Normalize(name)
	if name == "" || secret == "" {
		return progression.Profile{}, ErrEmptyInput
	}

	acc, err := s.gw.GetAccount(name)
	if err != nil {
		return progression.Profile{}, fmt.Errorf("load account: %w", err)
	}
	if acc == nil {
		return progression.Profile{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(acc.SecretHash), []byte(secret)) != nil {
		return progression.Profile{}, ErrInvalidCredentials
	}

	if err := s.gw.SaveSession(acc.Profile); err != nil {
		return progression.Profile{}, fmt.Errorf("store session: %w", err)
	}
	return acc.Profile, nil
}
