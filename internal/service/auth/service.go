// Package auth verifies login credentials against stored users.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"articles-api/internal/domain/entity"
	"articles-api/internal/infra/password"
)

// ErrInvalidCredentials covers both an unknown username and a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Credentials represents authentication credentials.
type Credentials struct {
	Username string
	Password string
}

// AuthProvider resolves credentials to a user.
type AuthProvider interface {
	Authenticate(ctx context.Context, creds Credentials) (*entity.User, error)
	Name() string
}

// UserFinder looks users up by username; (nil, nil) means absent.
type UserFinder interface {
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}

// UserStoreProvider checks credentials against password hashes in the user store.
type UserStoreProvider struct {
	Users  UserFinder
	Hasher password.Hasher

	dummyOnce sync.Once
	dummyHash string
}

func (p *UserStoreProvider) Name() string { return "user-store" }

func (p *UserStoreProvider) Authenticate(ctx context.Context, creds Credentials) (*entity.User, error) {
	u, err := p.Users.FindByUsername(ctx, creds.Username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if u == nil {
		// spend the same hashing time as a real comparison
		p.Hasher.Verify(creds.Password, p.dummy())
		return nil, ErrInvalidCredentials
	}
	if !p.Hasher.Verify(creds.Password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (p *UserStoreProvider) dummy() string {
	p.dummyOnce.Do(func() {
		p.dummyHash, _ = p.Hasher.Hash("articles-api-dummy-password")
	})
	return p.dummyHash
}

// AuthService handles authentication business logic.
type AuthService struct {
	provider        AuthProvider
	publicEndpoints []string
}

// NewAuthService creates a new authentication service.
func NewAuthService(provider AuthProvider, publicEndpoints []string) *AuthService {
	return &AuthService{
		provider:        provider,
		publicEndpoints: publicEndpoints,
	}
}

// Authenticate validates credentials via the configured provider.
func (s *AuthService) Authenticate(ctx context.Context, creds Credentials) (*entity.User, error) {
	return s.provider.Authenticate(ctx, creds)
}

// IsPublicEndpoint reports whether path is served without a token.
// An entry ending in "/" matches its whole subtree; other entries match
// exactly.
func (s *AuthService) IsPublicEndpoint(path string) bool {
	for _, endpoint := range s.publicEndpoints {
		if strings.HasSuffix(endpoint, "/") {
			if strings.HasPrefix(path, endpoint) {
				return true
			}
			continue
		}
		if path == endpoint {
			return true
		}
	}
	return false
}

// GetProvider returns the current authentication provider.
func (s *AuthService) GetProvider() AuthProvider {
	return s.provider
}
