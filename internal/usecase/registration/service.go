// Package registration implements self sign-up.
package registration

import (
	"context"

	"articles-api/internal/domain/entity"
	"articles-api/internal/infra/password"
)

// UserCreator is the part of the user service registration needs.
type UserCreator interface {
	Create(ctx context.Context, u entity.User) (*entity.User, error)
}

// Input is a sign-up request with a plaintext password.
type Input struct {
	Username string
	Email    string
	Password string
}

type Service struct {
	Users  UserCreator
	Hasher password.Hasher
}

// Register hashes the password, forces the USER role and delegates to the
// user service. Duplicate errors pass through unchanged.
func (s *Service) Register(ctx context.Context, in Input) (*entity.User, error) {
	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	return s.Users.Create(ctx, entity.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         entity.RoleUser,
	})
}
