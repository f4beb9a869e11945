// Package user provides HTTP handlers for user accounts.
package user

import "articles-api/internal/domain/entity"

// DTO is the public view of a user. The password hash is never exposed.
type DTO struct {
	ID       int64  `json:"id" example:"1"`
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@example.com"`
	Role     string `json:"role" example:"USER"`
}

// CreateRequest is the body of POST /users.
type CreateRequest struct {
	Username string `json:"username" validate:"min=5,max=30" example:"alice"`
	Email    string `json:"email" validate:"min=5,max=50,email" example:"alice@example.com"`
	Password string `json:"password" validate:"min=5,max=50" example:"secret-password"`
	Role     string `json:"role" validate:"oneof=USER ADMIN" example:"USER"`
}

// UpdateRequest is the body of PATCH /users/{id}. Omitted fields are kept.
type UpdateRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=5,max=30" example:"alice2"`
	Email    *string `json:"email,omitempty" validate:"omitempty,min=5,max=50,email" example:"alice2@example.com"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=5,max=50"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=USER ADMIN" example:"ADMIN"`
}

func toDTO(u *entity.User) DTO {
	return DTO{ID: u.ID, Username: u.Username, Email: u.Email, Role: string(u.Role)}
}

func toDTOs(users []*entity.User) []DTO {
	out := make([]DTO, 0, len(users))
	for _, u := range users {
		out = append(out, toDTO(u))
	}
	return out
}
