// Package entity defines the core domain entities of the service: users, the
// articles they co-author, the reviews they write, and the error taxonomy shared
// by every layer above the store.
package entity

import (
	"fmt"
	"strings"
)

// Role is the access level stored with every user.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRole converts a role name into a Role. Matching is case-insensitive.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// User is an account that can author articles and reviews.
// PasswordHash always holds a one-way hash, never the plaintext.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Role         Role
}

// IsAdmin reports whether the user holds the elevated role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

func (u User) WithID(id int64) User {
	u.ID = id
	return u
}

func (u User) WithUsername(username string) User {
	u.Username = username
	return u
}

func (u User) WithEmail(email string) User {
	u.Email = email
	return u
}

func (u User) WithPasswordHash(hash string) User {
	u.PasswordHash = hash
	return u
}

func (u User) WithRole(role Role) User {
	u.Role = role
	return u
}
