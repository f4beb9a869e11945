// Package user provides use cases for managing users.
// It owns the identity-uniqueness rules for username and email.
package user

import (
	"fmt"

	"articles-api/internal/domain/entity"
)

// Sentinel errors for user use case operations.
var (
	// ErrUserNotFound indicates that the requested user was not found.
	ErrUserNotFound = fmt.Errorf("user: %w", entity.ErrNotFound)

	// ErrArticleNotFound is returned by author lookups for a missing article.
	ErrArticleNotFound = fmt.Errorf("article: %w", entity.ErrNotFound)
)
