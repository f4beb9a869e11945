// Package article provides use cases for managing articles and their
// authorship links.
package article

import (
	"fmt"

	"articles-api/internal/domain/entity"
)

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	ErrArticleNotFound = fmt.Errorf("article: %w", entity.ErrNotFound)

	// ErrAuthorNotFound is returned by author-scoped lookups for a missing user.
	ErrAuthorNotFound = fmt.Errorf("author: %w", entity.ErrNotFound)
)
