// Package review provides use cases for managing reviews.
package review

import (
	"fmt"

	"articles-api/internal/domain/entity"
)

// Sentinel errors for review use case operations.
var (
	ErrReviewNotFound  = fmt.Errorf("review: %w", entity.ErrNotFound)
	ErrAuthorNotFound  = fmt.Errorf("author: %w", entity.ErrNotFound)
	ErrArticleNotFound = fmt.Errorf("article: %w", entity.ErrNotFound)
)
