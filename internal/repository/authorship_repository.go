package repository

import (
	"context"

	"articles-api/internal/domain/entity"
)

// AuthorshipRepository manages the article/author join rows.
type AuthorshipRepository interface {
	// Save inserts every pair in one transaction: all rows are written or none.
	Save(ctx context.Context, pairs []entity.Authorship) error
	FindAuthorIDsByArticleID(ctx context.Context, articleID int64) ([]int64, error)
	FindArticleIDsByAuthorID(ctx context.Context, authorID int64) ([]int64, error)
	Exists(ctx context.Context, pair entity.Authorship) (bool, error)
}
