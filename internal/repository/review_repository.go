package repository

import (
	"context"

	"articles-api/internal/domain/entity"
)

type ReviewRepository interface {
	CrudRepository[entity.Review]
	FindByAuthorID(ctx context.Context, authorID int64) ([]*entity.Review, error)
	FindByArticleID(ctx context.Context, articleID int64) ([]*entity.Review, error)
}
