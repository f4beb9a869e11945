package repository

import (
	"context"

	"articles-api/internal/domain/entity"
)

type UserRepository interface {
	CrudRepository[entity.User]
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
