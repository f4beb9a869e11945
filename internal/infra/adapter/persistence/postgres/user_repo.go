package postgres

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"articles-api/internal/domain/entity"
	"articles-api/internal/repository"
)

// Constraint names declared by the migration; the user service maps them to
// the duplicated field.
const (
	UsersUsernameKey = "users_username_key"
	UsersEmailKey    = "users_email_key"
)

type UserRepo struct{ db Querier }

func NewUserRepo(db Querier) repository.UserRepository {
	return &UserRepo{db: db}
}

func scanUser(s scanner) (*entity.User, error) {
	var u entity.User
	var role string
	if err := s.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &role); err != nil {
		return nil, err
	}
	u.Role = entity.Role(role)
	return &u, nil
}

func (repo *UserRepo) Save(ctx context.Context, u entity.User) (*entity.User, error) {
	const query = `
INSERT INTO users (username, email, password, role)
VALUES ($1, $2, $3, $4)
RETURNING id, username, email, password, role`
	saved, err := scanUser(repo.db.QueryRowContext(ctx, query,
		u.Username, u.Email, u.PasswordHash, string(u.Role)))
	if err != nil {
		return nil, wrapErr("Save", err)
	}
	return saved, nil
}

func (repo *UserRepo) UpdateByID(ctx context.Context, id int64, u entity.User) (*entity.User, error) {
	const query = `
UPDATE users
SET username = $1, email = $2, password = $3, role = $4
WHERE id = $5
RETURNING id, username, email, password, role`
	return queryOne(ctx, repo.db, "UpdateByID", query, scanUser,
		u.Username, u.Email, u.PasswordHash, string(u.Role), id)
}

func (repo *UserRepo) DeleteByID(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id = $1`
	if _, err := repo.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("DeleteByID: %w", err)
	}
	return nil
}

func (repo *UserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	const query = `
SELECT id, username, email, password, role
FROM users
WHERE id = $1`
	return queryOne(ctx, repo.db, "FindByID", query, scanUser, id)
}

func (repo *UserRepo) FindByIDs(ctx context.Context, ids []int64) ([]*entity.User, error) {
	if len(ids) == 0 {
		return []*entity.User{}, nil
	}
	const query = `
SELECT id, username, email, password, role
FROM users
WHERE id = ANY($1)
ORDER BY id ASC`
	return queryList(ctx, repo.db, "FindByIDs", query, scanUser, pq.Array(ids))
}

func (repo *UserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	const query = `
SELECT id, username, email, password, role
FROM users
ORDER BY id ASC`
	return queryList(ctx, repo.db, "FindAll", query, scanUser)
}

func (repo *UserRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return queryExists(ctx, repo.db, "ExistsByID",
		`SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id)
}

func (repo *UserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	const query = `
SELECT id, username, email, password, role
FROM users
WHERE username = $1`
	return queryOne(ctx, repo.db, "FindByUsername", query, scanUser, username)
}

func (repo *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	const query = `
SELECT id, username, email, password, role
FROM users
WHERE email = $1`
	return queryOne(ctx, repo.db, "FindByEmail", query, scanUser, email)
}

func (repo *UserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return queryExists(ctx, repo.db, "ExistsByUsername",
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username)
}

func (repo *UserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return queryExists(ctx, repo.db, "ExistsByEmail",
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
}
