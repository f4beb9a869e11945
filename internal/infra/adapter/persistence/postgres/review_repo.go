package postgres

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"articles-api/internal/domain/entity"
	"articles-api/internal/repository"
)

type ReviewRepo struct{ db Querier }

func NewReviewRepo(db Querier) repository.ReviewRepository {
	return &ReviewRepo{db: db}
}

func scanReview(s scanner) (*entity.Review, error) {
	var r entity.Review
	var code int16
	if err := s.Scan(&r.ID, &code, &r.CreatedAt, &r.Content, &r.AuthorID, &r.ArticleID); err != nil {
		return nil, err
	}
	t, err := entity.ReviewTypeFromCode(code)
	if err != nil {
		return nil, err
	}
	r.Type = t
	return &r, nil
}

func (repo *ReviewRepo) Save(ctx context.Context, r entity.Review) (*entity.Review, error) {
	code, err := r.Type.Code()
	if err != nil {
		return nil, fmt.Errorf("Save: %w", err)
	}
	const query = `
INSERT INTO reviews (type, content, author_id, article_id)
VALUES ($1, $2, $3, $4)
RETURNING id, type, date_of_creation, content, author_id, article_id`
	saved, err := scanReview(repo.db.QueryRowContext(ctx, query, code, r.Content, r.AuthorID, r.ArticleID))
	if err != nil {
		return nil, wrapErr("Save", err)
	}
	return saved, nil
}

func (repo *ReviewRepo) UpdateByID(ctx context.Context, id int64, r entity.Review) (*entity.Review, error) {
	code, err := r.Type.Code()
	if err != nil {
		return nil, fmt.Errorf("UpdateByID: %w", err)
	}
	const query = `
UPDATE reviews
SET type = $1, content = $2
WHERE id = $3
RETURNING id, type, date_of_creation, content, author_id, article_id`
	return queryOne(ctx, repo.db, "UpdateByID", query, scanReview, code, r.Content, id)
}

func (repo *ReviewRepo) DeleteByID(ctx context.Context, id int64) error {
	const query = `DELETE FROM reviews WHERE id = $1`
	if _, err := repo.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("DeleteByID: %w", err)
	}
	return nil
}

func (repo *ReviewRepo) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	const query = `
SELECT id, type, date_of_creation, content, author_id, article_id
FROM reviews
WHERE id = $1`
	return queryOne(ctx, repo.db, "FindByID", query, scanReview, id)
}

func (repo *ReviewRepo) FindByIDs(ctx context.Context, ids []int64) ([]*entity.Review, error) {
	if len(ids) == 0 {
		return []*entity.Review{}, nil
	}
	const query = `
SELECT id, type, date_of_creation, content, author_id, article_id
FROM reviews
WHERE id = ANY($1)
ORDER BY id ASC`
	return queryList(ctx, repo.db, "FindByIDs", query, scanReview, pq.Array(ids))
}

func (repo *ReviewRepo) FindAll(ctx context.Context) ([]*entity.Review, error) {
	const query = `
SELECT id, type, date_of_creation, content, author_id, article_id
FROM reviews
ORDER BY id ASC`
	return queryList(ctx, repo.db, "FindAll", query, scanReview)
}

func (repo *ReviewRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return queryExists(ctx, repo.db, "ExistsByID",
		`SELECT EXISTS(SELECT 1 FROM reviews WHERE id = $1)`, id)
}

func (repo *ReviewRepo) FindByAuthorID(ctx context.Context, authorID int64) ([]*entity.Review, error) {
	const query = `
SELECT id, type, date_of_creation, content, author_id, article_id
FROM reviews
WHERE author_id = $1
ORDER BY date_of_creation DESC, id DESC`
	return queryList(ctx, repo.db, "FindByAuthorID", query, scanReview, authorID)
}

func (repo *ReviewRepo) FindByArticleID(ctx context.Context, articleID int64) ([]*entity.Review, error) {
	const query = `
SELECT id, type, date_of_creation, content, author_id, article_id
FROM reviews
WHERE article_id = $1
ORDER BY date_of_creation DESC, id DESC`
	return queryList(ctx, repo.db, "FindByArticleID", query, scanReview, articleID)
}
