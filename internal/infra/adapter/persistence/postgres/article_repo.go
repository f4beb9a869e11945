package postgres

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"articles-api/internal/domain/entity"
	"articles-api/internal/repository"
)

type ArticleRepo struct{ db Querier }

func NewArticleRepo(db Querier) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

func scanArticle(s scanner) (*entity.Article, error) {
	var a entity.Article
	if err := s.Scan(&a.ID, &a.CreatedAt, &a.Topic, &a.Content); err != nil {
		return nil, err
	}
	return &a, nil
}

// Save inserts the article; date_of_creation is assigned by the database.
func (repo *ArticleRepo) Save(ctx context.Context, a entity.Article) (*entity.Article, error) {
	const query = `
INSERT INTO articles (topic, content)
VALUES ($1, $2)
RETURNING id, date_of_creation, topic, content`
	saved, err := scanArticle(repo.db.QueryRowContext(ctx, query, a.Topic, a.Content))
	if err != nil {
		return nil, wrapErr("Save", err)
	}
	return saved, nil
}

func (repo *ArticleRepo) UpdateByID(ctx context.Context, id int64, a entity.Article) (*entity.Article, error) {
	const query = `
UPDATE articles
SET topic = $1, content = $2
WHERE id = $3
RETURNING id, date_of_creation, topic, content`
	return queryOne(ctx, repo.db, "UpdateByID", query, scanArticle, a.Topic, a.Content, id)
}

func (repo *ArticleRepo) DeleteByID(ctx context.Context, id int64) error {
	const query = `DELETE FROM articles WHERE id = $1`
	if _, err := repo.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("DeleteByID: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) FindByID(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT id, date_of_creation, topic, content
FROM articles
WHERE id = $1`
	return queryOne(ctx, repo.db, "FindByID", query, scanArticle, id)
}

func (repo *ArticleRepo) FindByIDs(ctx context.Context, ids []int64) ([]*entity.Article, error) {
	if len(ids) == 0 {
		return []*entity.Article{}, nil
	}
	const query = `
SELECT id, date_of_creation, topic, content
FROM articles
WHERE id = ANY($1)
ORDER BY date_of_creation DESC, id DESC`
	return queryList(ctx, repo.db, "FindByIDs", query, scanArticle, pq.Array(ids))
}

func (repo *ArticleRepo) FindAll(ctx context.Context) ([]*entity.Article, error) {
	const query = `
SELECT id, date_of_creation, topic, content
FROM articles
ORDER BY date_of_creation DESC, id DESC`
	return queryList(ctx, repo.db, "FindAll", query, scanArticle)
}

func (repo *ArticleRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return queryExists(ctx, repo.db, "ExistsByID",
		`SELECT EXISTS(SELECT 1 FROM articles WHERE id = $1)`, id)
}
