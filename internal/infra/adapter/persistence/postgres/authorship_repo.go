package postgres

import (
	"context"
	"fmt"

	"articles-api/internal/domain/entity"
	"articles-api/internal/repository"
)

type AuthorshipRepo struct{ db Querier }

func NewAuthorshipRepo(db Querier) repository.AuthorshipRepository {
	return &AuthorshipRepo{db: db}
}

// Save writes all pairs inside one transaction.
func (repo *AuthorshipRepo) Save(ctx context.Context, pairs []entity.Authorship) (err error) {
	if len(pairs) == 0 {
		return nil
	}
	const query = `
INSERT INTO authorship_of_articles (article_id, author_id)
VALUES ($1, $2)`

	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Save: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, p := range pairs {
		if _, err = tx.ExecContext(ctx, query, p.ArticleID, p.AuthorID); err != nil {
			return wrapErr("Save", err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("Save: commit: %w", err)
	}
	return nil
}

func (repo *AuthorshipRepo) FindAuthorIDsByArticleID(ctx context.Context, articleID int64) ([]int64, error) {
	const query = `
SELECT author_id
FROM authorship_of_articles
WHERE article_id = $1
ORDER BY author_id ASC`
	return queryIDs(ctx, repo.db, "FindAuthorIDsByArticleID", query, articleID)
}

func (repo *AuthorshipRepo) FindArticleIDsByAuthorID(ctx context.Context, authorID int64) ([]int64, error) {
	const query = `
SELECT article_id
FROM authorship_of_articles
WHERE author_id = $1
ORDER BY article_id ASC`
	return queryIDs(ctx, repo.db, "FindArticleIDsByAuthorID", query, authorID)
}

func (repo *AuthorshipRepo) Exists(ctx context.Context, pair entity.Authorship) (bool, error) {
	return queryExists(ctx, repo.db, "Exists",
		`SELECT EXISTS(SELECT 1 FROM authorship_of_articles WHERE article_id = $1 AND author_id = $2)`,
		pair.ArticleID, pair.AuthorID)
}
