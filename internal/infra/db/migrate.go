package db

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied in order. Constraint names on users are referenced by the
// postgres adapter when classifying unique violations.
var schema = []string{
	`
CREATE TABLE IF NOT EXISTS users (
    id       BIGSERIAL PRIMARY KEY,
    username VARCHAR(30) NOT NULL,
    email    VARCHAR(50) NOT NULL,
    password TEXT        NOT NULL,
    role     VARCHAR(10) NOT NULL DEFAULT 'USER',
    CONSTRAINT users_username_key UNIQUE (username),
    CONSTRAINT users_email_key    UNIQUE (email),
    CONSTRAINT users_role_check   CHECK (role IN ('USER', 'ADMIN'))
)`,
	`
CREATE TABLE IF NOT EXISTS articles (
    id               BIGSERIAL PRIMARY KEY,
    date_of_creation TIMESTAMPTZ   NOT NULL DEFAULT now(),
    topic            VARCHAR(50)   NOT NULL,
    content          VARCHAR(1500) NOT NULL
)`,
	`
CREATE TABLE IF NOT EXISTS authorship_of_articles (
    article_id BIGINT NOT NULL REFERENCES articles(id) ON DELETE CASCADE,
    author_id  BIGINT NOT NULL REFERENCES users(id)    ON DELETE CASCADE,
    PRIMARY KEY (article_id, author_id)
)`,
	`
CREATE TABLE IF NOT EXISTS reviews (
    id               BIGSERIAL PRIMARY KEY,
    type             SMALLINT     NOT NULL CHECK (type BETWEEN 0 AND 2),
    date_of_creation TIMESTAMPTZ  NOT NULL DEFAULT now(),
    content          VARCHAR(500) NOT NULL,
    author_id        BIGINT       NOT NULL REFERENCES users(id)    ON DELETE CASCADE,
    article_id       BIGINT       NOT NULL REFERENCES articles(id) ON DELETE CASCADE
)`,
	`CREATE INDEX IF NOT EXISTS idx_authorship_author_id ON authorship_of_articles(author_id)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_date_of_creation ON articles(date_of_creation DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_author_id ON reviews(author_id)`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_article_id ON reviews(article_id)`,
}

// MigrateUp creates the tables and indexes when they do not exist yet.
func MigrateUp(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate step %d: %w", i+1, err)
		}
	}
	return nil
}
