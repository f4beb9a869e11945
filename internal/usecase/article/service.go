package article

import (
	"context"
	"fmt"
	"log/slog"

	"articles-api/internal/domain/entity"
	"articles-api/internal/observability/metrics"
	"articles-api/internal/repository"
)

const entityKind = "article"

// Service provides article management use cases.
type Service struct {
	Repo        repository.ArticleRepository
	Authorships repository.AuthorshipRepository
	Users       repository.UserRepository
}

// Create stores the article and then links every distinct author in one
// batch. The two steps commit independently. An empty authorIDs creates an
// article without authors.
func (s *Service) Create(ctx context.Context, a entity.Article, authorIDs []int64) (*entity.Article, error) {
	saved, err := s.Repo.Save(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	slog.InfoContext(ctx, "saved", slog.String("entity", entityKind), slog.Int64("id", saved.ID))
	metrics.RecordEntityOperation(entityKind, "create")

	if pairs := entity.NewAuthorships(saved.ID, authorIDs); len(pairs) > 0 {
		if err := s.Authorships.Save(ctx, pairs); err != nil {
			return nil, fmt.Errorf("save authorships: %w", err)
		}
		slog.InfoContext(ctx, "saved",
			slog.String("entity", "authorship"),
			slog.Int64("article_id", saved.ID),
			slog.Int("authors", len(pairs)))
	}
	return saved, nil
}

// UpdateByID replaces topic and content of an existing article.
func (s *Service) UpdateByID(ctx context.Context, id int64, a entity.Article) (*entity.Article, error) {
	ok, err := s.Repo.ExistsByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check article: %w", err)
	}
	if !ok {
		return nil, ErrArticleNotFound
	}
	updated, err := s.Repo.UpdateByID(ctx, id, a)
	if err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	if updated == nil {
		return nil, ErrArticleNotFound
	}
	slog.InfoContext(ctx, "updated", slog.String("entity", entityKind), slog.Int64("id", id))
	metrics.RecordEntityOperation(entityKind, "update")
	return updated, nil
}

// DeleteByID is idempotent. Authorship and review rows go with the article.
func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	slog.InfoContext(ctx, "deleted", slog.String("entity", entityKind), slog.Int64("id", id))
	metrics.RecordEntityOperation(entityKind, "delete")
	return nil
}

// FindByID returns ErrArticleNotFound when id does not exist.
func (s *Service) FindByID(ctx context.Context, id int64) (*entity.Article, error) {
	a, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find article: %w", err)
	}
	if a == nil {
		return nil, ErrArticleNotFound
	}
	return a, nil
}

func (s *Service) FindByIDs(ctx context.Context, ids []int64) ([]*entity.Article, error) {
	return s.Repo.FindByIDs(ctx, ids)
}

func (s *Service) FindAll(ctx context.Context) ([]*entity.Article, error) {
	return s.Repo.FindAll(ctx)
}

func (s *Service) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return s.Repo.ExistsByID(ctx, id)
}

// FindArticlesByAuthorID fails with ErrAuthorNotFound when the user does
// not exist.
func (s *Service) FindArticlesByAuthorID(ctx context.Context, authorID int64) ([]*entity.Article, error) {
	ok, err := s.Users.ExistsByID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("check author: %w", err)
	}
	if !ok {
		return nil, ErrAuthorNotFound
	}
	ids, err := s.Authorships.FindArticleIDsByAuthorID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("find article ids: %w", err)
	}
	return s.Repo.FindByIDs(ctx, ids)
}

// AuthorIDs returns the ids of the article's current authors. A missing
// article has none.
func (s *Service) AuthorIDs(ctx context.Context, articleID int64) ([]int64, error) {
	ids, err := s.Authorships.FindAuthorIDsByArticleID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("find author ids: %w", err)
	}
	return ids, nil
}
