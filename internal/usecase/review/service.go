package review

import (
	"context"
	"fmt"
	"log/slog"

	"articles-api/internal/domain/entity"
	"articles-api/internal/observability/metrics"
	"articles-api/internal/repository"
)

const entityKind = "review"

// Service provides review management use cases.
type Service struct {
	Repo     repository.ReviewRepository
	Users    repository.UserRepository
	Articles repository.ArticleRepository
}

// Create checks that the author and the article exist, then stores the review.
func (s *Service) Create(ctx context.Context, r entity.Review) (*entity.Review, error) {
	if err := s.requireAuthor(ctx, r.AuthorID); err != nil {
		return nil, err
	}
	if err := s.requireArticle(ctx, r.ArticleID); err != nil {
		return nil, err
	}
	saved, err := s.Repo.Save(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	slog.InfoContext(ctx, "saved", slog.String("entity", entityKind), slog.Int64("id", saved.ID))
	metrics.RecordEntityOperation(entityKind, "create")
	return saved, nil
}

// DeleteByID is idempotent.
func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	slog.InfoContext(ctx, "deleted", slog.String("entity", entityKind), slog.Int64("id", id))
	metrics.RecordEntityOperation(entityKind, "delete")
	return nil
}

// FindByID returns ErrReviewNotFound when id does not exist.
func (s *Service) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	r, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find review: %w", err)
	}
	if r == nil {
		return nil, ErrReviewNotFound
	}
	return r, nil
}

func (s *Service) FindByAuthorID(ctx context.Context, authorID int64) ([]*entity.Review, error) {
	if err := s.requireAuthor(ctx, authorID); err != nil {
		return nil, err
	}
	return s.Repo.FindByAuthorID(ctx, authorID)
}

func (s *Service) FindByArticleID(ctx context.Context, articleID int64) ([]*entity.Review, error) {
	if err := s.requireArticle(ctx, articleID); err != nil {
		return nil, err
	}
	return s.Repo.FindByArticleID(ctx, articleID)
}

// AuthorID returns the stored author of review id, or false when the review
// does not exist.
func (s *Service) AuthorID(ctx context.Context, id int64) (int64, bool, error) {
	r, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return 0, false, fmt.Errorf("find review: %w", err)
	}
	if r == nil {
		return 0, false, nil
	}
	return r.AuthorID, true, nil
}

func (s *Service) requireAuthor(ctx context.Context, id int64) error {
	ok, err := s.Users.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("check author: %w", err)
	}
	if !ok {
		return ErrAuthorNotFound
	}
	return nil
}

func (s *Service) requireArticle(ctx context.Context, id int64) error {
	ok, err := s.Articles.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("check article: %w", err)
	}
	if !ok {
		return ErrArticleNotFound
	}
	return nil
}
