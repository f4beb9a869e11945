package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"articles-api/internal/domain/entity"
	"articles-api/internal/infra/password"
	"articles-api/internal/observability/metrics"
	"articles-api/internal/repository"
)

const entityKind = "user"

// UpdateInput carries a partial update. Nil fields keep their stored value.
// Password is plaintext and is hashed before it is stored.
type UpdateInput struct {
	ID       int64
	Username *string
	Email    *string
	Password *string
	Role     *entity.Role
}

// Service provides user management use cases.
type Service struct {
	Repo        repository.UserRepository
	Articles    repository.ArticleRepository
	Authorships repository.AuthorshipRepository
	Hasher      password.Hasher
}

// Create stores u after checking that its username, then its email, are
// free. Only the first violation is reported.
func (s *Service) Create(ctx context.Context, u entity.User) (*entity.User, error) {
	if err := s.checkUnique(ctx, u, nil); err != nil {
		return nil, err
	}
	saved, err := s.Repo.Save(ctx, u)
	if err != nil {
		return nil, s.translate("create user", err)
	}
	slog.InfoContext(ctx, "saved", slog.String("entity", entityKind), slog.Int64("id", saved.ID))
	metrics.RecordEntityOperation(entityKind, "create")
	return saved, nil
}

// UpdateByID replaces the stored user. Uniqueness is re-checked only for
// the fields whose value changes.
func (s *Service) UpdateByID(ctx context.Context, id int64, u entity.User) (*entity.User, error) {
	current, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if current == nil {
		return nil, ErrUserNotFound
	}
	return s.replace(ctx, current, u)
}

// Update applies a partial update.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.User, error) {
	current, err := s.Repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if current == nil {
		return nil, ErrUserNotFound
	}

	next := *current
	if in.Username != nil {
		next = next.WithUsername(*in.Username)
	}
	if in.Email != nil {
		next = next.WithEmail(*in.Email)
	}
	if in.Role != nil {
		next = next.WithRole(*in.Role)
	}
	if in.Password != nil {
		hash, err := s.Hasher.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		next = next.WithPasswordHash(hash)
	}
	return s.replace(ctx, current, next)
}

func (s *Service) replace(ctx context.Context, current *entity.User, u entity.User) (*entity.User, error) {
	if err := s.checkUnique(ctx, u, current); err != nil {
		return nil, err
	}
	updated, err := s.Repo.UpdateByID(ctx, current.ID, u)
	if err != nil {
		return nil, s.translate("update user", err)
	}
	if updated == nil {
		// deleted between the lookup and the write
		return nil, ErrUserNotFound
	}
	slog.InfoContext(ctx, "updated", slog.String("entity", entityKind), slog.Int64("id", updated.ID))
	metrics.RecordEntityOperation(entityKind, "update")
	return updated, nil
}

// checkUnique checks username before email. With a non-nil current row,
// unchanged fields are skipped.
func (s *Service) checkUnique(ctx context.Context, u entity.User, current *entity.User) error {
	if current == nil || current.Username != u.Username {
		taken, err := s.Repo.ExistsByUsername(ctx, u.Username)
		if err != nil {
			return fmt.Errorf("check username: %w", err)
		}
		if taken {
			return duplicate(entity.FieldUsername)
		}
	}
	if current == nil || current.Email != u.Email {
		taken, err := s.Repo.ExistsByEmail(ctx, u.Email)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if taken {
			return duplicate(entity.FieldEmail)
		}
	}
	return nil
}

// translate turns a unique-constraint rejection that slipped past the
// pre-check into a Duplicate error.
func (s *Service) translate(op string, err error) error {
	var uv *repository.UniqueViolationError
	if errors.As(err, &uv) {
		switch {
		case strings.Contains(uv.Constraint, entity.FieldUsername):
			return duplicate(entity.FieldUsername)
		case strings.Contains(uv.Constraint, entity.FieldEmail):
			return duplicate(entity.FieldEmail)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func duplicate(field string) error {
	metrics.RecordDuplicateRejection(field)
	return entity.NewDuplicateError(field)
}

// DeleteByID is idempotent.
func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	slog.InfoContext(ctx, "deleted", slog.String("entity", entityKind), slog.Int64("id", id))
	metrics.RecordEntityOperation(entityKind, "delete")
	return nil
}

// FindByID returns ErrUserNotFound when id does not exist.
func (s *Service) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	u, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// FindByUsername returns (nil, nil) when no user has username.
func (s *Service) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return s.Repo.FindByUsername(ctx, username)
}

func (s *Service) FindByIDs(ctx context.Context, ids []int64) ([]*entity.User, error) {
	return s.Repo.FindByIDs(ctx, ids)
}

func (s *Service) FindAll(ctx context.Context) ([]*entity.User, error) {
	return s.Repo.FindAll(ctx)
}

func (s *Service) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return s.Repo.ExistsByID(ctx, id)
}

func (s *Service) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return s.Repo.ExistsByUsername(ctx, username)
}

func (s *Service) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.Repo.ExistsByEmail(ctx, email)
}

// FindAuthorsByArticleID returns the co-authors of an article.
func (s *Service) FindAuthorsByArticleID(ctx context.Context, articleID int64) ([]*entity.User, error) {
	ok, err := s.Articles.ExistsByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("check article: %w", err)
	}
	if !ok {
		return nil, ErrArticleNotFound
	}
	ids, err := s.Authorships.FindAuthorIDsByArticleID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("find author ids: %w", err)
	}
	return s.Repo.FindByIDs(ctx, ids)
}
