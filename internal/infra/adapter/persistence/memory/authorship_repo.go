package memory

import (
	"context"
	"fmt"

	"articles-api/internal/domain/entity"
	"articles-api/internal/repository"
)

type AuthorshipRepo struct{ s *Store }

var _ repository.AuthorshipRepository = (*AuthorshipRepo)(nil)

// Save validates every pair before writing any, so a failing batch leaves
// the table untouched.
func (r *AuthorshipRepo) Save(_ context.Context, pairs []entity.Authorship) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	seen := make(map[entity.Authorship]struct{}, len(pairs))
	for _, p := range pairs {
		if _, ok := r.s.articles[p.ArticleID]; !ok {
			return fkError("article", p.ArticleID)
		}
		if _, ok := r.s.users[p.AuthorID]; !ok {
			return fkError("user", p.AuthorID)
		}
		_, dup := seen[p]
		if _, exists := r.s.authorships[p]; exists || dup {
			return &repository.UniqueViolationError{
				Constraint: "authorship_of_articles_pkey",
				Err:        fmt.Errorf("pair (%d, %d) already exists", p.ArticleID, p.AuthorID),
			}
		}
		seen[p] = struct{}{}
	}
	for p := range seen {
		r.s.authorships[p] = struct{}{}
	}
	return nil
}

func (r *AuthorshipRepo) FindAuthorIDsByArticleID(_ context.Context, articleID int64) ([]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	set := map[int64]struct{}{}
	for p := range r.s.authorships {
		if p.ArticleID == articleID {
			set[p.AuthorID] = struct{}{}
		}
	}
	return sortedIDs(set), nil
}

func (r *AuthorshipRepo) FindArticleIDsByAuthorID(_ context.Context, authorID int64) ([]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	set := map[int64]struct{}{}
	for p := range r.s.authorships {
		if p.AuthorID == authorID {
			set[p.ArticleID] = struct{}{}
		}
	}
	return sortedIDs(set), nil
}

func (r *AuthorshipRepo) Exists(_ context.Context, pair entity.Authorship) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.authorships[pair]
	return ok, nil
}
