// Package memory is an in-process implementation of the repository contracts.
// It mirrors the PostgreSQL schema's behavior: generated ids, unique
// username/email, foreign keys with cascading deletes and newest-first
// ordering of articles and reviews.
package memory

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"articles-api/internal/domain/entity"
)

// ErrForeignKey is returned when a write references a missing user or article.
var ErrForeignKey = errors.New("foreign key violation")

// Store holds all tables behind one lock.
type Store struct {
	mu sync.RWMutex

	users       map[int64]entity.User
	articles    map[int64]entity.Article
	reviews     map[int64]entity.Review
	authorships map[entity.Authorship]struct{}

	nextUserID    int64
	nextArticleID int64
	nextReviewID  int64

	now func() time.Time
}

// NewStore returns an empty store. Timestamps come from time.Now in UTC.
func NewStore() *Store {
	return &Store{
		users:       map[int64]entity.User{},
		articles:    map[int64]entity.Article{},
		reviews:     map[int64]entity.Review{},
		authorships: map[entity.Authorship]struct{}{},
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) Users() *UserRepo             { return &UserRepo{s: s} }
func (s *Store) Articles() *ArticleRepo       { return &ArticleRepo{s: s} }
func (s *Store) Reviews() *ReviewRepo         { return &ReviewRepo{s: s} }
func (s *Store) Authorships() *AuthorshipRepo { return &AuthorshipRepo{s: s} }

// cascadeUser removes rows referencing user id. Callers hold the write lock.
func (s *Store) cascadeUser(id int64) {
	for pair := range s.authorships {
		if pair.AuthorID == id {
			delete(s.authorships, pair)
		}
	}
	for rid, r := range s.reviews {
		if r.AuthorID == id {
			delete(s.reviews, rid)
		}
	}
}

// cascadeArticle removes rows referencing article id. Callers hold the write lock.
func (s *Store) cascadeArticle(id int64) {
	for pair := range s.authorships {
		if pair.ArticleID == id {
			delete(s.authorships, pair)
		}
	}
	for rid, r := range s.reviews {
		if r.ArticleID == id {
			delete(s.reviews, rid)
		}
	}
}

func fkError(table string, id int64) error {
	return fmt.Errorf("%w: %s %d does not exist", ErrForeignKey, table, id)
}

func sortedIDs(set map[int64]struct{}) []int64 {
	out := make([]int64, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func idSet(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// newestFirst orders by creation time then id, both descending.
func newestFirst(ti, tj time.Time, idi, idj int64) bool {
	if !ti.Equal(tj) {
		return ti.After(tj)
	}
	return idi > idj
}
