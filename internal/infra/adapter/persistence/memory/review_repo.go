package memory

import (
	"context"
	"sort"

	"articles-api/internal/domain/entity"
	"articles-api/internal/repository"
)

type ReviewRepo struct{ s *Store }

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

func (r *ReviewRepo) Save(_ context.Context, rv entity.Review) (*entity.Review, error) {
	if _, err := rv.Type.Code(); err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[rv.AuthorID]; !ok {
		return nil, fkError("user", rv.AuthorID)
	}
	if _, ok := r.s.articles[rv.ArticleID]; !ok {
		return nil, fkError("article", rv.ArticleID)
	}
	r.s.nextReviewID++
	rv.ID = r.s.nextReviewID
	rv.CreatedAt = r.s.now()
	r.s.reviews[rv.ID] = rv
	return &rv, nil
}

// UpdateByID replaces type and content.
func (r *ReviewRepo) UpdateByID(_ context.Context, id int64, rv entity.Review) (*entity.Review, error) {
	if _, err := rv.Type.Code(); err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.reviews[id]
	if !ok {
		return nil, nil
	}
	cur.Type = rv.Type
	cur.Content = rv.Content
	r.s.reviews[id] = cur
	return &cur, nil
}

func (r *ReviewRepo) DeleteByID(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.reviews, id)
	return nil
}

func (r *ReviewRepo) FindByID(_ context.Context, id int64) (*entity.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rv, ok := r.s.reviews[id]
	if !ok {
		return nil, nil
	}
	return &rv, nil
}

func (r *ReviewRepo) FindByIDs(_ context.Context, ids []int64) ([]*entity.Review, error) {
	if len(ids) == 0 {
		return []*entity.Review{}, nil
	}
	set := idSet(ids)
	return r.filter(func(rv entity.Review) bool {
		_, ok := set[rv.ID]
		return ok
	}), nil
}

func (r *ReviewRepo) FindAll(_ context.Context) ([]*entity.Review, error) {
	return r.filter(func(entity.Review) bool { return true }), nil
}

func (r *ReviewRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.reviews[id]
	return ok, nil
}

func (r *ReviewRepo) FindByAuthorID(_ context.Context, authorID int64) ([]*entity.Review, error) {
	return r.filter(func(rv entity.Review) bool { return rv.AuthorID == authorID }), nil
}

func (r *ReviewRepo) FindByArticleID(_ context.Context, articleID int64) ([]*entity.Review, error) {
	return r.filter(func(rv entity.Review) bool { return rv.ArticleID == articleID }), nil
}

func (r *ReviewRepo) filter(match func(entity.Review) bool) []*entity.Review {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*entity.Review, 0, len(r.s.reviews))
	for _, rv := range r.s.reviews {
		if match(rv) {
			rv := rv
			out = append(out, &rv)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return newestFirst(out[i].CreatedAt, out[j].CreatedAt, out[i].ID, out[j].ID)
	})
	return out
}
