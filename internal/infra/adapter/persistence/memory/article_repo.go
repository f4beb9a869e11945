package memory

import (
	"context"
	"sort"

	"articles-api/internal/domain/entity"
	"articles-api/internal/repository"
)

type ArticleRepo struct{ s *Store }

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

func (r *ArticleRepo) Save(_ context.Context, a entity.Article) (*entity.Article, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextArticleID++
	a.ID = r.s.nextArticleID
	a.CreatedAt = r.s.now()
	r.s.articles[a.ID] = a
	return &a, nil
}

// UpdateByID replaces topic and content; the creation time is kept.
func (r *ArticleRepo) UpdateByID(_ context.Context, id int64, a entity.Article) (*entity.Article, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.articles[id]
	if !ok {
		return nil, nil
	}
	cur.Topic = a.Topic
	cur.Content = a.Content
	r.s.articles[id] = cur
	return &cur, nil
}

func (r *ArticleRepo) DeleteByID(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.articles, id)
	r.s.cascadeArticle(id)
	return nil
}

func (r *ArticleRepo) FindByID(_ context.Context, id int64) (*entity.Article, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.articles[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *ArticleRepo) FindByIDs(_ context.Context, ids []int64) ([]*entity.Article, error) {
	if len(ids) == 0 {
		return []*entity.Article{}, nil
	}
	set := idSet(ids)
	return r.filter(func(a entity.Article) bool {
		_, ok := set[a.ID]
		return ok
	}), nil
}

func (r *ArticleRepo) FindAll(_ context.Context) ([]*entity.Article, error) {
	return r.filter(func(entity.Article) bool { return true }), nil
}

func (r *ArticleRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.articles[id]
	return ok, nil
}

func (r *ArticleRepo) filter(match func(entity.Article) bool) []*entity.Article {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*entity.Article, 0, len(r.s.articles))
	for _, a := range r.s.articles {
		if match(a) {
			a := a
			out = append(out, &a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return newestFirst(out[i].CreatedAt, out[j].CreatedAt, out[i].ID, out[j].ID)
	})
	return out
}
