package review_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"articles-api/internal/domain/entity"
	"articles-api/internal/infra/adapter/persistence/memory"
	reviewUC "articles-api/internal/usecase/review"
)

type fixture struct {
	svc     *reviewUC.Service
	author  *entity.User
	article *entity.Article
}

func setup(t *testing.T) fixture {
	t.Helper()
	st := memory.NewStore()
	ctx := context.Background()
	u, err := st.Users().Save(ctx, entity.User{Username: "alice", Email: "a@x.com", PasswordHash: "h", Role: entity.RoleUser})
	require.NoError(t, err)
	a, err := st.Articles().Save(ctx, entity.Article{Topic: "T", Content: "C"})
	require.NoError(t, err)
	return fixture{
		svc:     &reviewUC.Service{Repo: st.Reviews(), Users: st.Users(), Articles: st.Articles()},
		author:  u,
		article: a,
	}
}

func (f fixture) review(t entity.ReviewType) entity.Review {
	return entity.Review{Type: t, Content: "text", AuthorID: f.author.ID, ArticleID: f.article.ID}
}

func TestService_Create(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	saved, err := f.svc.Create(ctx, f.review(entity.ReviewCritical))
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.Equal(t, entity.ReviewCritical, saved.Type)

	found, err := f.svc.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, found)
}

func TestService_Create_PreChecksReferences(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	r := f.review(entity.ReviewPositive)
	r.AuthorID = 999
	_, err := f.svc.Create(ctx, r)
	assert.ErrorIs(t, err, reviewUC.ErrAuthorNotFound)

	r = f.review(entity.ReviewPositive)
	r.ArticleID = 999
	_, err = f.svc.Create(ctx, r)
	assert.ErrorIs(t, err, reviewUC.ErrArticleNotFound)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_FindByAuthorAndArticle(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	_, _ = f.svc.Create(ctx, f.review(entity.ReviewPositive))
	_, _ = f.svc.Create(ctx, f.review(entity.ReviewNeutral))

	byAuthor, err := f.svc.FindByAuthorID(ctx, f.author.ID)
	require.NoError(t, err)
	assert.Len(t, byAuthor, 2)

	byArticle, err := f.svc.FindByArticleID(ctx, f.article.ID)
	require.NoError(t, err)
	assert.Len(t, byArticle, 2)

	_, err = f.svc.FindByAuthorID(ctx, 404)
	assert.ErrorIs(t, err, entity.ErrNotFound)
	_, err = f.svc.FindByArticleID(ctx, 404)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_DeleteAndAuthorID(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	saved, _ := f.svc.Create(ctx, f.review(entity.ReviewPositive))

	authorID, ok, err := f.svc.AuthorID(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, f.author.ID, authorID)

	require.NoError(t, f.svc.DeleteByID(ctx, saved.ID))
	require.NoError(t, f.svc.DeleteByID(ctx, saved.ID))

	_, ok, err = f.svc.AuthorID(ctx, saved.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = f.svc.FindByID(ctx, saved.ID)
	assert.ErrorIs(t, err, reviewUC.ErrReviewNotFound)
}
