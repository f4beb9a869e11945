package permission_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"articles-api/internal/domain/entity"
	"articles-api/internal/infra/adapter/persistence/memory"
	"articles-api/internal/usecase/permission"
)

func setup(t *testing.T) (*permission.Checker, *entity.User, *entity.User) {
	t.Helper()
	st := memory.NewStore()
	ctx := context.Background()
	alice, err := st.Users().Save(ctx, entity.User{Username: "alice", Email: "a@x.com", Role: entity.RoleUser})
	require.NoError(t, err)
	bob, err := st.Users().Save(ctx, entity.User{Username: "bobby", Email: "b@x.com", Role: entity.RoleUser})
	require.NoError(t, err)
	return &permission.Checker{Users: st.Users()}, alice, bob
}

func principalOf(u *entity.User) entity.Principal {
	return entity.Principal{UserID: u.ID, Username: u.Username, Role: u.Role}
}

var admin = entity.Principal{UserID: 100, Username: "root", Role: entity.RoleAdmin}

func TestHasEditPermission(t *testing.T) {
	c, alice, bob := setup(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		p      entity.Principal
		target int64
		want   bool
	}{
		{"self", principalOf(alice), alice.ID, true},
		{"someone else", principalOf(alice), bob.ID, false},
		{"missing target is denied", principalOf(alice), 999, false},
		{"admin on anyone", admin, bob.ID, true},
		{"admin on missing target", admin, 999, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.HasEditPermission(ctx, tt.p, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasEditPermissionAny(t *testing.T) {
	c, alice, bob := setup(t)
	ctx := context.Background()

	ok, err := c.HasEditPermissionAny(ctx, principalOf(alice), []int64{bob.ID, alice.ID})
	require.NoError(t, err)
	assert.True(t, ok, "one matching co-author is enough")

	ok, err = c.HasEditPermissionAny(ctx, principalOf(alice), []int64{bob.ID, 999})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = c.HasEditPermissionAny(ctx, principalOf(alice), nil)
	require.NoError(t, err)
	assert.False(t, ok, "empty owner list is not vacuously permitted")

	ok, err = c.HasEditPermissionAny(ctx, admin, nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAuthorize(t *testing.T) {
	c, alice, bob := setup(t)
	ctx := context.Background()

	assert.NoError(t, c.Authorize(ctx, principalOf(bob), "update", "article", []int64{bob.ID}))

	err := c.Authorize(ctx, principalOf(alice), "delete", "review", []int64{bob.ID})
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrAccessDenied)

	var denied *entity.AccessDeniedError
	require.True(t, errors.As(err, &denied))
	assert.Equal(t, "delete", denied.Action)
	assert.Equal(t, "review", denied.Resource)
}

type failingUsers struct{ *memory.UserRepo }

var errStorage = errors.New("connection reset")

func (failingUsers) FindByID(context.Context, int64) (*entity.User, error) { return nil, errStorage }

func TestAuthorize_StorageErrorIsNotDenial(t *testing.T) {
	c := &permission.Checker{Users: failingUsers{memory.NewStore().Users()}}
	p := entity.Principal{UserID: 1, Username: "alice", Role: entity.RoleUser}

	err := c.Authorize(context.Background(), p, "update", "user", []int64{1})
	assert.ErrorIs(t, err, errStorage)
	assert.NotErrorIs(t, err, entity.ErrAccessDenied)
}
