package memory

import (
	"context"
	"errors"
	"sort"

	"articles-api/internal/domain/entity"
	"articles-api/internal/repository"
)

// Constraint names match the PostgreSQL schema.
const (
	usersUsernameKey = "users_username_key"
	usersEmailKey    = "users_email_key"
)

var errDuplicateKey = errors.New("duplicate key value")

type UserRepo struct{ s *Store }

var _ repository.UserRepository = (*UserRepo)(nil)

// conflict reports the unique constraint u would violate, ignoring the row
// with id self. Callers hold the lock.
func (r *UserRepo) conflict(u entity.User, self int64) string {
	for id, other := range r.s.users {
		if id == self {
			continue
		}
		if other.Username == u.Username {
			return usersUsernameKey
		}
		if other.Email == u.Email {
			return usersEmailKey
		}
	}
	return ""
}

func (r *UserRepo) Save(_ context.Context, u entity.User) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if c := r.conflict(u, 0); c != "" {
		return nil, &repository.UniqueViolationError{Constraint: c, Err: errDuplicateKey}
	}
	r.s.nextUserID++
	u.ID = r.s.nextUserID
	r.s.users[u.ID] = u
	return &u, nil
}

func (r *UserRepo) UpdateByID(_ context.Context, id int64, u entity.User) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[id]; !ok {
		return nil, nil
	}
	if c := r.conflict(u, id); c != "" {
		return nil, &repository.UniqueViolationError{Constraint: c, Err: errDuplicateKey}
	}
	u.ID = id
	r.s.users[id] = u
	return &u, nil
}

func (r *UserRepo) DeleteByID(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.users, id)
	r.s.cascadeUser(id)
	return nil
}

func (r *UserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) FindByIDs(_ context.Context, ids []int64) ([]*entity.User, error) {
	if len(ids) == 0 {
		return []*entity.User{}, nil
	}
	set := idSet(ids)
	return r.filter(func(u entity.User) bool {
		_, ok := set[u.ID]
		return ok
	}), nil
}

func (r *UserRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	return r.filter(func(entity.User) bool { return true }), nil
}

func (r *UserRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.users[id]
	return ok, nil
}

func (r *UserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.first(func(u entity.User) bool { return u.Username == username }), nil
}

func (r *UserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.first(func(u entity.User) bool { return u.Email == email }), nil
}

func (r *UserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	u, err := r.FindByUsername(ctx, username)
	return u != nil, err
}

func (r *UserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, err := r.FindByEmail(ctx, email)
	return u != nil, err
}

func (r *UserRepo) first(match func(entity.User) bool) *entity.User {
	if all := r.filter(match); len(all) > 0 {
		return all[0]
	}
	return nil
}

// filter returns matching users ordered by id.
func (r *UserRepo) filter(match func(entity.User) bool) []*entity.User {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		if match(u) {
			u := u
			out = append(out, &u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
