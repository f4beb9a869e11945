// Package repository declares the data-access contracts the use cases depend on.
// Implementations carry no business rules: they never pre-check existence and
// never turn storage failures into domain errors.
package repository

import (
	"context"
	"fmt"
)

// CrudRepository is the uniform per-entity contract.
//
// UpdateByID replaces the mutable fields of the row with the given id. When the
// id does not exist no row is touched and (nil, nil) is returned, so callers
// that need a NotFound must check first. DeleteByID is idempotent.
// FindByID returns (nil, nil) for a missing row. FindByIDs with an empty slice
// returns an empty result without touching storage.
type CrudRepository[T any] interface {
	Save(ctx context.Context, v T) (*T, error)
	UpdateByID(ctx context.Context, id int64, v T) (*T, error)
	DeleteByID(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*T, error)
	FindByIDs(ctx context.Context, ids []int64) ([]*T, error)
	FindAll(ctx context.Context) ([]*T, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// UniqueViolationError reports that a write was rejected by a unique
// constraint. Constraint carries the constraint name as reported by the store.
type UniqueViolationError struct {
	Constraint string
	Err        error
}

func (e *UniqueViolationError) Error() string {
	return fmt.Sprintf("unique constraint %q violated: %v", e.Constraint, e.Err)
}

func (e *UniqueViolationError) Unwrap() error { return e.Err }
