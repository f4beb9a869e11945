// Package permission decides whether a principal may edit resources owned by
// a set of users.
package permission

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"articles-api/internal/domain/entity"
	"articles-api/internal/observability/metrics"
	"articles-api/internal/observability/tracing"
	"articles-api/internal/repository"
)

// Checker evaluates edit permissions against current data on every call.
type Checker struct {
	Users repository.UserRepository
}

// HasEditPermission reports whether p may edit a resource owned by
// targetUserID. Admins always may. Others may only when the target user
// exists and has p's username.
func (c *Checker) HasEditPermission(ctx context.Context, p entity.Principal, targetUserID int64) (bool, error) {
	if p.IsAdmin() {
		return true, nil
	}
	target, err := c.Users.FindByID(ctx, targetUserID)
	if err != nil {
		return false, fmt.Errorf("find target user: %w", err)
	}
	if target == nil {
		return false, nil
	}
	return target.Username == p.Username, nil
}

// HasEditPermissionAny grants when any owner passes HasEditPermission.
// An empty owner list grants only to admins.
func (c *Checker) HasEditPermissionAny(ctx context.Context, p entity.Principal, ownerIDs []int64) (bool, error) {
	if p.IsAdmin() {
		return true, nil
	}
	for _, id := range ownerIDs {
		ok, err := c.HasEditPermission(ctx, p, id)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// Authorize returns an *entity.AccessDeniedError when p may not perform
// action on a resource owned by ownerIDs.
func (c *Checker) Authorize(ctx context.Context, p entity.Principal, action, resource string, ownerIDs []int64) error {
	ctx, span := tracing.Tracer().Start(ctx, "permission.Authorize")
	defer span.End()
	span.SetAttributes(
		attribute.String("authz.action", action),
		attribute.String("authz.resource", resource),
		attribute.Int64("authz.principal_id", p.UserID),
		attribute.Int("authz.owner_count", len(ownerIDs)),
	)

	ok, err := c.HasEditPermissionAny(ctx, p, ownerIDs)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetAttributes(attribute.Bool("authz.allowed", ok))
	metrics.RecordAuthorization(resource, ok)
	if !ok {
		slog.WarnContext(ctx, "edit permission denied",
			slog.String("username", p.Username),
			slog.String("role", string(p.Role)),
			slog.String("action", action),
			slog.String("resource", resource),
			slog.Any("owner_ids", ownerIDs))
		return &entity.AccessDeniedError{Action: action, Resource: resource}
	}
	return nil
}
