// Package auth authenticates requests with bearer JWTs, issues tokens on
// login and guards mutating routes with the edit-permission checker.
package auth

import (
	"context"

	"articles-api/internal/domain/entity"
)

type ctxKey string

const principalKey ctxKey = "principal"

// WithPrincipal stores p in ctx.
func WithPrincipal(ctx context.Context, p entity.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFrom returns the authenticated principal, if any.
func PrincipalFrom(ctx context.Context) (entity.Principal, bool) {
	p, ok := ctx.Value(principalKey).(entity.Principal)
	return p, ok
}
