package auth

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	"articles-api/internal/domain/entity"
	"articles-api/internal/handler/http/pathutil"
	"articles-api/internal/handler/http/respond"
)

// Authorizer decides whether a principal may act on a resource owned by ownerIDs.
type Authorizer interface {
	Authorize(ctx context.Context, p entity.Principal, action, resource string, ownerIDs []int64) error
}

// OwnerResolver returns the users who own the resource a request targets.
// found=false skips the check and lets the handler decide, e.g. an
// idempotent delete of something already gone.
type OwnerResolver func(r *http.Request) (ownerIDs []int64, found bool, err error)

// Guard runs the edit-permission check before next.
func Guard(authz Authorizer, action, resource string, owners OwnerResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFrom(r.Context())
			if !ok {
				unauthorized(w, "no_principal")
				return
			}
			ids, found, err := owners(r)
			if err != nil {
				respond.WriteError(w, err)
				return
			}
			if found {
				if err := authz.Authorize(r.Context(), p, action, resource, ids); err != nil {
					RecordForbiddenAttempt(resource, r.Method)
					respond.WriteError(w, err)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// PeekBody reads the request body and puts an identical reader back so the
// handler can decode it again. Read failures come back as an AppError: 413
// for an oversized body, 400 otherwise.
func PeekBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	b, err := io.ReadAll(r.Body)
	_ = r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(b))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, respond.NewAppError(http.StatusRequestEntityTooLarge, "request body too large", err)
		}
		return nil, respond.BadRequest("unreadable body", err)
	}
	return b, nil
}

// PathOwner resolves the owner as the user id in path wildcard name. It is
// used where the resource is the user itself.
func PathOwner(name string) OwnerResolver {
	return func(r *http.Request) ([]int64, bool, error) {
		id, err := pathutil.PathID(r, name)
		if err != nil {
			return nil, false, respond.BadRequest("invalid id", err)
		}
		return []int64{id}, true, nil
	}
}
