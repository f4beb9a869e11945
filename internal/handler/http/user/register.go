package user

import (
	"net/http"

	"articles-api/internal/domain/entity"
	"articles-api/internal/handler/http/auth"
	userUC "articles-api/internal/usecase/user"
)

// Register mounts the user routes. Creating users is reserved to admins;
// updates and deletes are guarded by edit permission on the path id.
func Register(mux *http.ServeMux, svc *userUC.Service, authz auth.Authorizer) {
	mux.Handle("GET    /users", ListHandler{svc})
	mux.Handle("GET    /users/{id}", GetHandler{svc})
	mux.Handle("GET    /users/authorship/{articleId}", AuthorsHandler{svc})

	mux.Handle("POST   /users", auth.RequireRole(entity.RoleAdmin, "user", CreateHandler{svc}))
	mux.Handle("PATCH  /users/{id}", auth.Guard(authz, "update", "user", auth.PathOwner("id"))(UpdateHandler{svc}))
	mux.Handle("DELETE /users/{id}", auth.Guard(authz, "delete", "user", auth.PathOwner("id"))(DeleteHandler{svc}))
}
