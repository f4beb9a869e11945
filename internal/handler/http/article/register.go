package article

import (
	"encoding/json"
	"net/http"

	"articles-api/internal/handler/http/auth"
	"articles-api/internal/handler/http/pathutil"
	"articles-api/internal/handler/http/respond"
	artUC "articles-api/internal/usecase/article"
)

// Register mounts the article routes. Mutations require edit permission on
// any one of the article's authors: the proposed ones on create, the
// stored ones on update and delete.
func Register(mux *http.ServeMux, svc *artUC.Service, authz auth.Authorizer) {
	mux.Handle("GET    /articles", ListHandler{svc})
	mux.Handle("GET    /articles/{id}", GetHandler{svc})
	mux.Handle("GET    /articles/authorship/{authorId}", ByAuthorHandler{svc})

	mux.Handle("POST   /articles", auth.Guard(authz, "create", "article", proposedAuthors)(CreateHandler{svc}))
	mux.Handle("PATCH  /articles/{id}", auth.Guard(authz, "update", "article", currentAuthors(svc))(UpdateHandler{svc}))
	mux.Handle("DELETE /articles/{id}", auth.Guard(authz, "delete", "article", currentAuthors(svc))(DeleteHandler{svc}))
}

// proposedAuthors reads authorIds from the create body.
func proposedAuthors(r *http.Request) ([]int64, bool, error) {
	body, err := auth.PeekBody(r)
	if err != nil {
		return nil, false, err
	}
	var req struct {
		AuthorIDs []int64 `json:"authorIds"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, false, respond.BadRequest("malformed JSON body", err)
	}
	return req.AuthorIDs, true, nil
}

// currentAuthors looks up the stored authors of the article in the path.
// A missing article has no authors, so only admins pass.
func currentAuthors(svc *artUC.Service) auth.OwnerResolver {
	return func(r *http.Request) ([]int64, bool, error) {
		id, err := pathutil.PathID(r, "id")
		if err != nil {
			return nil, false, respond.BadRequest("invalid id", err)
		}
		ids, err := svc.AuthorIDs(r.Context(), id)
		if err != nil {
			return nil, false, err
		}
		return ids, true, nil
	}
}
