package review

import (
	"encoding/json"
	"net/http"

	"articles-api/internal/handler/http/auth"
	"articles-api/internal/handler/http/pathutil"
	"articles-api/internal/handler/http/respond"
	reviewUC "articles-api/internal/usecase/review"
)

// Register mounts the review routes. A reviewer may only write as
// themselves; deletion checks the stored author.
func Register(mux *http.ServeMux, svc *reviewUC.Service, authz auth.Authorizer) {
	mux.Handle("GET    /reviews/{id}", GetHandler{svc})
	mux.Handle("GET    /reviews/articles/{id}", ByArticleHandler{svc})
	mux.Handle("GET    /reviews/users/{id}", ByAuthorHandler{svc})

	mux.Handle("POST   /reviews", auth.Guard(authz, "create", "review", bodyAuthor)(CreateHandler{svc}))
	mux.Handle("DELETE /reviews/{id}", auth.Guard(authz, "delete", "review", storedAuthor(svc))(DeleteHandler{svc}))
}

func bodyAuthor(r *http.Request) ([]int64, bool, error) {
	body, err := auth.PeekBody(r)
	if err != nil {
		return nil, false, err
	}
	var req struct {
		AuthorID int64 `json:"authorId"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, false, respond.BadRequest("malformed JSON body", err)
	}
	return []int64{req.AuthorID}, true, nil
}

// storedAuthor skips the check when the review does not exist.
func storedAuthor(svc *reviewUC.Service) auth.OwnerResolver {
	return func(r *http.Request) ([]int64, bool, error) {
		id, err := pathutil.PathID(r, "id")
		if err != nil {
			return nil, false, respond.BadRequest("invalid id", err)
		}
		authorID, found, err := svc.AuthorID(r.Context(), id)
		if err != nil || !found {
			return nil, false, err
		}
		return []int64{authorID}, true, nil
	}
}
