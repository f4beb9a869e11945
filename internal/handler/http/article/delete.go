package article

import (
	"net/http"

	"articles-api/internal/handler/http/pathutil"
	"articles-api/internal/handler/http/respond"
	artUC "articles-api/internal/usecase/article"
)

type DeleteHandler struct{ Svc *artUC.Service }

// ServeHTTP deletes an article together with its authorships and reviews.
// @Summary      Delete article
// @Tags         articles
// @Security     BearerAuth
// @Param        id  path  int  true  "Article ID"
// @Success      204 "No Content"
// @Failure      400 {object} respond.ErrorBody
// @Failure      401 {object} respond.ErrorBody
// @Failure      403 {object} respond.ErrorBody
// @Router       /articles/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.WriteError(w, respond.BadRequest("invalid id", err))
		return
	}
	if err := h.Svc.DeleteByID(r.Context(), id); err != nil {
		respond.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
