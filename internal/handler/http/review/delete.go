package review

import (
	"net/http"

	"articles-api/internal/handler/http/pathutil"
	"articles-api/internal/handler/http/respond"
	reviewUC "articles-api/internal/usecase/review"
)

type DeleteHandler struct{ Svc *reviewUC.Service }

// ServeHTTP deletes a review. Deleting an absent review succeeds.
// @Summary      Delete review
// @Tags         reviews
// @Security     BearerAuth
// @Param        id  path  int  true  "Review ID"
// @Success      204 "No Content"
// @Failure      400 {object} respond.ErrorBody
// @Failure      401 {object} respond.ErrorBody
// @Failure      403 {object} respond.ErrorBody
// @Router       /reviews/{id} [delete]
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
