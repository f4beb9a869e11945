package article

import (
	"net/http"

	"articles-api/internal/handler/http/pathutil"
	"articles-api/internal/handler/http/respond"
	artUC "articles-api/internal/usecase/article"
)

type GetHandler struct{ Svc *artUC.Service }

// ServeHTTP returns one article.
// @Summary      Get article
// @Tags         articles
// @Security     BearerAuth
// @Produce      json
// @Param        id  path      int  true  "Article ID"
// @Success      200 {object}  DTO
// @Failure      400 {object}  respond.ErrorBody
// @Failure      401 {object}  respond.ErrorBody
// @Failure      404 {object}  respond.ErrorBody
// @Router       /articles/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.WriteError(w, respond.BadRequest("invalid id", err))
		return
	}
	a, err := h.Svc.FindByID(r.Context(), id)
	if err != nil {
		respond.ReadError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(a))
}
