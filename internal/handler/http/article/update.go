package article

import (
	"net/http"

	"articles-api/internal/domain/entity"
	"articles-api/internal/handler/http/binding"
	"articles-api/internal/handler/http/pathutil"
	"articles-api/internal/handler/http/respond"
	artUC "articles-api/internal/usecase/article"
)

type UpdateHandler struct{ Svc *artUC.Service }

// ServeHTTP replaces an article's topic and content.
// @Summary      Update article
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int            true  "Article ID"
// @Param        article  body      UpdateRequest  true  "Topic and content"
// @Success      200      {object}  DTO
// @Failure      400      {object}  respond.ErrorBody
// @Failure      401      {object}  respond.ErrorBody
// @Failure      403      {object}  respond.ErrorBody
// @Failure      422      {object}  respond.ValidationBody
// @Failure      500      {object}  respond.ErrorBody  "Unknown article"
// @Router       /articles/{id} [patch]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.WriteError(w, respond.BadRequest("invalid id", err))
		return
	}
	var req UpdateRequest
	if err := binding.Bind(r, &req); err != nil {
		respond.WriteError(w, err)
		return
	}
	updated, err := h.Svc.UpdateByID(r.Context(), id, entity.Article{Topic: req.Topic, Content: req.Content})
	if err != nil {
		respond.WriteError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(updated))
}
