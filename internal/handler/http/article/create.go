package article

import (
	"net/http"

	"articles-api/internal/domain/entity"
	"articles-api/internal/handler/http/binding"
	"articles-api/internal/handler/http/respond"
	artUC "articles-api/internal/usecase/article"
)

type CreateHandler struct{ Svc *artUC.Service }

// ServeHTTP creates an article and its authorships.
// @Summary      Create article
// @Description  The caller must be one of authorIds unless they are an admin. An empty author list is admin only.
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        article  body      CreateRequest  true  "New article"
// @Success      201      {object}  DTO
// @Failure      400      {object}  respond.ErrorBody
// @Failure      401      {object}  respond.ErrorBody
// @Failure      403      {object}  respond.ErrorBody
// @Failure      422      {object}  respond.ValidationBody
// @Router       /articles [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := binding.Bind(r, &req); err != nil {
		respond.WriteError(w, err)
		return
	}
	created, err := h.Svc.Create(r.Context(), entity.Article{Topic: req.Topic, Content: req.Content}, req.AuthorIDs)
	if err != nil {
		respond.WriteError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(created))
}
