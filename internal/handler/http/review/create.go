package review

import (
	"net/http"

	"articles-api/internal/domain/entity"
	"articles-api/internal/handler/http/binding"
	"articles-api/internal/handler/http/respond"
	reviewUC "articles-api/internal/usecase/review"
)

type CreateHandler struct{ Svc *reviewUC.Service }

// ServeHTTP creates a review.
// @Summary      Create review
// @Description  authorId must be the caller unless the caller is an admin.
// @Tags         reviews
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        review  body      CreateRequest  true  "New review"
// @Success      201     {object}  DTO
// @Failure      400     {object}  respond.ErrorBody
// @Failure      401     {object}  respond.ErrorBody
// @Failure      403     {object}  respond.ErrorBody
// @Failure      422     {object}  respond.ValidationBody
// @Failure      500     {object}  respond.ErrorBody  "Unknown author or article"
// @Router       /reviews [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := binding.Bind(r, &req); err != nil {
		respond.WriteError(w, err)
		return
	}
	created, err := h.Svc.Create(r.Context(), entity.Review{
		Type:      entity.ReviewType(req.Type),
		Content:   req.Content,
		AuthorID:  req.AuthorID,
		ArticleID: req.ArticleID,
	})
	if err != nil {
		respond.WriteError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(created))
}
