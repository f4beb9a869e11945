package review

import (
	"context"
	"net/http"

	"articles-api/internal/domain/entity"
	"articles-api/internal/handler/http/pathutil"
	"articles-api/internal/handler/http/respond"
	reviewUC "articles-api/internal/usecase/review"
)

type GetHandler struct{ Svc *reviewUC.Service }

// ServeHTTP returns one review.
// @Summary      Get review
// @Tags         reviews
// @Security     BearerAuth
// @Produce      json
// @Param        id  path      int  true  "Review ID"
// @Success      200 {object}  DTO
// @Failure      400 {object}  respond.ErrorBody
// @Failure      401 {object}  respond.ErrorBody
// @Failure      404 {object}  respond.ErrorBody
// @Router       /reviews/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.WriteError(w, respond.BadRequest("invalid id", err))
		return
	}
	rv, err := h.Svc.FindByID(r.Context(), id)
	if err != nil {
		respond.ReadError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(rv))
}

type ByArticleHandler struct{ Svc *reviewUC.Service }

// ServeHTTP lists an article's reviews, newest first.
// @Summary      Reviews of an article
// @Tags         reviews
// @Security     BearerAuth
// @Produce      json
// @Param        id  path      int  true  "Article ID"
// @Success      200 {array}   DTO
// @Failure      400 {object}  respond.ErrorBody
// @Failure      401 {object}  respond.ErrorBody
// @Failure      404 {object}  respond.ErrorBody
// @Router       /reviews/articles/{id} [get]
func (h ByArticleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.Svc.FindByArticleID)
}

type ByAuthorHandler struct{ Svc *reviewUC.Service }

// ServeHTTP lists a user's reviews, newest first.
// @Summary      Reviews by a user
// @Tags         reviews
// @Security     BearerAuth
// @Produce      json
// @Param        id  path      int  true  "User ID"
// @Success      200 {array}   DTO
// @Failure      400 {object}  respond.ErrorBody
// @Failure      401 {object}  respond.ErrorBody
// @Failure      404 {object}  respond.ErrorBody
// @Router       /reviews/users/{id} [get]
func (h ByAuthorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.Svc.FindByAuthorID)
}

func serveList(w http.ResponseWriter, r *http.Request, find func(context.Context, int64) ([]*entity.Review, error)) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.WriteError(w, respond.BadRequest("invalid id", err))
		return
	}
	reviews, err := find(r.Context(), id)
	if err != nil {
		respond.ReadError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(reviews))
}
