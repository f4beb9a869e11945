package user

import (
	"net/http"

	"articles-api/internal/domain/entity"
	"articles-api/internal/handler/http/pathutil"
	"articles-api/internal/handler/http/respond"
	userUC "articles-api/internal/usecase/user"
)

type ListHandler struct{ Svc *userUC.Service }

// ServeHTTP lists users, optionally restricted to ?ids=1,2.
// @Summary      List users
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        ids  query     string  false  "Comma separated user ids"
// @Success      200  {array}   DTO
// @Failure      400  {object}  respond.ErrorBody
// @Failure      401  {object}  respond.ErrorBody
// @Router       /users [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ids, filtered, err := pathutil.QueryIDs(r, "ids")
	if err != nil {
		respond.WriteError(w, respond.BadRequest("invalid ids", err))
		return
	}

	var users []*entity.User
	if filtered {
		users, err = h.Svc.FindByIDs(r.Context(), ids)
	} else {
		users, err = h.Svc.FindAll(r.Context())
	}
	if err != nil {
		respond.ReadError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(users))
}

type AuthorsHandler struct{ Svc *userUC.Service }

// ServeHTTP lists the co-authors of an article.
// @Summary      Authors of an article
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        articleId  path      int  true  "Article ID"
// @Success      200        {array}   DTO
// @Failure      400        {object}  respond.ErrorBody
// @Failure      401        {object}  respond.ErrorBody
// @Failure      404        {object}  respond.ErrorBody
// @Router       /users/authorship/{articleId} [get]
func (h AuthorsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathutil.PathID(r, "articleId")
	if err != nil {
		respond.WriteError(w, respond.BadRequest("invalid id", err))
		return
	}
	users, err := h.Svc.FindAuthorsByArticleID(r.Context(), articleID)
	if err != nil {
		respond.ReadError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(users))
}
