package article

import (
	"net/http"

	"articles-api/internal/domain/entity"
	"articles-api/internal/handler/http/pathutil"
	"articles-api/internal/handler/http/respond"
	artUC "articles-api/internal/usecase/article"
)

type ListHandler struct{ Svc *artUC.Service }

// ServeHTTP lists articles, optionally restricted to ?ids=1,2.
// @Summary      List articles
// @Tags         articles
// @Security     BearerAuth
// @Produce      json
// @Param        ids  query     string  false  "Comma separated article ids"
// @Success      200  {array}   DTO
// @Failure      400  {object}  respond.ErrorBody
// @Failure      401  {object}  respond.ErrorBody
// @Router       /articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ids, filtered, err := pathutil.QueryIDs(r, "ids")
	if err != nil {
		respond.WriteError(w, respond.BadRequest("invalid ids", err))
		return
	}

	var articles []*entity.Article
	if filtered {
		articles, err = h.Svc.FindByIDs(r.Context(), ids)
	} else {
		articles, err = h.Svc.FindAll(r.Context())
	}
	if err != nil {
		respond.ReadError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(articles))
}

type ByAuthorHandler struct{ Svc *artUC.Service }

// ServeHTTP lists the articles a user co-authored.
// @Summary      Articles by author
// @Tags         articles
// @Security     BearerAuth
// @Produce      json
// @Param        authorId  path      int  true  "User ID"
// @Success      200       {array}   DTO
// @Failure      400       {object}  respond.ErrorBody
// @Failure      401       {object}  respond.ErrorBody
// @Failure      404       {object}  respond.ErrorBody
// @Router       /articles/authorship/{authorId} [get]
func (h ByAuthorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	authorID, err := pathutil.PathID(r, "authorId")
	if err != nil {
		respond.WriteError(w, respond.BadRequest("invalid id", err))
		return
	}
	articles, err := h.Svc.FindArticlesByAuthorID(r.Context(), authorID)
	if err != nil {
		respond.ReadError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(articles))
}
