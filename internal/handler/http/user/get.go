package user

import (
	"net/http"

	"articles-api/internal/handler/http/pathutil"
	"articles-api/internal/handler/http/respond"
	userUC "articles-api/internal/usecase/user"
)

type GetHandler struct{ Svc *userUC.Service }

// ServeHTTP returns one user.
// @Summary      Get user
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        id  path      int  true  "User ID"
// @Success      200 {object}  DTO
// @Failure      400 {object}  respond.ErrorBody
// @Failure      401 {object}  respond.ErrorBody
// @Failure      404 {object}  respond.ErrorBody
// @Router       /users/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.WriteError(w, respond.BadRequest("invalid id", err))
		return
	}
	u, err := h.Svc.FindByID(r.Context(), id)
	if err != nil {
		respond.ReadError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(u))
}
