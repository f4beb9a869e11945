package user

import (
	"net/http"

	"articles-api/internal/domain/entity"
	"articles-api/internal/handler/http/auth"
	"articles-api/internal/handler/http/binding"
	"articles-api/internal/handler/http/pathutil"
	"articles-api/internal/handler/http/respond"
	userUC "articles-api/internal/usecase/user"
)

type UpdateHandler struct{ Svc *userUC.Service }

// ServeHTTP partially updates a user.
// @Summary      Update user
// @Description  Updates the supplied fields. Users may edit themselves; only admins may set a role.
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path      int            true  "User ID"
// @Param        user  body      UpdateRequest  true  "Fields to change"
// @Success      200   {object}  DTO
// @Failure      400   {object}  respond.ErrorBody
// @Failure      401   {object}  respond.ErrorBody
// @Failure      403   {object}  respond.ErrorBody
// @Failure      409   {object}  respond.DuplicateBody
// @Failure      422   {object}  respond.ValidationBody
// @Failure      500   {object}  respond.ErrorBody  "Unknown user"
// @Router       /users/{id} [patch]
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

	in := userUC.UpdateInput{ID: id, Username: req.Username, Email: req.Email, Password: req.Password}
	if req.Role != nil {
		if p, _ := auth.PrincipalFrom(r.Context()); !p.IsAdmin() {
			respond.WriteError(w, &entity.AccessDeniedError{Action: "change role", Resource: "user"})
			return
		}
		role := entity.Role(*req.Role)
		in.Role = &role
	}

	updated, err := h.Svc.Update(r.Context(), in)
	if err != nil {
		respond.WriteError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(updated))
}
