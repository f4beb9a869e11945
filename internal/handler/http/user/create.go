package user

import (
	"net/http"

	"articles-api/internal/domain/entity"
	"articles-api/internal/handler/http/binding"
	"articles-api/internal/handler/http/respond"
	userUC "articles-api/internal/usecase/user"
)

type CreateHandler struct{ Svc *userUC.Service }

// ServeHTTP creates a user.
// @Summary      Create user
// @Description  Creates a user with any role. Requires ADMIN.
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        user  body      CreateRequest  true  "New user"
// @Success      201   {object}  DTO
// @Failure      400   {object}  respond.ErrorBody       "Malformed JSON"
// @Failure      401   {object}  respond.ErrorBody
// @Failure      403   {object}  respond.ErrorBody       "Not an admin"
// @Failure      409   {object}  respond.DuplicateBody   "Username or email taken"
// @Failure      422   {object}  respond.ValidationBody
// @Router       /users [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := binding.Bind(r, &req); err != nil {
		respond.WriteError(w, err)
		return
	}
	hash, err := h.Svc.Hasher.Hash(req.Password)
	if err != nil {
		respond.WriteError(w, err)
		return
	}
	created, err := h.Svc.Create(r.Context(), entity.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         entity.Role(req.Role),
	})
	if err != nil {
		respond.WriteError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(created))
}
