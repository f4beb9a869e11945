// Package registration serves public self sign-up.
package registration

import (
	"net/http"

	"articles-api/internal/handler/http/binding"
	"articles-api/internal/handler/http/respond"
	"articles-api/internal/handler/http/user"
	regUC "articles-api/internal/usecase/registration"
)

// Request is the body of POST /registration.
type Request struct {
	Username string `json:"username" validate:"min=5,max=30" example:"alice"`
	Email    string `json:"email" validate:"min=5,max=50,email" example:"alice@example.com"`
	Password string `json:"password" validate:"min=5,max=50" example:"secret-password"`
}

type Handler struct{ Svc *regUC.Service }

// ServeHTTP registers a new USER account.
// @Summary      Register
// @Description  Creates an account with the USER role.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        account  body      Request  true  "Sign-up data"
// @Success      201      {object}  user.DTO
// @Failure      400      {object}  respond.ErrorBody
// @Failure      409      {object}  respond.DuplicateBody
// @Failure      422      {object}  respond.ValidationBody
// @Failure      429      {object}  respond.ErrorBody
// @Router       /registration [post]
func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := binding.Bind(r, &req); err != nil {
		respond.WriteError(w, err)
		return
	}
	created, err := h.Svc.Register(r.Context(), regUC.Input{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respond.WriteError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, user.DTO{
		ID:       created.ID,
		Username: created.Username,
		Email:    created.Email,
		Role:     string(created.Role),
	})
}
