package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"articles-api/internal/handler/http/binding"
	"articles-api/internal/handler/http/respond"
	"articles-api/internal/observability/logging"
	authservice "articles-api/internal/service/auth"
)

// LoginRequest is the body of POST /auth/token.
type LoginRequest struct {
	Username string `json:"username" validate:"min=5,max=30" example:"alice"`
	Password string `json:"password" validate:"min=5,max=50" example:"secret-password"`
}

// TokenResponse carries the issued bearer token.
type TokenResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// TokenHandler godoc
// @Summary      Issue a bearer token
// @Description  Verifies username and password and returns a signed JWT
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      LoginRequest  true  "Login credentials"
// @Success      200          {object}  TokenResponse
// @Failure      400          {object}  respond.ErrorBody
// @Failure      401          {object}  respond.ErrorBody
// @Failure      422          {object}  respond.ValidationBody
// @Failure      429          {object}  respond.ErrorBody
// @Router       /auth/token [post]
func TokenHandler(svc *authservice.AuthService, tokens *Tokens) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		logger := logging.FromContext(r.Context())
		fail := func(reason string) {
			logger.Warn("authentication failed",
				slog.String("reason", reason),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest("failure")
			RecordAuthDuration(time.Since(start).Seconds())
		}

		var req LoginRequest
		if err := binding.Bind(r, &req); err != nil {
			fail("invalid_request")
			respond.WriteError(w, err)
			return
		}

		u, err := svc.Authenticate(r.Context(), authservice.Credentials{Username: req.Username, Password: req.Password})
		if err != nil {
			if errors.Is(err, authservice.ErrInvalidCredentials) {
				fail("invalid_credentials")
				respond.JSON(w, http.StatusUnauthorized, respond.ErrorBody{Error: "unauthorized"})
				return
			}
			fail("lookup_failed")
			respond.WriteError(w, err)
			return
		}

		signed, err := tokens.Issue(u)
		if err != nil {
			fail("token_generation_failed")
			respond.WriteError(w, err)
			return
		}

		logger.Info("authentication successful",
			slog.String("username", u.Username),
			slog.String("role", string(u.Role)),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		RecordAuthRequest("success")
		RecordAuthDuration(time.Since(start).Seconds())

		respond.JSON(w, http.StatusOK, TokenResponse{Token: signed})
	}
}
