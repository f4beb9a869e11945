package auth

import (
	"log/slog"
	"net/http"

	"articles-api/internal/domain/entity"
	"articles-api/internal/handler/http/respond"
	"articles-api/internal/observability/logging"
	authservice "articles-api/internal/service/auth"
)

// Authn authenticates every non-public request. A valid token whose user no
// longer exists is rejected, so deleted accounts lose access immediately.
// The principal is built from the stored user.
func Authn(tokens *Tokens, users authservice.UserFinder, svc *authservice.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if svc.IsPublicEndpoint(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}
			logger := logging.FromContext(r.Context())

			raw, err := bearerToken(r.Header.Get("Authorization"))
			if err != nil {
				unauthorized(w, "missing_token")
				return
			}
			claims, err := tokens.Verify(raw)
			if err != nil {
				logger.Info("token rejected", slog.String("error", err.Error()))
				unauthorized(w, "invalid_token")
				return
			}
			u, err := users.FindByUsername(r.Context(), claims.Username)
			if err != nil {
				respond.WriteError(w, err)
				return
			}
			if u == nil {
				logger.Info("token rejected", slog.String("reason", "user no longer exists"),
					slog.String("username", claims.Username))
				unauthorized(w, "unknown_user")
				return
			}

			p := entity.Principal{UserID: u.ID, Username: u.Username, Role: u.Role}
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

// RequireRole allows only principals holding role.
func RequireRole(role entity.Role, resource string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := PrincipalFrom(r.Context())
		if !ok {
			unauthorized(w, "no_principal")
			return
		}
		if p.Role != role {
			RecordForbiddenAttempt(resource, r.Method)
			logging.FromContext(r.Context()).Warn("role required",
				slog.String("username", p.Username),
				slog.String("role", string(p.Role)),
				slog.String("required", string(role)))
			respond.WriteError(w, &entity.AccessDeniedError{Action: r.Method, Resource: resource})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func unauthorized(w http.ResponseWriter, reason string) {
	RecordTokenRejection(reason)
	w.Header().Set("WWW-Authenticate", `Bearer realm="articles-api"`)
	respond.JSON(w, http.StatusUnauthorized, respond.ErrorBody{Error: "unauthorized"})
}
