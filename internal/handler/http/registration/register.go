package registration

import (
	"net/http"

	regUC "articles-api/internal/usecase/registration"
)

// Register mounts the sign-up route, wrapped by mws in order.
func Register(mux *http.ServeMux, svc *regUC.Service, mws ...func(http.Handler) http.Handler) {
	var h http.Handler = Handler{svc}
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	mux.Handle("POST   /registration", h)
}
