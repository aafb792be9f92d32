package middleware

import (
	"net/http"

	"github.com/massimocristi1970/hr-dashboard/internal/domain/auth"
	"github.com/massimocristi1970/hr-dashboard/internal/handler/http/response"
)

// AdminOnly rejects requests whose actor is not on the admin
// allow-list. Must run after Identity.
func AdminOnly(next http.Handler) http.Handler {
	hfn := func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		if !ok {
			response.HandleError(w, auth.ErrUnauthorized)
			return
		}
		if !actor.IsAdmin {
			response.HandleError(w, auth.ErrAdminRequired)
			return
		}
		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hfn)
}
