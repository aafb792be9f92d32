package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/jwtauth/v5"
	"github.com/massimocristi1970/hr-dashboard/internal/domain/auth"
	"github.com/massimocristi1970/hr-dashboard/internal/handler/http/response"
)

type actorKey struct{}

// Identity resolves the acting user and stores an auth.Actor in the
// request context. The email comes from the first of:
//
//  1. a verified access token (jwtauth.Verifier must run first),
//  2. a trusted proxy header (Cf-Access-Authenticated-User-Email or
//     X-User-Email) set by the edge in front of the service,
//  3. the "as" query parameter, only when dev impersonation is on.
//
// Requests without an identity are rejected; admin status is looked up
// in the configured allow-list, never taken from the client.
func Identity(admins auth.AdminSet, devImpersonation bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			email := emailFromToken(r)

			if email == "" {
				email = r.Header.Get("Cf-Access-Authenticated-User-Email")
			}
			if email == "" {
				email = r.Header.Get("X-User-Email")
			}
			if email == "" && devImpersonation {
				email = r.URL.Query().Get("as")
			}

			email = strings.ToLower(strings.TrimSpace(email))
			if email == "" {
				response.HandleError(w, auth.ErrUnauthorized)
				return
			}

			actor := auth.Actor{Email: email, IsAdmin: admins.Contains(email)}
			ctx := context.WithValue(r.Context(), actorKey{}, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

func emailFromToken(r *http.Request) string {
	token, _, err := jwtauth.FromContext(r.Context())
	if err != nil || token == nil {
		return ""
	}

	claims, err := token.AsMap(r.Context())
	if err != nil {
		return ""
	}
	if tokenType, ok := claims["type"].(string); !ok || tokenType != "access" {
		return ""
	}

	email, _ := claims["email"].(string)
	return email
}

// ActorFromContext returns the actor stored by Identity.
func ActorFromContext(ctx context.Context) (auth.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(auth.Actor)
	return actor, ok
}
