package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/massimocristi1970/hr-dashboard/internal/domain/auth"
)

func identityProbe(t *testing.T) (http.Handler, *auth.Actor) {
	t.Helper()
	captured := &auth.Actor{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		require.True(t, ok)
		*captured = actor
		w.WriteHeader(http.StatusOK)
	})
	return next, captured
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	admins := auth.NewAdminSet([]string{"HR@example.com"})

	t.Run("proxy header sets the actor", func(t *testing.T) {
		t.Parallel()
		next, captured := identityProbe(t)

		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("X-User-Email", "Alice@Example.com")
		rec := httptest.NewRecorder()

		Identity(admins, false)(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "alice@example.com", captured.Email)
		assert.False(t, captured.IsAdmin)
	})

	t.Run("cloudflare access header is trusted", func(t *testing.T) {
		t.Parallel()
		next, captured := identityProbe(t)

		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("Cf-Access-Authenticated-User-Email", "hr@example.com")
		rec := httptest.NewRecorder()

		Identity(admins, false)(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, captured.IsAdmin)
	})

	t.Run("admin match ignores case", func(t *testing.T) {
		t.Parallel()
		next, captured := identityProbe(t)

		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("X-User-Email", "hr@EXAMPLE.com")
		rec := httptest.NewRecorder()

		Identity(admins, false)(next).ServeHTTP(rec, req)

		assert.True(t, captured.IsAdmin)
	})

	t.Run("impersonation works only when enabled", func(t *testing.T) {
		t.Parallel()

		next, captured := identityProbe(t)
		req := httptest.NewRequest(http.MethodGet, "/api/me?as=bob@example.com", nil)
		rec := httptest.NewRecorder()
		Identity(admins, true)(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "bob@example.com", captured.Email)

		rec = httptest.NewRecorder()
		Identity(admins, false)(http.NotFoundHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/me?as=bob@example.com", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("no identity is rejected", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		Identity(admins, true)(http.NotFoundHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/me", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAdminOnly(t *testing.T) {
	t.Parallel()

	admins := auth.NewAdminSet([]string{"hr@example.com"})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	chain := Identity(admins, false)(AdminOnly(next))

	t.Run("admin passes", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/api/admin/employees", nil)
		req.Header.Set("X-User-Email", "hr@example.com")
		rec := httptest.NewRecorder()

		chain.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non-admin gets forbidden", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/api/admin/employees", nil)
		req.Header.Set("X-User-Email", "alice@example.com")
		rec := httptest.NewRecorder()

		chain.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
