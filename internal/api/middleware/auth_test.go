package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suphotsudsee/queue-booking-app-v2/internal/domain"
	"github.com/suphotsudsee/queue-booking-app-v2/internal/service/auth"
)

type fakeAuthenticator struct {
	identities map[string]*auth.Identity
}

func (f *fakeAuthenticator) Authenticate(token string) (*auth.Identity, error) {
	identity, ok := f.identities[token]
	if !ok {
		return nil, auth.ErrInvalidToken
	}
	return identity, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestAuth() *Auth {
	return NewAuth(&fakeAuthenticator{identities: map[string]*auth.Identity{
		"admin-token":    {UserID: 1, Role: domain.RoleAdmin},
		"customer-token": {UserID: 2, Role: domain.RoleCustomer},
	}}, nopLogger{})
}

func doRequest(t *testing.T, handler http.Handler, authorization string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/admin/appointments", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRequire(t *testing.T) {
	m := newTestAuth()

	var seen *auth.Identity
	handler := m.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := doRequest(t, handler, "Bearer admin-token")
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, int64(1), seen.UserID)

	rec = doRequest(t, handler, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, handler, "Bearer unknown-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Не-Bearer схема эквивалентна отсутствию токена
	rec = doRequest(t, handler, "Basic YWRtaW46c2VjcmV0")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	m := newTestAuth()

	handler := m.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := doRequest(t, handler, "Bearer admin-token")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, handler, "Bearer customer-token")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(t, handler, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "", bearerToken(req))

	req.Header.Set("Authorization", "bearer  spaced-token ")
	assert.Equal(t, "spaced-token", bearerToken(req))

	req.Header.Set("Authorization", "Token abc")
	assert.Equal(t, "", bearerToken(req))
}
