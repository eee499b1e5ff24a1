package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticResolver struct {
	identity Identity
	err      error
}

func (s staticResolver) Resolve(*http.Request) (Identity, error) {
	return s.identity, s.err
}

func TestRequireIdentity_AttachesIdentity(t *testing.T) {
	m := NewIdentityMiddleware(staticResolver{identity: Identity{UserID: "user-1"}})

	var seen Identity
	var ok bool
	handler := m.RequireIdentity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, ok = GetIdentity(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.True(t, ok)
	assert.Equal(t, "user-1", seen.UserID)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireIdentity_RejectsUnresolved(t *testing.T) {
	cases := []struct {
		name     string
		resolver IdentityResolver
	}{
		{"resolver error", staticResolver{err: errors.New("bad token")}},
		{"empty user id", staticResolver{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewIdentityMiddleware(tc.resolver)

			called := false
			handler := m.RequireIdentity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, called)
		})
	}
}

func TestHeaderIdentityResolver(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-ID", "user-1")

	identity, err := HeaderIdentityResolver{}.Resolve(req)
	require.NoError(t, err)
	assert.Equal(t, "user-1", identity.UserID)

	custom := HeaderIdentityResolver{Header: "X-Account"}
	req.Header.Set("X-Account", "user-2")
	identity, err = custom.Resolve(req)
	require.NoError(t, err)
	assert.Equal(t, "user-2", identity.UserID)
}

func TestGetIdentity_Absent(t *testing.T) {
	_, ok := GetIdentity(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
}
