package middleware

import (
	"context"
	"encoding/json"
	"net/http"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the normalized acting-user identity resolved once per
// request. Operations receive it by value; nothing downstream re-derives
// the user id from request internals.
type Identity struct {
	UserID string
}

// IdentityResolver is the external authentication collaborator. It
// verifies whatever credential the request carries and resolves the
// acting user id. Token mechanics live behind this interface.
type IdentityResolver interface {
	Resolve(r *http.Request) (Identity, error)
}

// IdentityMiddleware attaches the resolved identity to request contexts
type IdentityMiddleware struct {
	resolver IdentityResolver
}

// NewIdentityMiddleware creates the identity middleware
func NewIdentityMiddleware(resolver IdentityResolver) *IdentityMiddleware {
	return &IdentityMiddleware{resolver: resolver}
}

// RequireIdentity rejects requests whose identity cannot be resolved
func (m *IdentityMiddleware) RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := m.resolver.Resolve(r)
		if err != nil || identity.UserID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Authentication required",
			})
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetIdentity returns the identity attached to the context, if any
func GetIdentity(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}

// HeaderIdentityResolver trusts an upstream gateway to have verified the
// caller and to pass the user id in a header. Development and test use
// only; production deployments plug in a real verifier.
type HeaderIdentityResolver struct {
	Header string
}

// Resolve reads the user id from the configured header
func (h HeaderIdentityResolver) Resolve(r *http.Request) (Identity, error) {
	name := h.Header
	if name == "" {
		name = "X-User-ID"
	}
	return Identity{UserID: r.Header.Get(name)}, nil
}
