package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/NVIDIA/k8s-test-api/pkg/serializers"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// userContextKey is the context key under which the authenticated user
// is stored for downstream handlers.
const userContextKey contextKey = "authUser"

// Middleware is the bearer guard for protected routes. It is layered as
// two distinct stages, and the distinction is part of the external
// contract:
//
//   - extraction: no usable "Authorization: Bearer <token>" header
//     yields 403 before any verification runs
//   - verification: a present but unverifiable token yields 401 with a
//     WWW-Authenticate challenge, regardless of which check failed
func (s *TokenService) Middleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, ok := bearerToken(r)
		if !ok {
			serializers.RespondDetail(w, http.StatusForbidden, "Not authenticated")
			return
		}

		user, err := s.Verify(raw)
		if err != nil {
			w.Header().Set("WWW-Authenticate", "Bearer")
			serializers.RespondDetail(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// bearerToken extracts the credential from the Authorization header.
// Returns false for a missing header, a non-Bearer scheme, or an empty
// credential.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}

// UserFromContext returns the authenticated user placed by Middleware.
func UserFromContext(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(userContextKey).(*User)
	return u, ok
}
