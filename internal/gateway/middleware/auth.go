package middleware

import (
	"context"
	"net/http"
	"strings"

	identitydomain "github.com/dottify/dottify-backend/internal/modules/identity/domain"
	"github.com/dottify/dottify-backend/internal/modules/identity/infrastructure/jwt"
)

type contextKey string

const ContextKeySession contextKey = "session"

type AuthMiddleware struct {
	jwtSecret string
}

// NewAuthMiddleware creates the token-checking middleware. Tokens are issued
// by the external identity provider and validated here with the shared secret.
func NewAuthMiddleware(jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{jwtSecret: jwtSecret}
}

// RequireAuth enforces a valid bearer token. On success the caller's session
// is injected into the request context; on failure it responds 401 so callers
// can distinguish "authentication required" from "forbidden".
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := m.sessionFromRequest(r)
		if !ok {
			http.Error(w, `{"error": "authentication required"}`, http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), ContextKeySession, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FlexibleAuth attempts to authenticate but proceeds either way. With a valid
// token the session lands in the context; without one the request continues as
// anonymous.
func (m *AuthMiddleware) FlexibleAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := m.sessionFromRequest(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		ctx := context.WithValue(r.Context(), ContextKeySession, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) sessionFromRequest(r *http.Request) (*identitydomain.Session, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := jwt.ValidateToken(parts[1], m.jwtSecret)
	if err != nil || claims.Subject == "" {
		return nil, false
	}
	return &identitydomain.Session{
		AccountID: claims.Subject,
		Admin:     claims.Admin,
		Groups:    claims.Groups,
	}, true
}

// SessionFromContext returns the authenticated session, or nil for anonymous
// requests.
func SessionFromContext(ctx context.Context) *identitydomain.Session {
	sess, _ := ctx.Value(ContextKeySession).(*identitydomain.Session)
	return sess
}
