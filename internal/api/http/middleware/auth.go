// Package middleware provides the HTTP request pipeline stages: the access
// gate and request logging.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/temirov/blogapi/internal/logger"
	"github.com/temirov/blogapi/internal/model"
)

type principalKey struct{}

// WithPrincipal stores the authenticated principal in the context.
func WithPrincipal(ctx context.Context, principal model.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

// PrincipalFromContext extracts the authenticated principal, if any.
func PrincipalFromContext(ctx context.Context) (model.Principal, bool) {
	principal, ok := ctx.Value(principalKey{}).(model.Principal)
	return principal, ok
}

// Authenticate is the access gate. Routes declare their exposure at
// registration time by picking the Protected or Public wrapper; nothing is
// inferred from the request path.
type Authenticate struct {
	tokenManager model.TokenManager
	logger       *logger.Logger
}

// NewAuthenticate creates a new access gate instance.
func NewAuthenticate(tokenManager model.TokenManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenManager: tokenManager, logger: logger}
}

// Protected requires a valid bearer token: absence is 401, an invalid or
// expired token is 403. Session revocation is deliberately not consulted
// here; a revoked access token stays usable until its own expiry.
func (m *Authenticate) Protected(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, ok := bearerToken(r)
		if !ok {
			writeGateError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, err := m.tokenManager.VerifyAccessToken(tokenString)
		if err != nil {
			m.logger.Info("access gate: token rejected",
				"path", r.URL.Path,
				"error", err.Error())
			writeGateError(w, http.StatusForbidden, "Forbidden")
			return
		}

		ctx := WithPrincipal(r.Context(), model.Principal{
			UserID:    claims.UserID,
			Username:  claims.Username,
			SessionID: claims.SessionID,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Public lets anonymous requests through without a principal, but a token
// that is supplied must still verify. A broken token on a public route is
// an error, not something to ignore.
func (m *Authenticate) Public(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.tokenManager.VerifyAccessToken(tokenString)
		if err != nil {
			m.logger.Info("access gate: token rejected on public route",
				"path", r.URL.Path,
				"error", err.Error())
			writeGateError(w, http.StatusForbidden, "Forbidden")
			return
		}

		ctx := WithPrincipal(r.Context(), model.Principal{
			UserID:    claims.UserID,
			Username:  claims.Username,
			SessionID: claims.SessionID,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(auth, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}

func writeGateError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"code":    status,
		"message": message,
	})
}
