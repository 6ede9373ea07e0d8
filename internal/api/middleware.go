package api

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// withAuth wraps a handler with bearer token authentication. When no token
// is configured the wrapper is a no-op.
func (s *Server) withAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.AuthDisabled() {
			next(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			s.logger.Warn("missing authorization header", "remote_addr", r.RemoteAddr)
			writeError(w, http.StatusUnauthorized, "missing authorization header")
			return
		}

		// Expect "Bearer <token>", scheme case-insensitive
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			s.logger.Warn("invalid authorization format", "remote_addr", r.RemoteAddr)
			writeError(w, http.StatusUnauthorized, "invalid authorization format")
			return
		}

		if subtle.ConstantTimeCompare([]byte(parts[1]), []byte(s.cfg.BearerToken)) != 1 {
			s.logger.Warn("invalid bearer token", "remote_addr", r.RemoteAddr)
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		next(w, r)
	}
}
