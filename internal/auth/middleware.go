package auth

import (
	"net/http"
	"strings"
)

// Middleware rejects requests that do not carry a valid Bearer session
// token. Mounted on the reset routes only; the kiosk surface stays open.
func (s *Service) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			http.Error(w, "authorization token required", http.StatusUnauthorized)
			return
		}

		if err := s.ValidateToken(token); err != nil {
			http.Error(w, "invalid or expired token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
