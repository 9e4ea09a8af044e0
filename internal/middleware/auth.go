package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/anekzad/portfolio/internal/ctxkeys"
	"github.com/anekzad/portfolio/internal/service"
)

// AuthMiddleware validates the admin session cookie and, when valid, flags
// the request context. Requests without a valid cookie continue anonymously.
func AuthMiddleware(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(authService.CookieName())
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			err = authService.VerifyToken(cookie.Value)
			if err != nil {
				// Invalid or expired session, clear cookie and continue
				authService.ClearSessionCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctxkeys.WithAdmin(r.Context())))
		})
	}
}

// RequireAdmin rejects requests that do not carry a valid admin session.
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !ctxkeys.IsAdmin(r.Context()) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
			return
		}
		next(w, r)
	}
}
