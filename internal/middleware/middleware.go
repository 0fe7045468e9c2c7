package middleware

import (
	"net/http"

	"sportcms/internal/sessions"
)

// RequireAdmin wraps a single handler. Anonymous requests are redirected to
// the login page; the session is re-checked on every request.
func RequireAdmin(sm *sessions.Manager, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := sm.AccountID(r); !ok {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next(w, r)
	}
}

// RequireAdminMW is the chi-compatible form, for guarding a route group.
func RequireAdminMW(sm *sessions.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := sm.AccountID(r); !ok {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
