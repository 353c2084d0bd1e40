package middleware

import (
	"net/http"

	"github.com/kwanzafolio/kwanzafolio-backend/internal/api/response"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/apperrors"
)

// SessionChecker reports whether someone is signed in.
type SessionChecker interface {
	LoggedIn() bool
}

// RequireSession rejects requests with 401 Unauthorized while nobody is signed in.
//
// Example usage in router:
//
//	r.Group(func(r chi.Router) {
//	    r.Use(middleware.RequireSession(sessionService))
//	    r.Get("/dashboard", dashboardHandler.Overview)
//	})
func RequireSession(session SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !session.LoggedIn() {
				response.RespondError(w, http.StatusUnauthorized, apperrors.ErrNotLoggedIn.Error(), "")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
