package login

import (
	"net/http"

	"sampark/frontend/shared/respond"
	sessioncookie "sampark/infrastructure/session"
)

// LogoutCommandHandler serves POST /api/logout. The next request gets a
// fresh demo session.
func LogoutCommandHandler(sessions *Sessions, secureCookies bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(sessioncookie.CookieName); err == nil {
			sessions.Drop(cookie.Value)
		}
		http.SetCookie(w, sessioncookie.SessionCookie("", -1, secureCookies))
		respond.JSON(w, http.StatusOK, map[string]bool{"logged_out": true})
	}
}
