package session

import (
	"net/http"
	"time"
)

const CookieName = "X-Session-Token"

// Lifetime is how long a demo session stays valid.
const Lifetime = 12 * time.Hour

func SessionCookie(value string, maxAge int, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	}
}

func DefaultExpiry() time.Time {
	return time.Now().Add(Lifetime)
}
