package server

import (
	"net/http"
	"time"
)

const userCookieName = "guiate_user"

// usernameFromRequest reads the identity cookie. Returns "" when the
// caller has not identified yet.
func usernameFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(userCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func setUserCookie(w http.ResponseWriter, username string) {
	http.SetCookie(w, &http.Cookie{
		Name:     userCookieName,
		Value:    username,
		Path:     "/",
		MaxAge:   int(365 * 24 * time.Hour / time.Second),
		SameSite: http.SameSiteLaxMode,
	})
}
