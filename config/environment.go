package config

import (
	"net/http"
	"os"
)

type Environment struct {
	IsDevelopment bool
	Domain        string
	CookieSecure  bool
}

var Env Environment

func init() {
	// Get domain from environment variable
	domain := os.Getenv("COOKIE_DOMAIN")

	// If no domain is set, we're in development
	isDev := domain == ""
	if isDev {
		domain = "localhost"
	}

	Env = Environment{
		IsDevelopment: isDev,
		Domain:        domain,
		CookieSecure:  !isDev,
	}
}

// SessionCookie builds the auth cookie for the current environment. A
// maxAge <= 0 produces the clearing cookie used by logout.
func SessionCookie(token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		Path:     "/",
		Domain:   Env.Domain,
		HttpOnly: true,
		Secure:   Env.CookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	}
}
