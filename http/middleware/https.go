package middleware

import (
	"net/http"

	"github.com/xy-planning-network/habits"
)

// ForceHTTPS permanently redirects plain HTTP requests to the same URL over HTTPS,
// except in development.
//
// Behind a proxy terminating TLS, the "X-Forwarded-Proto" header says which scheme the client used.
func ForceHTTPS(env habits.Environment) Adapter {
	if env.IsDevelopment() {
		return NoopAdapter
	}

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
				handler.ServeHTTP(w, r)
				return
			}

			target := "https://" + r.Host + r.URL.RequestURI()
			http.Redirect(w, r, target, http.StatusPermanentRedirect)
		})
	}
}
