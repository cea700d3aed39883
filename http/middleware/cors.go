package middleware

import (
	"net/http"

	"github.com/gorilla/handlers"
)

var (
	corsHeaders = []string{"Authorization", "Content-Type"}
	corsMethods = []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
)

// CORS lets browsers on origins call the API with credentials.
// Preflight requests are answered without reaching the wrapped handler.
// No origins means no CORS headers at all.
func CORS(origins []string) Adapter {
	if len(origins) == 0 {
		return NoopAdapter
	}

	return handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods(corsMethods),
		handlers.AllowedHeaders(corsHeaders),
		handlers.AllowCredentials(),
	)
}
