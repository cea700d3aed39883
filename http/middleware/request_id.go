package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/xy-planning-network/habits"
)

// RequestIDHeader echoes the ID assigned to a request back to the client.
const RequestIDHeader = "X-Request-ID"

// RequestID adds a uuid to the request context under habits.RequestIDKey
// and sets it in the RequestIDHeader of the response.
func RequestID() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.NewString()
			w.Header().Set(RequestIDHeader, id)
			ctx := context.WithValue(r.Context(), habits.RequestIDKey, id)
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}
