package middleware

import "net/http"

// An Adapter wraps an http.Handler with behavior running around it.
type Adapter func(http.Handler) http.Handler

// Chain wraps handler in adapters so a request passes through adapters[0] first.
func Chain(handler http.Handler, adapters ...Adapter) http.Handler {
	for i := range adapters {
		handler = adapters[len(adapters)-1-i](handler)
	}

	return handler
}

// NoopAdapter returns h as is.
func NoopAdapter(h http.Handler) http.Handler { return h }
