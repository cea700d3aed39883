/*
Package middleware holds the http.Handler decorators of the habits API.

An [Adapter] wraps one http.Handler in another; [Chain] applies several,
the first listed running outermost.

Every request passes through, in order:

	ForceHTTPS       redirects plain HTTP outside development
	RequestID        tags the request with a UUID
	InjectIPAddress  stashes the client IP
	LogRequest       logs method, URI, status and timing
	CORS             answers preflights from allowed origins

Narrower ones guard particular routes:

	RateLimit    per-IP token bucket in front of the Google sign-in routes
	CurrentUser  resolves the bearer token to a habits.User or responds 401
	RequireAdmin lets only admin emails through
	ReportPanic  turns a handler panic into a 500 reported to Sentry
*/
package middleware
