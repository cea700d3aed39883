package middleware

import (
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/xy-planning-network/habits"
)

// ReportPanic recovers panics raised by the handler and reports them to Sentry,
// responding 500 to the client.
//
// In development and testing environments, NoopAdapter returns and this middleware does nothing.
func ReportPanic(env habits.Environment) Adapter {
	if env.IsDevelopment() || env.IsTesting() {
		return NoopAdapter
	}

	sh := sentryhttp.New(sentryhttp.Options{
		Repanic:         true,
		WaitForDelivery: true,
	})

	return func(h http.Handler) http.Handler {
		return recoverPanic(sh.Handle(h))
	}
}

// recoverPanic turns a panic repanicked by Sentry into a 500.
func recoverPanic(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		}()

		h.ServeHTTP(w, r)
	})
}
