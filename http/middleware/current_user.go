package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/xy-planning-network/habits"
	"github.com/xy-planning-network/habits/auth"
	"github.com/xy-planning-network/habits/http/resp"
	"github.com/xy-planning-network/habits/logger"
)

// UnauthorizedMsg is the only detail a client receives when its credentials fail.
const UnauthorizedMsg = "could not validate credentials"

// An Authenticator resolves the User a bearer Authorization header belongs to.
//
// *auth.Guard implements Authenticator.
type Authenticator interface {
	Authenticate(ctx context.Context, header string) (habits.User, error)
}

// CurrentUser authenticates the "Authorization" header of the request through guard
// and stores the User in the *http.Request.Context under habits.CurrentUserKey.
//
// On any failure, CurrentUser responds 401 with a generic message
// and a "WWW-Authenticate: Bearer" header, logging the specific cause at WARN.
// If the failure is auth.ErrPersistence, CurrentUser responds 500 instead.
//
// Every response passing through CurrentUser is marked "Cache-Control: no-store".
//
// If d or guard are nil, NoopAdapter returns and this middleware does nothing.
func CurrentUser(d *resp.Responder, guard Authenticator, ls logger.Logger) Adapter {
	if d == nil || guard == nil {
		return NoopAdapter
	}

	if ls == nil {
		ls = logger.New()
	}

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "no-store")
			w.Header().Set("Pragma", "no-cache")

			user, err := guard.Authenticate(r.Context(), r.Header.Get("Authorization"))
			if errors.Is(err, auth.ErrPersistence) {
				d.Err(w, r, err)
				return
			}

			if err != nil {
				ls.Warn(err.Error(), &logger.LogContext{Error: err, Request: r})
				w.Header().Set("WWW-Authenticate", "Bearer")
				d.Err(w, r, err, resp.Code(http.StatusUnauthorized), resp.Data(map[string]string{"error": UnauthorizedMsg}))
				return
			}

			ctx := context.WithValue(r.Context(), habits.CurrentUserKey, user)
			handler.ServeHTTP(w, r.Clone(ctx))
		})
	}
}
