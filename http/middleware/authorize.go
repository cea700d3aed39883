package middleware

import (
	"net/http"

	"github.com/xy-planning-network/habits"
	"github.com/xy-planning-network/habits/http/resp"
)

// ForbiddenMsg is the detail a client receives when it lacks access to a resource.
const ForbiddenMsg = "not enough permissions"

// Authorize lets a request through when allowed approves the T that CurrentUser,
// earlier in the chain, stored under habits.CurrentUserKey.
// Without a T the response is 401; a disapproved T gets 403.
// A nil allowed yields NoopAdapter.
func Authorize[T any](d *resp.Responder, allowed func(T) bool) Adapter {
	if allowed == nil {
		return NoopAdapter
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := r.Context().Value(habits.CurrentUserKey).(T)
			switch {
			case !ok:
				d.Err(w, r, resp.ErrNoUser, resp.Data(map[string]string{"error": UnauthorizedMsg}))
			case !allowed(user):
				d.Json(w, r, resp.Code(http.StatusForbidden), resp.Data(map[string]string{"error": ForbiddenMsg}))
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

// RequireAdmin answers 403 unless the current User's email is one of admins.
func RequireAdmin(d *resp.Responder, admins []string) Adapter {
	return Authorize(d, func(u habits.User) bool { return u.IsAdmin(admins) })
}
