package resp

import (
	"net/http"

	"github.com/xy-planning-network/habits/logger"
)

// logContext describes err, raised while responding to r on behalf of user.
// user may be nil.
func logContext(r *http.Request, err error, user logger.LogUser) *logger.LogContext {
	return &logger.LogContext{Error: err, Request: r, User: user}
}
