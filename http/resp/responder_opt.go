package resp

import (
	"net/url"

	"github.com/xy-planning-network/habits/logger"
)

// A ResponderOptFn configures a *Responder under construction.
type ResponderOptFn func(*Responder)

// WithLogger routes the Responder's logs through log instead of a default logger.Logger.
func WithLogger(log logger.Logger) ResponderOptFn {
	return func(d *Responder) { d.logger = log }
}

// WithRootUrl sets where Redirect sends clients by default.
// An unparseable u leaves the default, http://localhost:5173.
func WithRootUrl(u string) ResponderOptFn {
	root, err := url.ParseRequestURI(u)
	return func(d *Responder) {
		if err == nil {
			d.rootUrl = root
		}
	}
}
