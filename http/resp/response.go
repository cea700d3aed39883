package resp

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/xy-planning-network/habits"
	"github.com/xy-planning-network/habits/http/req"
	"github.com/xy-planning-network/habits/logger"
)

// Fn options shape what a Responder writes.
// An Fn failing because another has yet to run is retried after the rest.
type Fn func(Responder, *Response) error

// Response collects what the Fn options passed to a Responder decided.
type Response struct {
	w    http.ResponseWriter
	r    *http.Request
	code int
	data any
	url  *url.URL
	user any
}

// Authed fills "currentUser" with the habits.User CurrentUser authenticated,
// failing with ErrNoUser for an anonymous request.
// A user set with User takes precedence.
func Authed() Fn {
	return func(d Responder, r *Response) error {
		if r.user != nil {
			return nil
		}

		u, err := d.CurrentUser(r.r.Context())
		if err != nil {
			return err
		}

		r.user = u
		return nil
	}
}

func Code(c int) Fn {
	return func(_ Responder, r *Response) error {
		r.code = c
		return nil
	}
}

// Data is written under "data".
func Data(d any) Fn {
	return func(_ Responder, r *Response) error {
		r.data = d
		return nil
	}
}

// Err sets the status code matching e, per StatusFor, and logs e.
// Unless Data set something already, Err sets {"error": msg} as the data,
// where msg is the text of e for client errors and the status text otherwise.
// req.ValidationErrors in e are listed under "validationErrors".
//
// Server errors log at ERROR, client errors at INFO.
func Err(e error) Fn {
	return func(d Responder, r *Response) error {
		code := StatusFor(e)
		if r.code == 0 {
			r.code = code
		}

		msg := http.StatusText(code)
		if e != nil && code < http.StatusInternalServerError {
			msg = e.Error()
		}

		if r.data == nil {
			data := map[string]any{"error": msg}

			var verrs req.ValidationErrors
			if errors.As(e, &verrs) {
				data["error"] = "invalid request"
				data["validationErrors"] = []req.ValidationError(verrs)
			}

			r.data = data
		}

		if e == nil {
			return nil
		}

		lu, _ := r.user.(logger.LogUser)
		lc := logContext(r.r, e, lu)
		if code >= http.StatusInternalServerError {
			d.logger.Error(e.Error(), lc)
		} else {
			d.logger.Info(e.Error(), lc)
		}

		return nil
	}
}

// Param appends key=val to the redirect URL's query.
// It needs a URL set by Url or ToRoot.
func Param(key, val string) Fn {
	return func(_ Responder, r *Response) error {
		if r.url == nil {
			return fmt.Errorf("%w: Url() has not been called", ErrMissingData)
		}

		q := r.url.Query()
		q.Add(key, val)
		r.url.RawQuery = q.Encode()
		return nil
	}
}

// ToRoot redirects to the Responder's root URL, the frontend.
func ToRoot() Fn {
	return func(d Responder, r *Response) error {
		root := *d.rootUrl
		r.url = &root
		return nil
	}
}

// User is written under "currentUser" on success.
func User(u any) Fn {
	return func(_ Responder, r *Response) error {
		r.user = u
		return nil
	}
}

// Url sets the absolute URL or absolute path Redirect sends the client to.
func Url(u string) Fn {
	return func(_ Responder, r *Response) error {
		dest, err := url.ParseRequestURI(u)
		if err != nil {
			return fmt.Errorf("%w: u is not a valid URL: %v", ErrInvalid, err)
		}

		r.url = dest
		return nil
	}
}

// StatusFor maps err to the HTTP status code describing it:
//
//	habits.ErrNotFound                                        404
//	habits.ErrExists                                          409
//	habits.ErrNotValid, habits.ErrBadFormat, habits.ErrMissingData 400
//	ErrNoUser                                                 401
//	anything else                                             500
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusInternalServerError
	case errors.Is(err, habits.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, habits.ErrExists):
		return http.StatusConflict
	case errors.Is(err, habits.ErrNotValid),
		errors.Is(err, habits.ErrBadFormat),
		errors.Is(err, habits.ErrMissingData):
		return http.StatusBadRequest
	case errors.Is(err, ErrNoUser):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
