package resp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/xy-planning-network/habits"
	"github.com/xy-planning-network/habits/logger"
)

const (
	defaultRootUrl  = "http://localhost:5173"
	responderFrames = 1
	jsonContentType = "application/json; charset=UTF-8"
)

// Responder writes API responses: JSON envelopes, errors and redirects.
// A single Responder is shared by every handler of the API.
// Handlers tailor each response by passing Fn options.
type Responder struct {
	logger  logger.Logger
	bufs    *sync.Pool
	rootUrl *url.URL
}

// NewResponder constructs a *Responder, applying opts over its defaults.
func NewResponder(opts ...ResponderOptFn) *Responder {
	d := &Responder{bufs: &sync.Pool{New: func() any { return new(bytes.Buffer) }}}
	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = logger.New()
	}

	// NOTE(dlk): log lines point at the handler calling the Responder, not at this package.
	if sl, ok := d.logger.(logger.SkipLogger); ok {
		d.logger = sl.AddSkip(sl.Skip() + responderFrames)
	}

	if d.rootUrl == nil {
		d.rootUrl, _ = url.ParseRequestURI(defaultRootUrl)
	}

	return d
}

// CurrentUser returns the habits.User stored in ctx under habits.CurrentUserKey
// or ErrNoUser when there is none.
func (doer Responder) CurrentUser(ctx context.Context) (habits.User, error) {
	if u, ok := ctx.Value(habits.CurrentUserKey).(habits.User); ok {
		return u, nil
	}

	return habits.User{}, fmt.Errorf("%w: none set with %s", ErrNoUser, habits.CurrentUserKey)
}

// Err writes err as a JSON error envelope:
//
//	{"data": {"error": "not found: challenge"}}
//
// StatusFor picks the status code unless Code or Data in opts override it.
// Should the envelope itself fail to write, Err falls back to a plain 500.
func (doer *Responder) Err(w http.ResponseWriter, r *http.Request, err error, opts ...Fn) {
	werr := doer.Json(w, r, append([]Fn{Err(err)}, opts...)...)
	if werr == nil || errors.Is(werr, ErrDone) {
		return
	}

	doer.logger.Error(werr.Error(), logContext(r, werr, nil))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

type envelope struct {
	Data        any `json:"data,omitempty"`
	CurrentUser any `json:"currentUser,omitempty"`
}

// Json writes the envelope
//
//	{"currentUser": {}, "data": {}}
//
// filling "data" from Data and "currentUser" from User or Authed.
// "currentUser" only appears on 2xx responses.
// The status defaults to 200; a 204 writes headers alone.
func (doer *Responder) Json(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	res, err := doer.apply(w, r, opts)
	if err != nil {
		return err
	}

	code := res.code
	if code == 0 {
		code = http.StatusOK
	}

	if code == http.StatusNoContent {
		w.WriteHeader(code)
		return nil
	}

	env := envelope{Data: res.data}
	if code/100 == 2 {
		env.CurrentUser = res.user
	}

	buf := doer.bufs.Get().(*bytes.Buffer)
	defer doer.bufs.Put(buf)
	buf.Reset()

	// NOTE(dlk): encode before touching w so a failure can still become a 500.
	if err := json.NewEncoder(buf).Encode(env); err != nil {
		return fmt.Errorf("%w: cannot encode %T: %s", ErrInvalid, res.data, err)
	}

	w.Header().Set("Content-Type", jsonContentType)
	w.WriteHeader(code)
	_, err = buf.WriteTo(w)
	return err
}

// Redirect sends the client to the URL set by Url, or to the root URL otherwise.
// Non-3xx codes set with Code become 303 for 4xx, 307 for 5xx and 302 for anything else.
func (doer *Responder) Redirect(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	res, err := doer.apply(w, r, append([]Fn{ToRoot()}, opts...))
	if err != nil {
		return err
	}

	if res.url == nil {
		return fmt.Errorf("%w: cannot redirect, no resp.url", ErrMissingData)
	}

	http.Redirect(w, r, res.url.String(), redirectCode(res.code))
	return nil
}

func redirectCode(code int) int {
	switch code / 100 {
	case 3:
		return code
	case 4:
		return http.StatusSeeOther
	case 5:
		return http.StatusTemporaryRedirect
	default:
		return http.StatusFound
	}
}

// apply runs opts against a fresh *Response.
//
// Options depending on another option's work may come before it:
// failing options are retried until a pass makes no progress.
// What still fails then is joined into the returned error.
func (doer *Responder) apply(w http.ResponseWriter, r *http.Request, opts []Fn) (*Response, error) {
	res := &Response{w: w, r: r}

	if err := r.Context().Err(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDone, err)
	}

	pending := opts
	for {
		failed := pending[:0:0]
		var errs error
		for _, opt := range pending {
			if err := opt(*doer, res); err != nil {
				failed = append(failed, opt)
				errs = errors.Join(errs, err)
			}
		}

		if len(failed) == 0 {
			return res, nil
		}

		if len(failed) == len(pending) {
			return res, errs
		}

		pending = failed
	}
}
