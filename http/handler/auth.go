package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/xy-planning-network/habits"
	"github.com/xy-planning-network/habits/auth"
	"github.com/xy-planning-network/habits/http/resp"
	"github.com/xy-planning-network/habits/logger"
)

const (
	callbackPath = "/api/auth/google/callback"
	tokenType    = "bearer"
)

type googleLogin struct {
	Code        string `json:"code" validate:"required"`
	RedirectURI string `json:"redirectUri" validate:"required"`
}

type googleCallback struct {
	Code  string `schema:"code" validate:"required"`
	State string `schema:"state"`
}

// GoogleLogin trades the authorization code a client received from Google for a session token.
func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	body := new(googleLogin)
	if err := h.ParseBody(r.Body, body); err != nil {
		h.Err(w, r, err)
		return
	}

	u, token, err := h.login(r, body.Code, body.RedirectURI)
	if err != nil {
		h.loginErr(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, map[string]any{"token": token, "tokenType": tokenType, "user": u})
}

// GoogleCallback completes the server-side OAuth flow Google redirects the browser to,
// sending the browser on to the frontend with a session token.
//
// state picks the frontend, see frontendFor.
func (h *Handler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	q := new(googleCallback)
	err := h.ParseQueryParams(r.URL.Query(), q)
	frontend := h.frontendFor(q.State)
	if err != nil {
		h.callbackErr(w, r, frontend, err)
		return
	}

	_, token, err := h.login(r, q.Code, h.apiBaseURL+callbackPath)
	if err != nil {
		h.callbackErr(w, r, frontend, err)
		return
	}

	if err := h.Redirect(w, r, resp.Url(frontend+"/auth/callback"), resp.Param("token", token)); err != nil {
		h.callbackErr(w, r, frontend, err)
	}
}

// Me responds with the current User.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := h.user(w, r)
	if !ok {
		return
	}

	h.respond(w, r, http.StatusOK, u, resp.User(u))
}

// Logout acknowledges a client discarding its session token.
// Session tokens are stateless, so nothing is revoked.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, http.StatusOK, map[string]string{"message": "Successfully logged out"})
}

// login exchanges code with Google and issues a session token for the User it identifies.
func (h *Handler) login(r *http.Request, code, redirectURI string) (habits.User, string, error) {
	p, err := h.exchanger.Exchange(r.Context(), code, redirectURI)
	if err != nil {
		return habits.User{}, "", err
	}

	return h.issuer.Login(r.Context(), p)
}

// loginErr maps the failures of logging in with Google to a response.
func (h *Handler) loginErr(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, auth.ErrOAuthCodeInvalid), errors.Is(err, auth.ErrProfileIncomplete):
		h.log.Warn(err.Error(), &logger.LogContext{Error: err, Request: r})
		h.respond(w, r, http.StatusUnauthorized, map[string]string{"error": "could not log in with Google"})

	case errors.Is(err, auth.ErrOAuthExchangeFailed):
		h.log.Warn(err.Error(), &logger.LogContext{Error: err, Request: r})
		h.respond(w, r, http.StatusBadGateway, map[string]string{"error": "could not reach Google, try again"})

	default:
		h.Err(w, r, err)
	}
}

// callbackErr sends the browser back to frontend flagged with error=auth_failed.
func (h *Handler) callbackErr(w http.ResponseWriter, r *http.Request, frontend string, err error) {
	h.log.Warn(err.Error(), &logger.LogContext{Error: err, Request: r})
	if rerr := h.Redirect(w, r, resp.Url(frontend+"/"), resp.Param("error", "auth_failed")); rerr != nil {
		h.Err(w, r, rerr)
	}
}

// frontendFor is the scheme://host of state when it names localhost or the configured frontend,
// and the configured frontend otherwise.
func (h *Handler) frontendFor(state string) string {
	u, err := url.Parse(state)
	if err != nil || u.User != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return h.frontendURL
	}

	origin := u.Scheme + "://" + u.Host
	if u.Hostname() == "localhost" || origin == h.frontendURL {
		return origin
	}

	return h.frontendURL
}
