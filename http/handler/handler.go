package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/xy-planning-network/habits"
	"github.com/xy-planning-network/habits/auth"
	"github.com/xy-planning-network/habits/http/req"
	"github.com/xy-planning-network/habits/http/resp"
	"github.com/xy-planning-network/habits/http/router"
	"github.com/xy-planning-network/habits/logger"
	"github.com/xy-planning-network/habits/postgres"
)

// Version is reported by the health check.
const Version = "0.1.0"

// A Config supplies a Handler with its collaborators.
type Config struct {
	// Admins are the email addresses of the Users allowed to use the admin routes.
	Admins []string

	// APIBaseURL is where the habits API is reachable by Google's OAuth redirect.
	APIBaseURL *url.URL

	DB        *postgres.DB
	Exchanger auth.Exchanger

	// FrontendURL is where the OAuth callback sends the browser after logging in.
	FrontendURL *url.URL

	Issuer    *auth.Issuer
	Logger    logger.Logger
	Now       func() time.Time
	Parser    *req.Parser
	Responder *resp.Responder
}

// A Handler holds what the habits API's HTTP handlers need.
// The methods attached to it are the handlers the Router directs requests to.
type Handler struct {
	*resp.Responder
	*req.Parser

	challenges *postgres.ChallengeStore
	entries    *postgres.EntryStore
	habits     *postgres.HabitStore
	users      *postgres.UserStore

	admins      []string
	apiBaseURL  string
	exchanger   auth.Exchanger
	frontendURL string
	issuer      *auth.Issuer
	log         logger.Logger
	now         func() time.Time
}

// New constructs a *Handler from cfg.
func New(cfg Config) *Handler {
	h := &Handler{
		Responder:   cfg.Responder,
		Parser:      cfg.Parser,
		challenges:  postgres.NewChallengeStore(cfg.DB),
		entries:     postgres.NewEntryStore(cfg.DB),
		habits:      postgres.NewHabitStore(cfg.DB),
		users:       postgres.NewUserStore(cfg.DB),
		admins:      cfg.Admins,
		exchanger:   cfg.Exchanger,
		issuer:      cfg.Issuer,
		log:         cfg.Logger,
		now:         cfg.Now,
		apiBaseURL:  "http://localhost:8000",
		frontendURL: "http://localhost:5173",
	}

	if cfg.APIBaseURL != nil {
		h.apiBaseURL = strings.TrimSuffix(cfg.APIBaseURL.String(), "/")
	}

	if cfg.FrontendURL != nil {
		h.frontendURL = strings.TrimSuffix(cfg.FrontendURL.String(), "/")
	}

	if h.Responder == nil {
		h.Responder = resp.NewResponder(resp.WithLogger(cfg.Logger))
	}

	if h.Parser == nil {
		h.Parser = req.NewParser()
	}

	if h.log == nil {
		h.log = logger.New()
	}

	if h.now == nil {
		h.now = time.Now
	}

	return h
}

// user retrieves the User CurrentUser authenticated.
// Every handler calling user is registered with router.AuthedRoutes.
func (h *Handler) user(w http.ResponseWriter, r *http.Request) (habits.User, bool) {
	u, err := h.CurrentUser(r.Context())
	if err != nil {
		h.Err(w, r, err)
		return habits.User{}, false
	}

	return u, true
}

// notFound names the resource in a habits.ErrNotFound,
// dropping the database's wording of it.
func notFound(err error, resource string) error {
	if errors.Is(err, habits.ErrNotFound) {
		return fmt.Errorf("%w: %s", habits.ErrNotFound, resource)
	}

	return err
}

// respond writes data as JSON with code, or forwards a failure to write it to Err.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, code int, data any, opts ...resp.Fn) {
	opts = append([]resp.Fn{resp.Code(code), resp.Data(data)}, opts...)
	if err := h.Json(w, r, opts...); err != nil {
		h.Err(w, r, err)
	}
}

// vars returns the route variable named key.
func vars(r *http.Request, key string) string { return router.Vars(r)[key] }
