package ranger

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/xy-planning-network/habits"
	"github.com/xy-planning-network/habits/auth"
	"github.com/xy-planning-network/habits/http/handler"
	"github.com/xy-planning-network/habits/http/middleware"
	"github.com/xy-planning-network/habits/http/req"
	"github.com/xy-planning-network/habits/http/router"
	"github.com/xy-planning-network/habits/logger"
	"github.com/xy-planning-network/habits/postgres"
)

const shutdownTimeout = 5 * time.Second

// A Ranger manages and exposes all components of the habits API to one another.
//
// The embedded *router.Router serves every route of the API,
// so a Ranger is itself an http.Handler.
type Ranger struct {
	*router.Router

	cfg Config
	db  *postgres.DB
	ex  auth.Exchanger
	l   logger.Logger
	now func() time.Time
	srv *http.Server
}

// New constructs a *Ranger from cfg.
//
// Each component not supplied by opts is built from cfg:
// the logger, the database connection, the Google exchanger,
// and, from those, the token codec, issuer, guard, responder, parser and router.
func New(cfg Config, opts ...RangerOption) (*Ranger, error) {
	rng := &Ranger{now: time.Now}
	for _, opt := range opts {
		if err := opt(rng); err != nil {
			return nil, fmt.Errorf("%w: %s", habits.ErrBadConfig, err)
		}
	}

	cfg = withDefaults(cfg)
	rng.cfg = cfg

	if rng.l == nil {
		rng.l = defaultLogger(cfg)
	}

	codec, err := auth.NewTokenCodec(cfg.JWTSecret, auth.WithClock(rng.now))
	if err != nil {
		return nil, err
	}

	if rng.ex == nil {
		rng.ex, err = auth.NewGoogleExchanger(cfg.GoogleClientID, cfg.GoogleClientSecret)
		if err != nil {
			return nil, err
		}
	}

	if rng.db == nil {
		rng.db, err = defaultDB(cfg, rng.l)
		if err != nil {
			return nil, err
		}
	}

	users := postgres.NewUserStore(rng.db)
	d := defaultResponder(cfg, rng.l)
	currentUser := middleware.CurrentUser(d, auth.NewGuard(codec, users), rng.l)
	rng.Router = defaultRouter(cfg.Env, currentUser, defaultMiddlewares(cfg, rng.l))

	h := handler.New(handler.Config{
		Admins:      cfg.AdminEmails,
		APIBaseURL:  cfg.APIBaseURL,
		DB:          rng.db,
		Exchanger:   rng.ex,
		FrontendURL: cfg.FrontendURL,
		Issuer:      auth.NewIssuer(codec, users, cfg.JWTTTL),
		Logger:      rng.l,
		Now:         rng.now,
		Parser:      req.NewParser(),
		Responder:   d,
	})
	h.Register(rng.Router, middleware.RateLimit(middleware.NewVisitors(cfg.RateLimitRPS, cfg.RateLimitBurst)))

	rng.srv = defaultServer(cfg, rng.Router)

	return rng, nil
}

// withDefaults fills in the values a hand-built Config may leave zero.
func withDefaults(cfg Config) Config {
	if cfg.Env.Valid() != nil {
		cfg.Env = habits.Development
	}

	if cfg.Addr == "" {
		cfg.Addr = DefaultPort
	}

	if cfg.JWTTTL <= 0 {
		cfg.JWTTTL = DefaultJWTTTL
	}

	if cfg.APIBaseURL == nil {
		cfg.APIBaseURL, _ = url.Parse(defaultAPIBaseURL)
	}

	if cfg.FrontendURL == nil {
		cfg.FrontendURL, _ = url.Parse(defaultFrontendURL)
	}

	if cfg.CORSOrigins == nil {
		cfg.CORSOrigins = defaultCORSOrigins
	}

	if cfg.DB == nil {
		cfg.DB = NewPostgresConfig()
	}

	return cfg
}

func (rng *Ranger) EmitConfig() Config        { return rng.cfg }
func (rng *Ranger) EmitDB() *postgres.DB      { return rng.db }
func (rng *Ranger) EmitLogger() logger.Logger { return rng.l }

// Guide begins the web server.
//
// These, and (*Ranger).Shutdown, stop Guide:
//
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (rng *Ranger) Guide() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		rng.l.Info(fmt.Sprintf("running web server at %s", rng.srv.Addr), nil)
		if err := rng.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("could not listen: %w", err)
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			rng.l.Error(err.Error(), nil)
			return err
		}

		return nil

	case <-ctx.Done():
		rng.l.Info("received shutdown signal", nil)
		return rng.Shutdown()
	}
}

// Shutdown drains the web server, waiting at most 5 seconds,
// and closes the database connection.
func (rng *Ranger) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	rng.l.Info("shutting down web server", nil)
	if err := rng.srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	if sqlDB, err := rng.db.DB().DB(); err == nil {
		sqlDB.Close()
	}

	rng.l.Info("web server shutdown successfully", nil)
	return nil
}
