package ranger

import (
	"net/http"

	"github.com/xy-planning-network/habits"
	"github.com/xy-planning-network/habits/http/middleware"
	"github.com/xy-planning-network/habits/http/resp"
	"github.com/xy-planning-network/habits/http/router"
	"github.com/xy-planning-network/habits/logger"
	"github.com/xy-planning-network/habits/postgres"
)

// defaultLogger constructs the logger.Logger used throughout the habits API.
func defaultLogger(cfg Config) logger.Logger {
	return logger.New(
		logger.WithEnv(cfg.Env.String()),
		logger.WithLevel(cfg.LogLevel),
		logger.WithSentry(cfg.SentryDSN),
	)
}

// defaultDB connects to PostgreSQL with cfg.DB,
// applying pending migrations first when cfg.AutoMigrate is set.
func defaultDB(cfg Config, l logger.Logger) (*postgres.DB, error) {
	if cfg.AutoMigrate {
		l.Info("applying database migrations", nil)
		if err := postgres.Migrate(postgres.MigrationURL(cfg.DB)); err != nil {
			return nil, err
		}
	}

	return postgres.Connect(cfg.DB, cfg.Env)
}

// defaultMiddlewares lists the middlewares every request passes through, outermost first.
func defaultMiddlewares(cfg Config, l logger.Logger) []middleware.Adapter {
	mws := make([]middleware.Adapter, 0, 5)
	if cfg.ForceHTTPS {
		mws = append(mws, middleware.ForceHTTPS(cfg.Env))
	}

	return append(mws,
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(l),
		middleware.CORS(cfg.CORSOrigins),
	)
}

// defaultRouter constructs the *router.Router the web server directs requests with.
func defaultRouter(env habits.Environment, currentUser middleware.Adapter, mws []middleware.Adapter) *router.Router {
	rt := router.New(env, currentUser)
	rt.OnEveryRequest(mws...)

	return rt
}

// defaultResponder configures the *resp.Responder used by the handlers and middlewares.
func defaultResponder(cfg Config, l logger.Logger) *resp.Responder {
	return resp.NewResponder(
		resp.WithLogger(l),
		resp.WithRootUrl(cfg.FrontendURL.String()),
	)
}

// defaultServer constructs the *http.Server serving h.
func defaultServer(cfg Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr,
		Handler:      h,
		IdleTimeout:  cfg.IdleTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}
