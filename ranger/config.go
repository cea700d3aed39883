package ranger

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/xy-planning-network/habits"
	"github.com/xy-planning-network/habits/http/middleware"
	"github.com/xy-planning-network/habits/logger"
	"github.com/xy-planning-network/habits/postgres"
	"golang.org/x/time/rate"
)

const (
	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Log defaults
	logLevelEnvVar  = "LOG_LEVEL"
	defaultLogLevel = "INFO"
	sentryDsnEnvVar = "SENTRY_DSN"

	// Web server defaults
	DefaultHost               = "localhost"
	hostEnvVar                = "HOST"
	DefaultPort               = ":8000"
	portEnvVar                = "PORT"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 10 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	forceHTTPSEnvVar          = "FORCE_HTTPS"

	// Database defaults
	dbURLEnvVar             = "DATABASE_URL"
	dbHostEnvVar            = "DATABASE_HOST"
	defaultDBHost           = "localhost"
	dbNameEnvVar            = "DATABASE_NAME"
	dbPassEnvVar            = "DATABASE_PASSWORD"
	dbPortEnvVar            = "DATABASE_PORT"
	defaultDBPort           = "5432"
	dbSSLModeEnvVar         = "DATABASE_SSLMODE"
	defaultDBSSLMode        = "prefer"
	dbUserEnvVar            = "DATABASE_USER"
	dbMaxIdleCxnsEnvVar     = "DATABASE_MAX_IDLE_CXNS"
	defaultDBMaxIdleCxns    = 2
	dbMaxOpenCxnsEnvVar     = "DATABASE_MAX_OPEN_CXNS"
	defaultDBMaxOpenCxns    = 10
	dbCxnMaxLifetimeEnvVar  = "DATABASE_CXN_MAX_LIFETIME"
	defaultDBCxnMaxLifetime = time.Hour
	dbAutoMigrateEnvVar     = "DATABASE_AUTO_MIGRATE"

	// Auth defaults
	jwtSecretEnvVar          = "JWT_SECRET"
	legacySecretEnvVar       = "SECRET_KEY"
	jwtTTLEnvVar             = "JWT_TTL"
	legacyTTLMinutesEnvVar   = "ACCESS_TOKEN_EXPIRE_MINUTES"
	DefaultJWTTTL            = 24 * time.Hour
	googleClientIDEnvVar     = "GOOGLE_CLIENT_ID"
	googleClientSecretEnvVar = "GOOGLE_CLIENT_SECRET"
	adminEmailsEnvVar        = "ADMIN_EMAILS"

	// URL defaults
	apiBaseURLEnvVar   = "API_BASE_URL"
	defaultAPIBaseURL  = "http://localhost:8000"
	frontendURLEnvVar  = "FRONTEND_URL"
	defaultFrontendURL = "http://localhost:5173"
	corsOriginsEnvVar  = "CORS_ORIGINS"

	// Rate limit defaults
	rateLimitRPSEnvVar   = "RATE_LIMIT_RPS"
	rateLimitBurstEnvVar = "RATE_LIMIT_BURST"
)

var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://localhost:8080",
	"http://localhost:8082",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5173",
	"http://127.0.0.1:8080",
	"http://127.0.0.1:8082",
}

// A Config holds everything the habits API reads from its environment.
// It is read once, by NewConfig, and handed to New.
type Config struct {
	Env       habits.Environment
	LogLevel  logger.LogLevel
	SentryDSN string

	// Addr is the host:port the web server listens on.
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	ForceHTTPS   bool

	DB          *postgres.CxnConfig
	AutoMigrate bool

	JWTSecret          string
	JWTTTL             time.Duration
	GoogleClientID     string
	GoogleClientSecret string
	AdminEmails        []string

	APIBaseURL  *url.URL
	FrontendURL *url.URL
	CORSOrigins []string

	RateLimitRPS   rate.Limit
	RateLimitBurst int
}

// NewConfig reads a Config from environment variables.
// Confer the package documentation for the list.
//
// NewConfig returns an error wrapping habits.ErrBadConfig
// naming every required variable left unset.
func NewConfig() (Config, error) {
	env := habits.EnvVarOrEnv(environmentEnvVar, habits.Development)

	cfg := Config{
		Env:       env,
		LogLevel:  logger.NewLogLevel(habits.EnvVarOrString(logLevelEnvVar, defaultLogLevel)),
		SentryDSN: os.Getenv(sentryDsnEnvVar),

		Addr:         serverAddr(),
		ReadTimeout:  habits.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		WriteTimeout: habits.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
		IdleTimeout:  habits.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
		ForceHTTPS:   habits.EnvVarOrBool(forceHTTPSEnvVar, false),

		DB:          NewPostgresConfig(),
		AutoMigrate: habits.EnvVarOrBool(dbAutoMigrateEnvVar, false),

		JWTSecret:          habits.EnvVarOrString(jwtSecretEnvVar, os.Getenv(legacySecretEnvVar)),
		JWTTTL:             jwtTTL(),
		GoogleClientID:     os.Getenv(googleClientIDEnvVar),
		GoogleClientSecret: os.Getenv(googleClientSecretEnvVar),
		AdminEmails:        habits.EnvVarOrStrings(adminEmailsEnvVar, nil),

		APIBaseURL:  habits.EnvVarOrURL(apiBaseURLEnvVar, defaultAPIBaseURL),
		FrontendURL: habits.EnvVarOrURL(frontendURLEnvVar, defaultFrontendURL),
		CORSOrigins: habits.EnvVarOrStrings(corsOriginsEnvVar, defaultCORSOrigins),

		RateLimitRPS:   rate.Limit(habits.EnvVarOrInt(rateLimitRPSEnvVar, int(middleware.DefaultRate))),
		RateLimitBurst: habits.EnvVarOrInt(rateLimitBurstEnvVar, middleware.DefaultBurst),
	}

	if cfg.LogLevel == logger.LogLevelUnk {
		cfg.LogLevel = logger.LogLevelInfo
	}

	if err := cfg.Valid(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Valid reports which required values cfg is missing.
func (cfg Config) Valid() error {
	var missing []string
	if cfg.JWTSecret == "" {
		missing = append(missing, jwtSecretEnvVar)
	}

	if cfg.GoogleClientID == "" {
		missing = append(missing, googleClientIDEnvVar)
	}

	if cfg.GoogleClientSecret == "" {
		missing = append(missing, googleClientSecretEnvVar)
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", habits.ErrBadConfig, strings.Join(missing, ", "))
	}

	return nil
}

// NewPostgresConfig constructs a *postgres.CxnConfig from the DATABASE env vars.
// DATABASE_URL, when set, replaces the individual connection values.
func NewPostgresConfig() *postgres.CxnConfig {
	cfg := &postgres.CxnConfig{URL: os.Getenv(dbURLEnvVar)}
	if cfg.URL == "" {
		cfg.Host = habits.EnvVarOrString(dbHostEnvVar, defaultDBHost)
		cfg.Name = os.Getenv(dbNameEnvVar)
		cfg.Password = os.Getenv(dbPassEnvVar)
		cfg.Port = habits.EnvVarOrString(dbPortEnvVar, defaultDBPort)
		cfg.SSLMode = habits.EnvVarOrString(dbSSLModeEnvVar, defaultDBSSLMode)
		cfg.User = os.Getenv(dbUserEnvVar)
	}

	cfg.MaxIdleCxns = habits.EnvVarOrInt(dbMaxIdleCxnsEnvVar, defaultDBMaxIdleCxns)
	cfg.MaxOpenCxns = habits.EnvVarOrInt(dbMaxOpenCxnsEnvVar, defaultDBMaxOpenCxns)
	cfg.CxnMaxLifetime = habits.EnvVarOrDuration(dbCxnMaxLifetimeEnvVar, defaultDBCxnMaxLifetime)

	return cfg
}

func serverAddr() string {
	port := habits.EnvVarOrString(portEnvVar, DefaultPort)
	if port[0] != ':' {
		port = ":" + port
	}

	host := habits.EnvVarOrString(hostEnvVar, DefaultHost)
	if host == DefaultHost {
		// NOTE(dlk): an empty host listens on every interface
		host = ""
	}

	return host + port
}

// jwtTTL prefers JWT_TTL and falls back to ACCESS_TOKEN_EXPIRE_MINUTES.
func jwtTTL() time.Duration {
	if ttl := habits.EnvVarOrDuration(jwtTTLEnvVar, 0); ttl > 0 {
		return ttl
	}

	if mins := habits.EnvVarOrInt(legacyTTLMinutesEnvVar, 0); mins > 0 {
		return time.Duration(mins) * time.Minute
	}

	return DefaultJWTTTL
}
