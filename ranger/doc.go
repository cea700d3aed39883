/*
Package ranger initializes and manages the habits API with sane defaults.

# Ranger

The main entrypoint to package ranger is the [Ranger] type.
A [Ranger] ought to be constructed with [New] using a [Config] read by [NewConfig].

[*Ranger.Guide] begins the web server.
By default, [*Ranger.Guide] listens on [DefaultPort] (:8000) on every interface.
Upon calling [*Ranger.Guide], every route of the API is active.
Stop that web server with [*Ranger.Shutdown] or send a signal [*Ranger.Guide] listens for.

# Configuration

The habits API is configured through environment variables.
[NewConfig] reads them once; nothing reads them again afterwards.
Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - ADMIN_EMAILS: a comma-separated list of the email addresses allowed to use the admin routes
  - API_BASE_URL: the base URL Google redirects to after consent; default: http://localhost:8000
  - CORS_ORIGINS: a comma-separated list of origins allowed to make cross-origin requests; default: localhost and 127.0.0.1 on ports 3000, 5173, 8080 and 8082
  - DATABASE_AUTO_MIGRATE: whether to apply pending migrations when starting; default: false
  - DATABASE_CXN_MAX_LIFETIME: the longest a connection is reused, as understood by [time.ParseDuration]; default: 1h
  - DATABASE_HOST: the host the database is running on; default: localhost
  - DATABASE_MAX_IDLE_CXNS: default: 2
  - DATABASE_MAX_OPEN_CXNS: default: 10
  - DATABASE_NAME: the name of the database
  - DATABASE_PASSWORD: the password for authenticating a connection to the database
  - DATABASE_PORT: the port the database is listening on; default: 5432
  - DATABASE_SSLMODE: default: prefer
  - DATABASE_URL: the fully-qualified connection string for connecting to the database; replaces all other connection DATABASE_* env vars
  - DATABASE_USER: the user for authenticating a connection to the database
  - ENVIRONMENT: the environment the application is running in; cf. [habits.Environment]
  - FORCE_HTTPS: whether to redirect plain HTTP requests to HTTPS outside of development; default: false
  - FRONTEND_URL: where the OAuth callback sends the browser; default: http://localhost:5173
  - GOOGLE_CLIENT_ID: required
  - GOOGLE_CLIENT_SECRET: required
  - HOST: the host the application is running on; default: localhost
  - JWT_SECRET: required; the key session tokens are signed with; SECRET_KEY is read when unset
  - JWT_TTL: how long a session token lasts, as understood by [time.ParseDuration]; ACCESS_TOKEN_EXPIRE_MINUTES is read when unset; default: 24h
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - PORT: the port the application should listen on; default: :8000
  - RATE_LIMIT_BURST: the burst of login requests allowed per IP address; default: 20
  - RATE_LIMIT_RPS: the sustained login requests per second allowed per IP address; default: 5
  - SENTRY_DSN: the Sentry project warnings, errors and panics are reported to
  - SERVER_IDLE_TIMEOUT: the timeout for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout for writing HTTP responses; default: 10s
*/
package ranger
