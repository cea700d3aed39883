package postgres

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlog "gorm.io/gorm/logger"

	"github.com/xy-planning-network/habits"
)

// keyword/value connection string, https://www.postgresql.org/docs/current/libpq-connect.html#LIBPQ-PARAMKEYWORDS
const cxnStr = "host=%s port=%s dbname=%s user=%s password=%s sslmode=%s"

// defaultSSLMode is libpq's own default.
const defaultSSLMode = "prefer"

// CxnConfig locates a PostgreSQL database and sizes the connection pool to it.
// A non-empty URL wins over the individual parts.
type CxnConfig struct {
	URL      string
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string

	MaxIdleCxns    int
	MaxOpenCxns    int
	CxnMaxLifetime time.Duration
}

func (c *CxnConfig) sslMode() string {
	if c.SSLMode == "" {
		return defaultSSLMode
	}

	return c.SSLMode
}

// DSN is the connection string GORM's postgres driver opens.
func (c *CxnConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}

	return fmt.Sprintf(cxnStr, c.Host, c.Port, c.Name, c.User, c.Password, c.sslMode())
}

// MigrationURL builds the postgres:// URL golang-migrate connects with.
func MigrationURL(c *CxnConfig) string {
	if c.URL != "" {
		return c.URL
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.Name,
		RawQuery: url.Values{"sslmode": {c.sslMode()}}.Encode(),
	}

	return u.String()
}

// Connect opens a pool of connections to the database config describes.
// It leaves the schema alone; see Migrate.
func Connect(config *CxnConfig, env habits.Environment) (*DB, error) {
	db, err := Open(postgres.Open(config.DSN()), env)
	if err != nil {
		return nil, err
	}

	pool, err := db.DB().DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", habits.ErrUnexpected, err)
	}

	if n := config.MaxIdleCxns; n > 0 {
		pool.SetMaxIdleConns(n)
	}

	if n := config.MaxOpenCxns; n > 0 {
		pool.SetMaxOpenConns(n)
	}

	if d := config.CxnMaxLifetime; d > 0 {
		pool.SetConnMaxLifetime(d)
	}

	return db, nil
}

// Open wraps any GORM dialector in a *DB, so tests on SQLite or sqlmock
// run with the same settings as PostgreSQL in production.
func Open(dialector gorm.Dialector, env habits.Environment) (*DB, error) {
	cfg := &gorm.Config{
		Logger:                 newGORMLogger(env),
		NowFunc:                func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		SkipDefaultTransaction: true,
	}

	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: failed connecting to database: %s", habits.ErrUnexpected, err)
	}

	return NewDB(db), nil
}

// newGORMLogger reports slow queries and warnings, in color during development,
// and stays silent under test.
func newGORMLogger(env habits.Environment) gormlog.Interface {
	level := gormlog.Warn
	if env.IsTesting() {
		level = gormlog.Silent
	}

	return gormlog.New(log.New(os.Stdout, "\r\n", log.LstdFlags), gormlog.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  env.IsDevelopment(),
	})
}
