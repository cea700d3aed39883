// Command migrate applies or rolls back the habits database schema.
//
// Usage:
//
//	migrate up|down|version
//
// The database is configured by the same DATABASE env vars the server reads.
package main

import (
	"flag"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/xy-planning-network/habits"
	"github.com/xy-planning-network/habits/logger"
	"github.com/xy-planning-network/habits/postgres"
	"github.com/xy-planning-network/habits/ranger"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: migrate up|down|version")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	env := habits.EnvVarOrEnv("ENVIRONMENT", habits.Development)
	l := logger.New(logger.WithEnv(env.String()))
	dbURL := postgres.MigrationURL(ranger.NewPostgresConfig())

	switch cmd := flag.Arg(0); cmd {
	case "up":
		if err := postgres.Migrate(dbURL); err != nil {
			fatal(l, err)
		}
		l.Info("migrations applied", nil)

	case "down":
		if err := postgres.MigrateDown(dbURL); err != nil {
			fatal(l, err)
		}
		l.Info("migrations rolled back", nil)

	case "version":
		version, dirty, err := postgres.MigrationVersion(dbURL)
		if err != nil {
			fatal(l, err)
		}
		l.Info(fmt.Sprintf("schema version %d, dirty: %t", version, dirty), nil)

	default:
		flag.Usage()
		os.Exit(2)
	}
}

func fatal(l logger.Logger, err error) {
	l.Fatal(err.Error(), nil)
	os.Exit(1)
}
