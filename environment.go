package habits

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// An Environment is a context the habits API is deployed in.
type Environment string

const (
	Demo        Environment = "DEMO"
	Development Environment = "DEVELOPMENT"
	Production  Environment = "PRODUCTION"
	Review      Environment = "REVIEW"
	Staging     Environment = "STAGING"
	Testing     Environment = "TESTING"
)

func (e Environment) String() string { return string(e) }

func (e Environment) Valid() error {
	switch e {
	case Demo, Development, Production, Review, Staging, Testing:
		return nil
	default:
		return fmt.Errorf("%w: environment %q", ErrNotValid, string(e))
	}
}

func (e Environment) IsDemo() bool        { return e == Demo }
func (e Environment) IsDevelopment() bool { return e == Development }
func (e Environment) IsProduction() bool  { return e == Production }
func (e Environment) IsReview() bool      { return e == Review }
func (e Environment) IsStaging() bool     { return e == Staging }
func (e Environment) IsTesting() bool     { return e == Testing }

// envVarOr parses the environment variable key with parse.
// If key is unset or empty, or parse fails, envVarOr returns def.
func envVarOr[T any](key string, def T, parse func(string) (T, error)) T {
	val := os.Getenv(key)
	if val == "" {
		return def
	}

	parsed, err := parse(val)
	if err != nil {
		return def
	}

	return parsed
}

// EnvVarOrBool reads key as "true" or "false", ignoring case, or returns def.
func EnvVarOrBool(key string, def bool) bool {
	return envVarOr(key, def, func(val string) (bool, error) {
		switch strings.ToLower(val) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		default:
			return false, ErrBadFormat
		}
	})
}

// EnvVarOrDuration reads key as a [time.Duration], like "90s", or returns def.
func EnvVarOrDuration(key string, def time.Duration) time.Duration {
	return envVarOr(key, def, time.ParseDuration)
}

// EnvVarOrEnv reads key as an [Environment], ignoring case, or returns def.
func EnvVarOrEnv(key string, def Environment) Environment {
	return envVarOr(key, def, func(val string) (Environment, error) {
		env := Environment(strings.ToUpper(val))
		return env, env.Valid()
	})
}

// EnvVarOrInt reads key as an int or returns def.
func EnvVarOrInt(key string, def int) int {
	return envVarOr(key, def, strconv.Atoi)
}

// EnvVarOrString reads key or returns def.
func EnvVarOrString(key, def string) string {
	return envVarOr(key, def, func(val string) (string, error) { return val, nil })
}

// EnvVarOrStrings reads key as a comma-separated list,
// trimming whitespace and dropping empty items.
// If nothing remains, EnvVarOrStrings returns def.
func EnvVarOrStrings(key string, def []string) []string {
	return envVarOr(key, def, func(val string) ([]string, error) {
		var vals []string
		for _, v := range strings.Split(val, ",") {
			if v = strings.TrimSpace(v); v != "" {
				vals = append(vals, v)
			}
		}

		if len(vals) == 0 {
			return nil, ErrMissingData
		}

		return vals, nil
	})
}

// EnvVarOrURL reads key as an absolute URL or parses def instead.
// Trailing slashes are trimmed from the path
// so callers can append paths to the URL's string form.
//
// If def is not a URL either, EnvVarOrURL returns nil.
func EnvVarOrURL(key, def string) *url.URL {
	defURL, err := parseBaseURL(def)
	if err != nil {
		return nil
	}

	return envVarOr(key, defURL, parseBaseURL)
}

func parseBaseURL(val string) (*url.URL, error) {
	u, err := url.ParseRequestURI(val)
	if err != nil {
		return nil, err
	}

	u.Path = strings.TrimRight(u.Path, "/")
	return u, nil
}
