package logger

import (
	"fmt"

	"github.com/getsentry/sentry-go"

	"github.com/xy-planning-network/habits"
)

// A SentryLogger logs through a HabitsLogger
// and reports the LogContext.Error of warnings and worse to Sentry.
type SentryLogger struct {
	l SkipLogger
}

// NewSentryLogger initializes the Sentry client for dsn and wraps tl.
// If Sentry cannot be initialized, NewSentryLogger logs why and returns tl as is.
func NewSentryLogger(tl *HabitsLogger, dsn string) Logger {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:          dsn,
		Environment:  tl.env,
		IgnoreErrors: []string{"write: broken pipe", "context canceled"},
	})
	if err != nil {
		tl.Error(fmt.Sprintf("unable to init Sentry: %s", err), nil)
		return tl
	}

	// NOTE(dlk): one more frame for the SentryLogger method in between
	return &SentryLogger{l: tl.AddSkip(tl.Skip() + 1)}
}

// AddSkip replaces the current number of frames to scroll back when logging a message.
func (sl *SentryLogger) AddSkip(i int) SkipLogger { return sl.l.AddSkip(i) }

func (sl *SentryLogger) Debug(msg string, ctx *LogContext) { sl.l.Debug(msg, ctx) }
func (sl *SentryLogger) Info(msg string, ctx *LogContext)  { sl.l.Info(msg, ctx) }

func (sl *SentryLogger) Warn(msg string, ctx *LogContext) {
	if sl.enabled(LogLevelWarn) {
		sl.l.Warn(msg, ctx)
		report(sentry.LevelWarning, ctx)
	}
}

func (sl *SentryLogger) Error(msg string, ctx *LogContext) {
	if sl.enabled(LogLevelError) {
		sl.l.Error(msg, ctx)
		report(sentry.LevelError, ctx)
	}
}

func (sl *SentryLogger) Fatal(msg string, ctx *LogContext) {
	if sl.enabled(LogLevelFatal) {
		sl.l.Fatal(msg, ctx)
		report(sentry.LevelFatal, ctx)
	}
}

func (sl *SentryLogger) LogLevel() LogLevel { return sl.l.LogLevel() }
func (sl *SentryLogger) Skip() int          { return sl.l.Skip() }

func (sl *SentryLogger) enabled(ll LogLevel) bool { return sl.l.LogLevel() <= ll }

// report captures ctx.Error in Sentry along with the user, request and data around it.
// Without an error, there is nothing to report.
func report(level sentry.Level, ctx *LogContext) {
	if ctx == nil || ctx.Error == nil {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(level)

		if ctx.User != nil {
			scope.SetUser(sentry.User{ID: ctx.User.GetID(), Email: ctx.User.GetEmail()})
		}

		if r := ctx.Request; r != nil {
			scope.SetRequest(r)
			if id, ok := r.Context().Value(habits.RequestIDKey).(string); ok {
				scope.SetTag("request_id", id)
			}
		}

		if len(ctx.Data) > 0 {
			scope.SetContext("data", sentry.Context(ctx.Data))
		}

		sentry.CaptureException(ctx.Error)
	})
}
