package logger

import "log"

// A LoggerOptFn is a functional option configuring a HabitsLogger when constructing a new one.
type LoggerOptFn func(*HabitsLogger)

// WithEnv sets the environment HabitsLogger is operating in.
func WithEnv(env string) LoggerOptFn {
	return func(l *HabitsLogger) {
		l.env = env
	}
}

// WithLevel sets the log level HabitsLogger uses.
func WithLevel(level LogLevel) LoggerOptFn {
	return func(l *HabitsLogger) {
		l.ll = level
	}
}

// WithLogger sets the log.Logger HabitsLogger uses.
func WithLogger(log *log.Logger) LoggerOptFn {
	return func(l *HabitsLogger) {
		l.l = log
	}
}

// WithSentry ships warnings and errors to the Sentry project identified by dsn.
// An empty dsn leaves Sentry off.
func WithSentry(dsn string) LoggerOptFn {
	return func(l *HabitsLogger) {
		l.sentryDSN = dsn
	}
}

// WithSkip sets the number of frames in the call stack
// to skip in order to log the desired file and line number
// of the calling code.
func WithSkip(skip int) LoggerOptFn {
	return func(l *HabitsLogger) {
		l.skip = skip
	}
}
