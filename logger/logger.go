package logger

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"runtime"
	"strings"

	"github.com/fatih/color"
)

// knownFrames is the depth from HabitsLogger.emit to the code calling a Logger method.
const knownFrames = 2

var habitsPathRegex = regexp.MustCompile(`habits/.*$`)

// A Logger writes messages at one of five levels.
// Messages below its LogLevel are dropped.
type Logger interface {
	Debug(msg string, ctx *LogContext)
	Error(msg string, ctx *LogContext)
	Fatal(msg string, ctx *LogContext)
	Info(msg string, ctx *LogContext)
	Warn(msg string, ctx *LogContext)

	LogLevel() LogLevel
}

// A SkipLogger is a Logger that reports the call site a number of frames further up the stack.
// Helpers wrapping a Logger add their own frames so logs point at their callers.
type SkipLogger interface {
	AddSkip(i int) SkipLogger
	Skip() int
	Logger
}

type LogLevel int

const (
	LogLevelUnk LogLevel = iota
	LogLevelDebug
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelFatal
)

var levelNames = map[string]LogLevel{
	"DEBUG":   LogLevelDebug,
	"INFO":    LogLevelInfo,
	"WARN":    LogLevelWarn,
	"WARNING": LogLevelWarn,
	"ERROR":   LogLevelError,
	"FATAL":   LogLevelFatal,
}

// NewLogLevel parses val, ignoring case, into a LogLevel.
// Unknown values produce LogLevelUnk.
func NewLogLevel(val string) LogLevel {
	return levelNames[strings.ToUpper(val)]
}

func (ll LogLevel) String() string {
	switch ll {
	case LogLevelDebug:
		return "[DEBUG]"
	case LogLevelInfo:
		return "[INFO]"
	case LogLevelWarn:
		return "[WARN]"
	case LogLevelError:
		return "[ERROR]"
	case LogLevelFatal:
		return "[FATAL]"
	default:
		return "[UNK]"
	}
}

func (ll LogLevel) colorize(format string, a ...any) string {
	switch ll {
	case LogLevelDebug:
		return color.WhiteString(format, a...)
	case LogLevelWarn:
		return color.YellowString(format, a...)
	case LogLevelError:
		return color.RedString(format, a...)
	case LogLevelFatal:
		return color.MagentaString(format, a...)
	default:
		return color.BlueString(format, a...)
	}
}

// HabitsLogger is the Logger printing through a *log.Logger.
// Each line reads: level, call site, quoted message and, when given, the LogContext as JSON.
type HabitsLogger struct {
	skip      int
	env       string
	sentryDSN string
	l         *log.Logger
	ll        LogLevel
}

// New constructs a Logger writing to os.Stdout at LogLevelInfo for the DEVELOPMENT environment,
// unless opts say otherwise.
// With WithSentry, the HabitsLogger comes wrapped in a SentryLogger.
func New(opts ...LoggerOptFn) Logger {
	l := &HabitsLogger{
		env: "DEVELOPMENT",
		l:   log.New(os.Stdout, "", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(l)
	}

	if l.ll == LogLevelUnk {
		l.ll = LogLevelInfo
	}

	if l.sentryDSN == "" {
		return l
	}

	l.Info("SENTRY_DSN set, configuring SentryLogger", nil)
	return NewSentryLogger(l, l.sentryDSN)
}

// AddSkip returns a copy of l skipping i frames.
// It replaces the skip count rather than adding to it; use Skip for the current one.
func (l *HabitsLogger) AddSkip(i int) SkipLogger {
	cp := *l
	cp.skip = i
	return &cp
}

func (l *HabitsLogger) Debug(msg string, ctx *LogContext) { l.emit(LogLevelDebug, msg, ctx) }
func (l *HabitsLogger) Error(msg string, ctx *LogContext) { l.emit(LogLevelError, msg, ctx) }

// Fatal logs at LogLevelFatal. It does not exit.
func (l *HabitsLogger) Fatal(msg string, ctx *LogContext) { l.emit(LogLevelFatal, msg, ctx) }
func (l *HabitsLogger) Info(msg string, ctx *LogContext)  { l.emit(LogLevelInfo, msg, ctx) }
func (l *HabitsLogger) Warn(msg string, ctx *LogContext)  { l.emit(LogLevelWarn, msg, ctx) }

func (l *HabitsLogger) LogLevel() LogLevel { return l.ll }
func (l *HabitsLogger) Skip() int          { return l.skip }

func (l *HabitsLogger) emit(level LogLevel, msg string, ctx *LogContext) {
	if level < l.ll {
		return
	}

	caller := ""
	if ctx != nil {
		caller = ctx.Caller
	}

	if caller == "" {
		_, file, line, _ := runtime.Caller(knownFrames + l.skip)
		caller = fmt.Sprintf(callerTmpl, immediateFilepath(file), line)
	}

	line := level.colorize("%s %s '%s'", level, caller, msg)
	if ctx == nil {
		l.l.Println(line)
		return
	}

	l.l.Println(line, "log_context:", ctx)
}
