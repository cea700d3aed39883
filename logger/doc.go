/*
Package logger writes the habits API's logs.

A [Logger] drops messages below its [LogLevel].
[HabitsLogger] prints one line per message:

	2025/10/04 15:55:21 [WARN] http/middleware/current_user.go:43 'could not validate credentials' log_context: {"error":"auth: token expired"}

After the timestamp come the level, the call site and the quoted message.
Last is the optional [LogContext] as JSON, with credentials in its request masked.

Built [WithSentry], [New] returns a [SentryLogger],
which also sends the LogContext.Error of WARN and worse to Sentry.

Helpers logging on behalf of their callers use [SkipLogger]
to report their caller's file and line instead of their own.
*/
package logger
