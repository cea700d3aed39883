package middleware

import (
	"net/http"
	"time"

	"github.com/xy-planning-network/habits"
	"github.com/xy-planning-network/habits/logger"
)

// maskedQueryKeys never appear in a request log in plain text.
var maskedQueryKeys = []string{"code", "token", "password"}

// A LogRequestRecord describes a request handled by the API.
type LogRequestRecord struct {
	BodySize       int    `json:"bodySize"`
	Duration       string `json:"duration"`
	Host           string `json:"host"`
	ID             string `json:"id,omitempty"`
	IPAddr         string `json:"ipAddr,omitempty"`
	Method         string `json:"method"`
	Path           string `json:"path"`
	Protocol       string `json:"protocol"`
	Referrer       string `json:"referrer,omitempty"`
	ReqContentType string `json:"reqContentType,omitempty"`
	Scheme         string `json:"scheme,omitempty"`
	Status         int    `json:"status"`
	URI            string `json:"uri"`
	UserAgent      string `json:"userAgent,omitempty"`
}

// Map converts rec into the form stashed in logger.LogContext.Data.
func (rec LogRequestRecord) Map() map[string]any {
	m := map[string]any{
		"bodySize": rec.BodySize,
		"duration": rec.Duration,
		"host":     rec.Host,
		"method":   rec.Method,
		"path":     rec.Path,
		"protocol": rec.Protocol,
		"status":   rec.Status,
		"uri":      rec.URI,
	}

	for k, v := range map[string]string{
		"id":             rec.ID,
		"ipAddr":         rec.IPAddr,
		"referrer":       rec.Referrer,
		"reqContentType": rec.ReqContentType,
		"scheme":         rec.Scheme,
		"userAgent":      rec.UserAgent,
	} {
		if v != "" {
			m[k] = v
		}
	}

	return m
}

// LogRequest logs a LogRequestRecord for every request after it has been handled
// using the enclosed implementation of logger.Logger.
//
// LogRequest scrubs the values for the following query keys:
// - code
// - token
// - password
//
// if logger.Logger is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(ls logger.Logger) Adapter {
	if ls == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &recordingWriter{ResponseWriter: w}
			h.ServeHTTP(rw, r)

			rec := NewLogRequestRecord(r)
			rec.BodySize = rw.size
			rec.Duration = time.Since(start).String()
			rec.Status = rw.status()

			ls.Info(r.Method+" "+rec.URI, &logger.LogContext{Caller: "http/middleware", Data: rec.Map()})
		})
	}
}

// NewLogRequestRecord collects the request attributes of r into a LogRequestRecord.
func NewLogRequestRecord(r *http.Request) LogRequestRecord {
	q := r.URL.Query()
	for _, key := range maskedQueryKeys {
		habits.Mask(q, key)
	}

	uri := r.URL.Path
	if query := q.Encode(); query != "" {
		uri += "?" + query
	}

	rec := LogRequestRecord{
		Host:           r.Host,
		Method:         r.Method,
		Path:           r.URL.Path,
		Protocol:       r.Proto,
		Referrer:       r.Referer(),
		ReqContentType: r.Header.Get("Content-Type"),
		Scheme:         r.URL.Scheme,
		URI:            uri,
		UserAgent:      r.UserAgent(),
	}

	rec.ID, _ = r.Context().Value(habits.RequestIDKey).(string)
	rec.IPAddr, _ = r.Context().Value(habits.IpAddrKey).(string)

	return rec
}

// A recordingWriter notes the status code and number of bytes written by a handler.
type recordingWriter struct {
	http.ResponseWriter
	code int
	size int
}

func (rw *recordingWriter) WriteHeader(code int) {
	if rw.code == 0 {
		rw.code = code
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *recordingWriter) Write(b []byte) (int, error) {
	if rw.code == 0 {
		rw.code = http.StatusOK
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.size += n
	return n, err
}

func (rw *recordingWriter) Unwrap() http.ResponseWriter { return rw.ResponseWriter }

func (rw *recordingWriter) status() int {
	if rw.code == 0 {
		return http.StatusOK
	}
	return rw.code
}
