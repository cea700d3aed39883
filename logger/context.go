package logger

import (
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"runtime"

	"github.com/xy-planning-network/habits"
)

var _ encoding.TextMarshaler = LogContext{}

const callerTmpl = "%s:%d"

var (
	// maskedHeaders never appear in a log in plain text.
	maskedHeaders = []string{"Authorization", "Cookie"}

	// maskedKeys are masked wherever they appear in a request's query, form or JSON body.
	maskedKeys = []string{"code", "token", "access_token", "id_token", "password"}
)

// A LogUser is whoever was signed in when something got logged.
type LogUser interface {
	GetID() string
	GetEmail() string
}

// LogContext carries what a log line needs beyond its message.
// Every field is optional.
type LogContext struct {
	// Caller replaces the file:line the Logger would otherwise work out.
	// It shows up in the line, not in the JSON.
	Caller string

	Data    map[string]any
	Error   error
	Request *http.Request
	User    LogUser
}

// MarshalText renders lc as JSON, leaving out empty fields and Caller.
// Credentials in Request are masked; Request.Body stays readable.
// Data that JSON cannot encode fails the marshal.
func (lc LogContext) MarshalText() ([]byte, error) {
	m := make(map[string]any)
	if lc.Data != nil {
		m["data"] = lc.Data
	}

	if lc.Error != nil {
		m["error"] = lc.Error.Error()
	}

	if lc.Request != nil {
		m["request"] = marshalRequest(lc.Request)
	}

	if u := marshalUser(lc.User); u != nil {
		m["user"] = u
	}

	return json.Marshal(m)
}

func (lc LogContext) String() string {
	b, err := lc.MarshalText()
	if err != nil {
		return fmt.Sprintf(`{"marshalError":%q}`, err.Error())
	}

	return string(b)
}

func marshalUser(lu LogUser) map[string]any {
	if lu == nil {
		return nil
	}

	u := make(map[string]any)
	for k, v := range map[string]string{"id": lu.GetID(), "email": lu.GetEmail()} {
		if v != "" {
			u[k] = v
		}
	}

	if len(u) == 0 {
		return nil
	}

	return u
}

func marshalRequest(req *http.Request) map[string]any {
	m := map[string]any{
		"method": req.Method,
		"url":    maskedURL(req.URL),
		"header": maskedHeader(req.Header),
	}

	if req.Header.Get("Content-Type") == "application/json" && req.Body != nil {
		if j := maskedJSONBody(req); j != nil {
			m["json"] = j
		}
	}

	if req.Form != nil {
		m["form"] = maskedValues(req.Form)
	}

	return m
}

func maskedValues(vals url.Values) url.Values {
	cp := make(url.Values, len(vals))
	for k, v := range vals {
		cp[k] = append([]string(nil), v...)
	}

	for _, key := range maskedKeys {
		habits.Mask(cp, key)
	}

	return cp
}

func maskedURL(u *url.URL) string {
	cp := *u
	cp.RawQuery = maskedValues(u.Query()).Encode()
	return cp.String()
}

func maskedHeader(h http.Header) http.Header {
	cp := h.Clone()
	for _, key := range maskedHeaders {
		if cp.Get(key) != "" {
			cp.Set(key, habits.LogMaskVal)
		}
	}

	return cp
}

// maskedJSONBody reads req.Body, puts back an identical reader, and
// returns the body as a JSON object with maskedKeys hidden.
// A body that is not a JSON object yields nil.
func maskedJSONBody(req *http.Request) map[string]any {
	body, err := io.ReadAll(req.Body)
	req.Body.Close()
	req.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil {
		return nil
	}

	var j map[string]any
	if json.Unmarshal(body, &j) != nil || j == nil {
		return nil
	}

	for _, key := range maskedKeys {
		if _, ok := j[key]; ok {
			j[key] = habits.LogMaskVal
		}
	}

	return j
}

// CurrentCaller is the file:line of the function calling the function that calls CurrentCaller,
// ready for LogContext.Caller.
func CurrentCaller() string {
	_, file, line, _ := runtime.Caller(2)
	return fmt.Sprintf(callerTmpl, immediateFilepath(file), line)
}

// immediateFilepath shortens file to its directory and name,
// or to its path from the module root for files of this module.
//
//	/home/dlk/my-project/main.go => my-project/main.go
//	/home/dlk/habits/http/handler/auth.go => habits/http/handler/auth.go
func immediateFilepath(file string) string {
	if match := habitsPathRegex.FindString(file); match != "" {
		return match
	}

	dir, name := path.Split(file)
	return path.Join(path.Base(dir), name)
}
