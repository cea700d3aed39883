package middleware

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultRate  rate.Limit = 5
	DefaultBurst            = 20

	// TooManyRequestsMsg is the detail a client receives when it exceeds its limit.
	TooManyRequestsMsg = "too many requests"

	visitorTTL = time.Hour
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Visitors holds a token bucket per client IP.
// It is safe for concurrent use.
type Visitors struct {
	mu    sync.Mutex
	seen  map[string]*visitor
	rps   rate.Limit
	burst int
	now   func() time.Time
}

// NewVisitors constructs Visitors granting each IP rps requests a second,
// with bursts of up to burst.
// Non-positive values fall back to DefaultRate and DefaultBurst.
func NewVisitors(rps rate.Limit, burst int) *Visitors {
	if rps <= 0 {
		rps = DefaultRate
	}

	if burst <= 0 {
		burst = DefaultBurst
	}

	return &Visitors{seen: make(map[string]*visitor), rps: rps, burst: burst, now: time.Now}
}

// Allow spends a token from ip's bucket, reporting false when it is empty.
func (vs *Visitors) Allow(ip string) bool {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	now := vs.now()
	v, ok := vs.seen[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(vs.rps, vs.burst)}
		vs.seen[ip] = v
	}

	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// Len reports how many IPs are tracked.
func (vs *Visitors) Len() int {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	return len(vs.seen)
}

// Cleanup forgets IPs unseen for an hour.
func (vs *Visitors) Cleanup() {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	cutoff := vs.now().Add(-visitorTTL)
	for ip, v := range vs.seen {
		if v.lastSeen.Before(cutoff) {
			delete(vs.seen, ip)
		}
	}
}

// RateLimit answers 429 to clients, told apart by ClientIP, that run out of tokens.
// Every allowed request also sweeps stale visitors.
func RateLimit(visitors *Visitors) Adapter {
	if visitors == nil {
		return NoopAdapter
	}

	body, _ := json.Marshal(map[string]any{"data": map[string]string{"error": TooManyRequestsMsg}})

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if visitors.Allow(ClientIP(r)) {
				visitors.Cleanup()
				h.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Content-Type", "application/json; charset=UTF-8")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write(body)
		})
	}
}
