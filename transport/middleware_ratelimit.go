package transport

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/tamirse/cmd/config"
	"github.com/muhammadheryan/tamirse/constant"
	"github.com/muhammadheryan/tamirse/utils/errors"
	"github.com/muhammadheryan/tamirse/utils/logger"
	"github.com/muhammadheryan/tamirse/utils/metrics"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
	// pending counts in-flight requests holding a slot in skipSuccessful mode
	pending int
}

// RateLimiter allows Max requests per Window for each client IP. With
// skipSuccessful only responses with status >= 400 consume the budget.
type RateLimiter struct {
	name           string
	rule           config.RateLimitRule
	enabled        bool
	trustProxy     bool
	skipSuccessful bool
	metrics        *metrics.Metrics

	mu        sync.Mutex
	limiters  map[string]*limiterEntry
	lastSweep time.Time
}

// NewRateLimiter builds a limiter for one rule. X-Forwarded-For is only
// used as the client key when cfg.TrustProxy is set.
func NewRateLimiter(name string, rule config.RateLimitRule, cfg config.RateLimitConfig, skipSuccessful bool, m *metrics.Metrics) *RateLimiter {
	enabled := cfg.Enabled
	if rule.Max <= 0 || rule.Window <= 0 {
		enabled = false
	}
	return &RateLimiter{
		name:           name,
		rule:           rule,
		enabled:        enabled,
		trustProxy:     cfg.TrustProxy,
		skipSuccessful: skipSuccessful,
		metrics:        m,
		limiters:       make(map[string]*limiterEntry),
	}
}

// entry returns the limiter state for key; callers hold mu
func (rl *RateLimiter) entry(key string, now time.Time) *limiterEntry {
	if now.Sub(rl.lastSweep) > rl.rule.Window {
		rl.sweep(now)
	}

	e, ok := rl.limiters[key]
	if !ok {
		e = &limiterEntry{
			limiter: rate.NewLimiter(rate.Every(rl.rule.Window/time.Duration(rl.rule.Max)), rl.rule.Max),
		}
		rl.limiters[key] = e
	}
	e.lastSeen = now
	return e
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	return rl.entry(key, now).limiter.AllowN(now, 1)
}

// acquire holds a slot for an in-flight request so that concurrent
// requests cannot all pass on the same remaining token
func (rl *RateLimiter) acquire(key string) (*limiterEntry, bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	e := rl.entry(key, now)
	if e.limiter.TokensAt(now)-float64(e.pending) < 1 {
		return nil, false
	}
	e.pending++
	return e, true
}

// release frees the slot; a failed request spends its token
func (rl *RateLimiter) release(e *limiterEntry, failed bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	e.pending--
	if failed {
		e.limiter.AllowN(time.Now(), 1)
	}
}

func (rl *RateLimiter) Middleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return rl.handler(next)
	}
}

// Wrap limits a single route handler
func (rl *RateLimiter) Wrap(fn http.HandlerFunc) http.Handler {
	return rl.handler(fn)
}

func (rl *RateLimiter) handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.enabled {
			next.ServeHTTP(w, r)
			return
		}

		key := rl.clientKey(r)

		if rl.skipSuccessful {
			e, ok := rl.acquire(key)
			if !ok {
				rl.deny(w, r, key)
				return
			}
			wrapped := wrapResponseWriter(w)
			failed := true
			defer func() { rl.release(e, failed) }()
			next.ServeHTTP(wrapped, r)
			failed = wrapped.statusCode >= http.StatusBadRequest
			return
		}

		if !rl.allow(key) {
			rl.deny(w, r, key)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) deny(w http.ResponseWriter, r *http.Request, key string) {
	logger.Warn("rate limit exceeded",
		zap.String("limiter", rl.name),
		zap.String("key", key),
		zap.String("path", r.URL.Path),
	)
	if rl.metrics != nil {
		rl.metrics.RateLimited(rl.name)
	}
	retry := rl.rule.Window / time.Duration(rl.rule.Max)
	w.Header().Set("Retry-After", strconv.Itoa(int(retry.Seconds())))
	writeError(w, errors.SetCustomError(constant.ErrTooManyRequests))
}

// sweep drops limiters idle for longer than one window; callers hold mu
func (rl *RateLimiter) sweep(now time.Time) {
	rl.lastSweep = now
	for k, e := range rl.limiters {
		if e.pending == 0 && now.Sub(e.lastSeen) > rl.rule.Window {
			delete(rl.limiters, k)
		}
	}
}

// clientKey is the peer address, or the first X-Forwarded-For hop when
// the API runs behind a trusted proxy
func (rl *RateLimiter) clientKey(r *http.Request) string {
	if rl.trustProxy {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			if ip := strings.TrimSpace(strings.Split(fwd, ",")[0]); ip != "" {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
