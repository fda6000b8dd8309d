package httpx

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/taskboard/pkg/slogx"
	"golang.org/x/time/rate"
)

const msgTooManyRequests = "Too many requests. Please try again later."

// RateLimitConfig allows RequestsPerWindow requests per Window for a single
// key, with up to Burst of them back to back.
type RateLimitConfig struct {
	RequestsPerWindow int
	Window            time.Duration
	Burst             int
}

// interval is the time it takes to earn one request back.
func (c RateLimitConfig) interval() time.Duration {
	if c.RequestsPerWindow <= 0 || c.Window <= 0 {
		return 0
	}
	return c.Window / time.Duration(c.RequestsPerWindow)
}

// Route profiles. Each one can be overridden with
// RATELIMIT_<NAME>_REQUESTS, RATELIMIT_<NAME>_WINDOW_SEC and
// RATELIMIT_<NAME>_BURST, where NAME is STRICT, MODERATE, LENIENT or PUBLIC.
var (
	// StrictLimit guards register and login.
	StrictLimit = RateLimitConfig{RequestsPerWindow: 5, Window: time.Minute, Burst: 5}

	// ModerateLimit guards task writes.
	ModerateLimit = RateLimitConfig{RequestsPerWindow: 20, Window: time.Minute, Burst: 20}

	// LenientLimit guards authenticated reads.
	LenientLimit = RateLimitConfig{RequestsPerWindow: 100, Window: time.Minute, Burst: 100}

	// PublicLimit guards unauthenticated banners and health checks.
	PublicLimit = RateLimitConfig{RequestsPerWindow: 1000, Window: time.Minute, Burst: 1000}
)

func init() {
	StrictLimit = ParseRateLimitFromEnv("STRICT", StrictLimit)
	ModerateLimit = ParseRateLimitFromEnv("MODERATE", ModerateLimit)
	LenientLimit = ParseRateLimitFromEnv("LENIENT", LenientLimit)
	PublicLimit = ParseRateLimitFromEnv("PUBLIC", PublicLimit)
}

// ParseRateLimitFromEnv applies RATELIMIT_{prefix}_* overrides to def.
// Values that are missing, malformed or not positive are ignored.
func ParseRateLimitFromEnv(prefix string, def RateLimitConfig) RateLimitConfig {
	cfg := def
	if n, ok := positiveEnvInt("RATELIMIT_" + prefix + "_REQUESTS"); ok {
		cfg.RequestsPerWindow = n
	}
	if n, ok := positiveEnvInt("RATELIMIT_" + prefix + "_WINDOW_SEC"); ok {
		cfg.Window = time.Duration(n) * time.Second
	}
	if n, ok := positiveEnvInt("RATELIMIT_" + prefix + "_BURST"); ok {
		cfg.Burst = n
	}
	return cfg
}

func positiveEnvInt(key string) (int, bool) {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// KeyFunc groups requests into rate limit buckets. An empty key skips
// limiting for that request.
type KeyFunc func(*http.Request) string

// RemoteAddrKey keys on the connection's peer address. Forwarding headers
// are ignored here: behind a trusted proxy, chi's middleware.RealIP rewrites
// RemoteAddr before this runs.
func RemoteAddrKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// UserKey keys on the authenticated principal, or "" when there is none.
func UserKey(r *http.Request) string {
	if p, ok := PrincipalFromContext(r.Context()); ok {
		return p.ID
	}
	return ""
}

// JSONFieldKey keys on a top-level string field of a JSON body, lowercased.
// The body is put back for the handler.
func JSONFieldKey(field string) KeyFunc {
	return func(r *http.Request) string {
		if r.Body == nil {
			return ""
		}
		raw, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes))
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(raw))
		if err != nil {
			return ""
		}

		var fields map[string]any
		if json.Unmarshal(raw, &fields) != nil {
			return ""
		}
		v, _ := fields[field].(string)
		return strings.ToLower(strings.TrimSpace(v))
	}
}

// CompositeKey joins the non-empty keys produced by fns with sep.
func CompositeKey(sep string, fns ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(fns))
		for _, fn := range fns {
			if k := fn(r); k != "" {
				parts = append(parts, k)
			}
		}
		return strings.Join(parts, sep)
	}
}

type bucket struct {
	lim  *rate.Limiter
	seen time.Time
}

// keyedLimiter holds one token bucket per key. Buckets idle long enough to
// have refilled completely are dropped on the next sweep.
type keyedLimiter struct {
	cfg  RateLimitConfig
	idle time.Duration
	now  func() time.Time

	mu        sync.Mutex
	buckets   map[string]*bucket
	nextSweep time.Time
}

func newKeyedLimiter(cfg RateLimitConfig) *keyedLimiter {
	idle := max(cfg.Window, time.Duration(cfg.Burst)*cfg.interval())
	return &keyedLimiter{
		cfg:     cfg,
		idle:    idle,
		now:     time.Now,
		buckets: make(map[string]*bucket),
	}
}

// allow takes a token for key. When none is available it reports how long
// until one is.
func (k *keyedLimiter) allow(key string) (bool, time.Duration) {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	if now.After(k.nextSweep) {
		for stale, b := range k.buckets {
			if now.Sub(b.seen) > k.idle {
				delete(k.buckets, stale)
			}
		}
		k.nextSweep = now.Add(k.idle)
	}

	b, ok := k.buckets[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(rate.Every(k.cfg.interval()), k.cfg.Burst)}
		k.buckets[key] = b
	}
	b.seen = now

	res := b.lim.ReserveN(now, 1)
	if !res.OK() {
		return false, k.cfg.Window
	}
	if wait := res.DelayFrom(now); wait > 0 {
		res.CancelAt(now)
		return false, wait
	}
	return true, 0
}

// RateLimitMiddleware rejects requests over cfg with 429 and a
// Retry-After header. Each call gets its own set of buckets.
func RateLimitMiddleware(cfg RateLimitConfig, key KeyFunc) Middleware {
	kl := newKeyedLimiter(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				slogx.FromContext(r.Context()).Warn("rate limit: empty key, request not limited")
				next.ServeHTTP(w, r)
				return
			}

			ok, wait := kl.allow(k)
			if ok {
				next.ServeHTTP(w, r)
				return
			}

			retryAfter := max(int(math.Ceil(wait.Seconds())), 1)
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.RequestsPerWindow))
			w.Header().Set("X-RateLimit-Window", cfg.Window.String())

			slogx.FromContext(r.Context()).Warn("rate limit exceeded",
				"key", k,
				"path", r.URL.Path,
				"retry_after", retryAfter,
			)
			WriteError(w, http.StatusTooManyRequests, msgTooManyRequests)
		})
	}
}

// RateLimitByIP limits per client address.
func RateLimitByIP(cfg RateLimitConfig) Middleware {
	return RateLimitMiddleware(cfg, RemoteAddrKey)
}

// RateLimitByUser limits per authenticated user and client address.
func RateLimitByUser(cfg RateLimitConfig) Middleware {
	return RateLimitMiddleware(cfg, CompositeKey(":", UserKey, RemoteAddrKey))
}

// RateLimitByIPAndJSONField limits per address and body field, e.g. login
// attempts per address and email.
func RateLimitByIPAndJSONField(cfg RateLimitConfig, field string) Middleware {
	return RateLimitMiddleware(cfg, CompositeKey(":", RemoteAddrKey, JSONFieldKey(field)))
}
