package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// RateLimitConfig bounds request throughput per client IP.
type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

// DefaultRateLimitConfig returns default rate limiting settings.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 100,
		BurstSize:         200,
	}
}

// bucket is a single client's token balance. balance is refilled lazily
// on each take, so idle clients cost nothing between requests.
type bucket struct {
	mu       sync.Mutex
	balance  float64
	cap      float64
	rate     float64
	lastTake time.Time
}

func newBucket(rate float64, burst int) *bucket {
	return &bucket{
		balance:  float64(burst),
		cap:      float64(burst),
		rate:     rate,
		lastTake: time.Now(),
	}
}

// take spends one token, crediting what accrued since the last call.
func (b *bucket) take() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.balance = math.Min(b.cap, b.balance+now.Sub(b.lastTake).Seconds()*b.rate)
	b.lastTake = now

	if b.balance < 1 {
		return false
	}
	b.balance--
	return true
}

// secondsUntilToken estimates how long until a full token is available,
// rounded up so the client never retries early.
func (b *bucket) secondsUntilToken() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.rate <= 0 {
		return 1
	}
	wait := int(math.Ceil((1 - b.balance) / b.rate))
	if wait < 1 {
		wait = 1
	}
	return wait
}

// limiter maps client keys to buckets, created on first sight.
type limiter struct {
	mu      sync.RWMutex
	buckets map[string]*bucket
	rate    float64
	burst   int
}

func newLimiter(cfg RateLimitConfig) *limiter {
	return &limiter{
		buckets: make(map[string]*bucket),
		rate:    cfg.RequestsPerSecond,
		burst:   cfg.BurstSize,
	}
}

func (l *limiter) bucketFor(key string) *bucket {
	l.mu.RLock()
	b, ok := l.buckets[key]
	l.mu.RUnlock()
	if ok {
		return b
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if b, ok := l.buckets[key]; ok {
		return b
	}
	b = newBucket(l.rate, l.burst)
	l.buckets[key] = b
	return b
}

// RateLimit throttles per client IP, answering 429 with a Retry-After
// hint once a client's bucket runs dry.
func RateLimit(cfg RateLimitConfig) echo.MiddlewareFunc {
	lim := newLimiter(cfg)
	limitHeader := strconv.FormatFloat(cfg.RequestsPerSecond, 'f', 0, 64)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", limitHeader)

			b := lim.bucketFor(c.RealIP())
			if !b.take() {
				h.Set("Retry-After", strconv.Itoa(b.secondsUntilToken()))
				h.Set("X-RateLimit-Remaining", "0")
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
