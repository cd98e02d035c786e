package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines configuration for rate limiting
type RateLimitConfig struct {
	// Window is the time window for rate limiting
	Window time.Duration
	// Limit is the maximum number of requests allowed in the window
	Limit int
	// Key prefix for Redis keys
	KeyPrefix string
}

// Decision is the outcome of a single rate limit check
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Limiter decides whether the caller identified by key may proceed
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// NewRecipeGenerationConfig is the limit applied to recipe generation endpoints
func NewRecipeGenerationConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Window:    window,
		Limit:     limit,
		KeyPrefix: "rate_limit:recipe_generation",
	}
}

const redisAllowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// RedisRateLimiter is a fixed window counter shared by every server instance
type RedisRateLimiter struct {
	client redisEvaler
	config RateLimitConfig
	now    func() time.Time
}

// NewRedisRateLimiter creates a new rate limiter instance
func NewRedisRateLimiter(client redisEvaler, config RateLimitConfig) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		config: config,
		now:    time.Now,
	}
}

// Allow increments the counter of the current window and checks it against the limit
func (rl *RedisRateLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	windowStart := rl.now().Truncate(rl.config.Window)
	redisKey := fmt.Sprintf("%s:%s:%d", rl.config.KeyPrefix, key, windowStart.UnixMilli())

	count, err := rl.client.Eval(ctx, redisAllowScript, []string{redisKey}, rl.config.Window.Milliseconds()).Int()
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit check failed: %w", err)
	}

	remaining := rl.config.Limit - count
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		Allowed:   count <= rl.config.Limit,
		Limit:     rl.config.Limit,
		Remaining: remaining,
		ResetAt:   windowStart.Add(rl.config.Window),
	}, nil
}

// LocalRateLimiter is a per-key token bucket kept in process memory. It is used
// when no Redis server is configured.
type LocalRateLimiter struct {
	mu      sync.Mutex
	entries map[string]*localEntry
	every   rate.Limit
	limit   int
	idleTTL time.Duration
}

type localEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// NewLocalRateLimiter refills Limit tokens over Window, with a burst of Limit
func NewLocalRateLimiter(config RateLimitConfig) *LocalRateLimiter {
	idle := 2 * config.Window
	if idle < time.Minute {
		idle = time.Minute
	}
	return &LocalRateLimiter{
		entries: make(map[string]*localEntry),
		every:   rate.Every(config.Window / time.Duration(config.Limit)),
		limit:   config.Limit,
		idleTTL: idle,
	}
}

// Allow takes one token from the bucket of key
func (rl *LocalRateLimiter) Allow(_ context.Context, key string) (Decision, error) {
	now := time.Now()
	lim := rl.get(key, now)

	allowed := lim.AllowN(now, 1)
	tokens := lim.TokensAt(now)
	remaining := int(tokens)
	if remaining < 0 {
		remaining = 0
	}
	missing := float64(rl.limit) - tokens
	resetAt := now.Add(time.Duration(missing / float64(rl.every) * float64(time.Second)))

	return Decision{
		Allowed:   allowed,
		Limit:     rl.limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}

func (rl *LocalRateLimiter) get(key string, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if ent, ok := rl.entries[key]; ok {
		ent.lastSeen = now
		return ent.lim
	}
	lim := rate.NewLimiter(rl.every, rl.limit)
	rl.entries[key] = &localEntry{lim: lim, lastSeen: now}
	return lim
}

// Cleanup drops buckets that have been idle for longer than the idle TTL
func (rl *LocalRateLimiter) Cleanup() {
	cutoff := time.Now().Add(-rl.idleTTL)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	for k, ent := range rl.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(rl.entries, k)
		}
	}
}

// StartJanitor runs Cleanup periodically until ctx is cancelled
func (rl *LocalRateLimiter) StartJanitor(ctx context.Context, every time.Duration) {
	if every <= 0 {
		return
	}
	t := time.NewTicker(every)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				rl.Cleanup()
			}
		}
	}()
}

// RateLimitMiddleware returns a Gin middleware that enforces rate limiting per client IP.
// The request goes through when the limiter itself fails.
func RateLimitMiddleware(l Limiter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.Warn("rate limit check failed", zap.Error(err))
			c.Header("X-RateLimit-Error", "rate limit check failed")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(d.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(d.ResetAt.Unix(), 10))

		if !d.Allowed {
			retryAfter := int(time.Until(d.ResetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"message":     fmt.Sprintf("You have exceeded the limit of %d recipe requests", d.Limit),
				"retry_after": retryAfter,
			})
			return
		}

		c.Next()
	}
}
