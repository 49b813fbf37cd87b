package middlewares

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Limiter counts hits per key inside a fixed window.
type Limiter interface {
	// Hit records one request and returns the count in the current window and the time
	// until the window resets.
	Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// RedisLimiter keeps counters in Redis so every replica shares them.
type RedisLimiter struct {
	client *redis.Client
	prefix string
}

func NewRedisLimiter(client *redis.Client, prefix string) *RedisLimiter {
	if prefix == "" {
		prefix = "vital:rate"
	}
	return &RedisLimiter{client: client, prefix: prefix}
}

func (l *RedisLimiter) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	redisKey := l.prefix + ":" + key

	// Increment user's count with TTL
	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return 0, 0, err
	}

	// Set TTL only for the first increment (when count = 1)
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, window).Err(); err != nil {
			return 0, 0, err
		}
		return count, window, nil
	}

	ttl, err := l.client.TTL(ctx, redisKey).Result()
	if err != nil {
		return 0, 0, err
	}
	return count, ttl, nil
}

// MemoryLimiter is the single-process Limiter used without Redis.
type MemoryLimiter struct {
	mu      sync.Mutex
	now     func() time.Time
	buckets map[string]memoryBucket
}

type memoryBucket struct {
	count   int64
	resetAt time.Time
}

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{now: time.Now, buckets: make(map[string]memoryBucket)}
}

func (l *MemoryLimiter) Hit(_ context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	b, ok := l.buckets[key]
	if !ok || !now.Before(b.resetAt) {
		b = memoryBucket{resetAt: now.Add(window)}
	}
	b.count++
	l.buckets[key] = b
	return b.count, b.resetAt.Sub(now), nil
}

// RateLimit allows limit requests per key per window. Requests for which key returns ""
// are rejected as malformed.
func RateLimit(limiter Limiter, name string, limit int, window time.Duration, key func(*gin.Context) string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		k := key(c)
		if k == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "cannot identify requester for rate limiting"})
			return
		}

		count, retryAfter, err := limiter.Hit(c.Request.Context(), name+":"+k, window)
		if err != nil {
			logger.Error("rate limiter unavailable", zap.String("limiter", name), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "rate limiter unavailable", "retryable": true})
			return
		}

		// Check if user exceeded limit
		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": retryAfter.Seconds(),
			})
			return
		}

		c.Next()
	}
}

// ByUserID keys on the authenticated user.
func ByUserID(c *gin.Context) string {
	return CurrentUserID(c)
}

// ByVillagerID keys on the villagerId of a JSON body. The body stays readable with
// ShouldBindBodyWith.
func ByVillagerID(c *gin.Context) string {
	var body struct {
		VillagerID string `json:"villagerId"`
	}
	if err := c.ShouldBindBodyWith(&body, binding.JSON); err != nil {
		return ""
	}
	return strings.TrimSpace(body.VillagerID)
}
