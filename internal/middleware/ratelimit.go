package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appErrors "github.com/voyago/travel-admin-api/pkg/errors"
	"github.com/voyago/travel-admin-api/pkg/response"
)

// Counter counts hits per key within a window.
type Counter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RedisCounter implements Counter with a single INCR plus an EXPIRE when the
// key is fresh.
type RedisCounter struct {
	Client *redis.Client
}

// Hit increments the key and stamps the window TTL on first use.
func (r *RedisCounter) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := r.Client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := r.Client.Expire(ctx, key, window).Err(); err != nil {
			return count, err
		}
	}
	return count, nil
}

// RateLimit enforces a fixed-window per-client limit. A nil counter or a
// counter error fails open: fixture data is not worth refusing traffic for.
func RateLimit(counter Counter, perMinute int, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		if counter == nil || perMinute <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%s", c.ClientIP(), time.Now().UTC().Format("200601021504"))
		count, err := counter.Hit(c.Request.Context(), key, time.Minute)
		if err != nil {
			logger.Warn("rate limit counter unavailable", zap.Error(err))
			c.Next()
			return
		}

		if count > int64(perMinute) {
			response.Error(c, appErrors.ErrRateLimited)
			c.Abort()
			return
		}

		c.Next()
	}
}
