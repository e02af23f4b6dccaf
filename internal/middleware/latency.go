package middleware

import (
	"math/rand"
	"time"

	"github.com/gin-gonic/gin"
)

// SimulateLatency delays each request by a uniform random duration in
// [min, max]. The upstream mock API slept 200-500ms on some endpoints so the
// frontend's loading states could be exercised; this keeps that behaviour
// available behind a config flag. Client disconnects cut the sleep short.
func SimulateLatency(min, max time.Duration) gin.HandlerFunc {
	if min < 0 {
		min = 0
	}
	if max < min {
		max = min
	}
	return func(c *gin.Context) {
		delay := min
		if span := max - min; span > 0 {
			delay += time.Duration(rand.Int63n(int64(span) + 1))
		}

		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-c.Request.Context().Done():
			c.Abort()
			return
		}

		c.Next()
	}
}
