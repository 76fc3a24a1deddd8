package middleware

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Leafline-Dispensary/leafline-storefront-backend/config"
	"github.com/Leafline-Dispensary/leafline-storefront-backend/models"
)

// RateLimiter caps requests per IP+method+endpoint over a sliding window
// backed by Redis INCR/EXPIRE. The storefront is a public read surface,
// so Redis trouble fails open. A blip must not take the catalog down.
func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("rl:%s:%s:%s", c.ClientIP(), c.Request.Method, c.FullPath())

		count, err := config.RedisClient.Incr(config.Ctx, key).Result()
		if err != nil {
			log.Printf("[ratelimit] redis error, failing open: %v", err)
			c.Next()
			return
		}
		if count == 1 {
			config.RedisClient.Expire(config.Ctx, key, window)
		}

		ttl, _ := config.RedisClient.TTL(config.Ctx, key).Result()
		if ttl < 0 {
			ttl = window
		}

		remaining := maxRequests - int(count)
		if remaining < 0 {
			remaining = 0
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", maxRequests))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(ttl).Unix()))

		if int(count) > maxRequests {
			c.Header("Retry-After", fmt.Sprintf("%d", int(ttl.Seconds())))
			c.JSON(http.StatusTooManyRequests, models.ErrorResponse(c, "Too many requests"))
			c.Abort()
			return
		}

		c.Next()
	}
}
