package middlewares

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/annothem/annothem-backend/config"
	"github.com/annothem/annothem-backend/infra"
	"github.com/annothem/annothem-backend/utils"
)

// UploadRateLimitMiddleware caps upload requests per client IP within a
// one-minute window. Pass-through when Redis is not configured. Redis
// errors fail open: a broken limiter must not block uploads.
func UploadRateLimitMiddleware(redis *infra.RedisClient, logger *infra.LoggerClient, cfg *config.EnvConfig) gin.HandlerFunc {
	if redis == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	limit := int64(cfg.RateLimit.UploadPerMinute)

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := fmt.Sprintf("ratelimit:upload:%s", c.ClientIP())

		count, err := redis.Increment(ctx, key)
		if err != nil {
			logger.WarningWithContextf(ctx, "[RateLimit] Redis increment failed: %v", err)
			c.Next()
			return
		}

		if count == 1 {
			if err := redis.Expire(ctx, key, time.Minute); err != nil {
				logger.WarningWithContextf(ctx, "[RateLimit] Redis expire failed: %v", err)
			}
		}

		if count > limit {
			utils.JSON429(c, "Too many uploads, slow down")
			c.Abort()
			return
		}

		c.Next()
	}
}
