package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JamesR367/DigiDar/pkg/response"
)

// RateLimiter 限流计数器，由 *redis.Client 实现
type RateLimiter interface {
	CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// RateLimit 固定窗口限流中间件
// limiter 为 nil 或计数出错时降级放行
func RateLimit(limiter RateLimiter, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("%s:%s:%s", c.ClientIP(), c.Request.Method, c.FullPath())
		allowed, err := limiter.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			response.ErrorWithDetails(c, http.StatusTooManyRequests, 10004, "请求过于频繁，请稍后再试",
				fmt.Sprintf("每 %s 最多 %d 次写请求", window, limit))
			c.Abort()
			return
		}

		c.Next()
	}
}
