package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger 访问日志中间件
// 5xx 记 Error，4xx 记 Warn，其余记 Info；/health 降为 Debug
func Logger(logger *zap.Logger) gin.HandlerFunc {
	access := logger.Named("access")

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "<unmatched>"
		}

		level := zapcore.InfoLevel
		switch {
		case status >= 500:
			level = zapcore.ErrorLevel
		case status >= 400:
			level = zapcore.WarnLevel
		case c.Request.URL.Path == "/health":
			level = zapcore.DebugLevel
		}

		ce := access.Check(level, c.Request.Method+" "+route)
		if ce == nil {
			return
		}

		fields := []zap.Field{
			zap.String("request_id", c.GetString(RequestIDKey)),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Int("bytes", c.Writer.Size()),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		}
		if msg := c.Errors.ByType(gin.ErrorTypePrivate).String(); msg != "" {
			fields = append(fields, zap.String("errors", msg))
		}
		ce.Write(fields...)
	}
}
