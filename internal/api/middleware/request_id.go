package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey gin.Context 中请求 ID 的键
const RequestIDKey = "request_id"

const requestIDHeader = "X-Request-ID"

type requestIDCtxKey struct{}

// RequestID 请求追踪 ID 中间件
//
// 沿用调用方的 X-Request-ID（仅限 64 位以内的字母、数字、-、_、.），
// 否则生成 UUID。ID 同时写入 gin.Context、请求 ctx 与响应头。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if !validRequestID(rid) {
			rid = uuid.NewString()
		}

		c.Set(RequestIDKey, rid)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), requestIDCtxKey{}, rid))
		c.Header(requestIDHeader, rid)

		c.Next()
	}
}

// RequestIDFrom 读取请求 ctx 上的请求 ID，没有时返回空串
func RequestIDFrom(ctx context.Context) string {
	rid, _ := ctx.Value(requestIDCtxKey{}).(string)
	return rid
}

func validRequestID(rid string) bool {
	if rid == "" || len(rid) > 64 {
		return false
	}
	for _, r := range rid {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.':
		default:
			return false
		}
	}
	return true
}
