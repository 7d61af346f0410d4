package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/JamesR367/DigiDar/pkg/database"
	"github.com/JamesR367/DigiDar/pkg/response"
)

// DBSession 为每个请求绑定一条数据库连接
// 后续处理器通过 c.Request.Context() 使用该连接；处理结束（含 panic）后归还
func DBSession(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := database.WithSession(c.Request.Context(), db, func(ctx context.Context) error {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
			return nil
		})
		if err != nil {
			logger.Error("获取数据库会话失败",
				zap.String("request_id", RequestIDFrom(c.Request.Context())),
				zap.Error(err),
			)
			response.ServiceUnavailable(c)
			c.Abort()
		}
	}
}
