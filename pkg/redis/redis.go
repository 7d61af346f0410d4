package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/JamesR367/DigiDar/config"
)

// Client Redis 客户端封装
// 当前仅用于写接口限流计数
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient 创建 Redis 连接并执行 Ping 健康检查
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("Redis 连接失败: %w", err)
	}

	logger.Info("Redis 连接成功", zap.String("addr", cfg.Addr))

	return NewFromClient(rdb, logger), nil
}

// NewFromClient 包装已有的 go-redis 客户端
func NewFromClient(rdb *goredis.Client, logger *zap.Logger) *Client {
	return &Client{rdb: rdb, logger: logger}
}

// ── 限流计数 ──

const rateLimitPrefix = "rate_limit:"

// CheckRateLimit 固定窗口计数：窗口内第 limit+1 次起返回 false
//
// INCR 与 TTL 在同一事务中执行；键没有过期时间时（首次计数，
// 或之前的 EXPIRE 失败）补设窗口，计数键不会永久存在。
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	fullKey := rateLimitPrefix + key

	var (
		incr *goredis.IntCmd
		ttl  *goredis.DurationCmd
	)
	if _, err := c.rdb.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		incr = pipe.Incr(ctx, fullKey)
		ttl = pipe.TTL(ctx, fullKey)
		return nil
	}); err != nil {
		return false, err
	}

	if ttl.Val() < 0 {
		if err := c.rdb.Expire(ctx, fullKey, window).Err(); err != nil {
			c.logger.Warn("设置限流窗口失败", zap.String("key", fullKey), zap.Error(err))
			return false, err
		}
	}

	return incr.Val() <= int64(limit), nil
}

// Close 关闭 Redis 连接
func (c *Client) Close() error {
	return c.rdb.Close()
}
