package database

import (
	"context"

	"gorm.io/gorm"
)

type sessionKey struct{}

// WithSession 从连接池取出一条连接绑定到 ctx 后执行 fn。
// fn 无论正常返回、出错还是 panic，连接都会归还连接池。
// 取连接失败时 fn 不会被调用。
func WithSession(ctx context.Context, db *gorm.DB, fn func(ctx context.Context) error) error {
	return db.WithContext(ctx).Connection(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, sessionKey{}, tx))
	})
}

// FromContext 返回 ctx 上绑定的会话；未绑定时退回 fallback
func FromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(sessionKey{}).(*gorm.DB); ok && tx != nil {
		return tx.WithContext(ctx)
	}
	return fallback.WithContext(ctx)
}

// HasSession 判断 ctx 上是否已绑定会话
func HasSession(ctx context.Context) bool {
	tx, ok := ctx.Value(sessionKey{}).(*gorm.DB)
	return ok && tx != nil
}
