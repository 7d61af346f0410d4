package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := NewFromClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}), zap.NewNop())
	t.Cleanup(func() { client.Close() })
	return client, mr
}

func TestCheckRateLimit_Window(t *testing.T) {
	client, mr := newTestClient(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := client.CheckRateLimit(ctx, "k", 2, time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := client.CheckRateLimit(ctx, "k", 2, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, time.Minute, mr.TTL(rateLimitPrefix+"k"))

	// 窗口结束后重新计数
	mr.FastForward(time.Minute + time.Second)
	ok, err = client.CheckRateLimit(ctx, "k", 2, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCheckRateLimit_RepairsMissingExpiry(t *testing.T) {
	client, mr := newTestClient(t)
	ctx := context.Background()

	// 计数已超限但没有过期时间
	require.NoError(t, mr.Set(rateLimitPrefix+"stuck", "10"))

	ok, err := client.CheckRateLimit(ctx, "stuck", 2, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, time.Minute, mr.TTL(rateLimitPrefix+"stuck"))

	mr.FastForward(time.Minute + time.Second)
	ok, err = client.CheckRateLimit(ctx, "stuck", 2, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCheckRateLimit_ServerDown(t *testing.T) {
	client, mr := newTestClient(t)
	mr.Close()

	_, err := client.CheckRateLimit(context.Background(), "k", 2, time.Minute)
	assert.Error(t, err)
}
