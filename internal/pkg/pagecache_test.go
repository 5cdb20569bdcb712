package pkg

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryPageCacheHitWithinTTL(t *testing.T) {
	c := NewMemoryPageCache()
	now := time.Now()
	c.now = func() time.Time { return now }
	ctx := context.Background()

	calls := 0
	compute := func() (string, error) {
		calls++
		return "v1", nil
	}

	val, err := c.GetOrCompute(ctx, "feed:index:1", 20*time.Second, compute)
	require.NoError(t, err)
	assert.Equal(t, "v1", val)
	assert.Equal(t, 1, calls)

	// TTL 内命中缓存，不重算
	val, err = c.GetOrCompute(ctx, "feed:index:1", 20*time.Second, func() (string, error) {
		calls++
		return "v2", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "v1", val)
	assert.Equal(t, 1, calls)
}

func TestMemoryPageCacheExpires(t *testing.T) {
	c := NewMemoryPageCache()
	now := time.Now()
	c.now = func() time.Time { return now }
	ctx := context.Background()

	_, err := c.GetOrCompute(ctx, "k", 20*time.Second, func() (string, error) { return "old", nil })
	require.NoError(t, err)

	// 过了 TTL 重新计算
	now = now.Add(21 * time.Second)
	val, err := c.GetOrCompute(ctx, "k", 20*time.Second, func() (string, error) { return "new", nil })
	require.NoError(t, err)
	assert.Equal(t, "new", val)
}

func TestMemoryPageCacheClear(t *testing.T) {
	c := NewMemoryPageCache()
	ctx := context.Background()

	_, err := c.GetOrCompute(ctx, "k", time.Minute, func() (string, error) { return "old", nil })
	require.NoError(t, err)

	require.NoError(t, c.Clear(ctx))

	val, err := c.GetOrCompute(ctx, "k", time.Minute, func() (string, error) { return "new", nil })
	require.NoError(t, err)
	assert.Equal(t, "new", val)
}

func TestMemoryPageCacheComputeError(t *testing.T) {
	c := NewMemoryPageCache()
	ctx := context.Background()

	_, err := c.GetOrCompute(ctx, "k", time.Minute, func() (string, error) { return "", assert.AnError })
	assert.Error(t, err)

	// 失败不写缓存
	val, err := c.GetOrCompute(ctx, "k", time.Minute, func() (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", val)
}
