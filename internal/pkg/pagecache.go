package pkg

import (
	"context"
	"sync"
	"time"
)

// PageCache 整页缓存契约。写入方不负责失效，过期或显式 Clear 后才能看到新内容。
type PageCache interface {
	GetOrCompute(ctx context.Context, key string, ttl time.Duration, compute func() (string, error)) (string, error)
	Clear(ctx context.Context) error
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryPageCache 进程内实现，测试和没有 redis 的环境用
type MemoryPageCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryPageCache() *MemoryPageCache {
	return &MemoryPageCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// GetOrCompute 命中未过期的缓存直接返回；否则计算后写入。
// 并发未命中时允许重复计算，后写的覆盖先写的。
func (c *MemoryPageCache) GetOrCompute(ctx context.Context, key string, ttl time.Duration, compute func() (string, error)) (string, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && c.now().Before(e.expiresAt) {
		c.mu.Unlock()
		return e.value, nil
	}
	c.mu.Unlock()

	val, err := compute()
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.entries[key] = memoryEntry{value: val, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
	return val, nil
}

// Clear 清空所有条目
func (c *MemoryPageCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	c.entries = make(map[string]memoryEntry)
	c.mu.Unlock()
	return nil
}
