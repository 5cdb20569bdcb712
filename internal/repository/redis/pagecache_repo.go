package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const PageCacheKeyPrefix = "page:cache"

// PageCacheRepository pkg.PageCache 的 redis 实现。
// redis 故障时降级为直接计算，不把缓存错误抛给请求。
type PageCacheRepository struct {
	Client *redis.Client
}

func NewPageCacheRepository(client *redis.Client) *PageCacheRepository {
	return &PageCacheRepository{Client: client}
}

func (r *PageCacheRepository) key(key string) string {
	return fmt.Sprintf("%s:%s", PageCacheKeyPrefix, key)
}

// GetOrCompute 命中直接返回缓存的页面；未命中时计算并带 TTL 回写。
// 并发未命中允许都去计算，后写的覆盖先写的。
func (r *PageCacheRepository) GetOrCompute(ctx context.Context, key string, ttl time.Duration, compute func() (string, error)) (string, error) {
	k := r.key(key)

	val, err := r.Client.Get(ctx, k).Result()
	if err == nil {
		return val, nil
	}
	if !errors.Is(err, redis.Nil) {
		// redis 挂了也要能出页面
		return compute()
	}

	val, err = compute()
	if err != nil {
		return "", err
	}
	_ = r.Client.Set(ctx, k, val, ttl).Err()
	return val, nil
}

// Clear 按前缀扫描删除全部页面缓存
func (r *PageCacheRepository) Clear(ctx context.Context) error {
	iter := r.Client.Scan(ctx, 0, PageCacheKeyPrefix+":*", 100).Iterator()
	for iter.Next(ctx) {
		if err := r.Client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
