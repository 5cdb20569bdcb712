package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultResetCodeTTL = 5 * time.Minute
	ResetCodePrefix     = "email:code:reset"
)

var (
	ErrCodeNotFound  = errors.New("code not found")
	ErrCodeSetFailed = errors.New("code set failed")
	ErrCodeDelFailed = errors.New("code delete failed")
)

// ResetCodeRepository 重置密码验证码，按邮箱存一个带 TTL 的验证码
type ResetCodeRepository struct{}

func (r *ResetCodeRepository) SaveCode(email, code string) error {
	key := fmt.Sprintf("%s:%s", ResetCodePrefix, email)
	if err := Client.Set(context.Background(), key, code, DefaultResetCodeTTL).Err(); err != nil {
		return ErrCodeSetFailed
	}
	return nil
}

func (r *ResetCodeRepository) GetCode(email string) (string, error) {
	key := fmt.Sprintf("%s:%s", ResetCodePrefix, email)
	val, err := Client.Get(context.Background(), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCodeNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// DeleteCode 验证通过后一次性删除（幂等）
func (r *ResetCodeRepository) DeleteCode(email string) error {
	key := fmt.Sprintf("%s:%s", ResetCodePrefix, email)
	if err := Client.Del(context.Background(), key).Err(); err != nil {
		return ErrCodeDelFailed
	}
	return nil
}
