package redis

import (
	"context"
	"errors"
	"time"

	"github.com/muhammadheryan/tamirse/constant"
	goredis "github.com/redis/go-redis/v9"
)

// RedisRepository stores refresh tokens and other short-lived keys
type RedisRepository interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetRefreshToken(ctx context.Context, userID, token string, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, userID string) (string, error)
	DeleteRefreshToken(ctx context.Context, userID string) error
}

type redis struct {
	client *goredis.Client
}

func NewRepository(client *goredis.Client) RedisRepository {
	return &redis{client: client}
}

func refreshTokenKey(userID string) string {
	return constant.RefreshTokenKeyPrefix + userID
}

// Get returns an empty string when the key does not exist
func (r *redis) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", nil
		}
		return "", err
	}
	return val, nil
}

func (r *redis) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *redis) SetRefreshToken(ctx context.Context, userID, token string, ttl time.Duration) error {
	return r.SetWithTTL(ctx, refreshTokenKey(userID), token, ttl)
}

func (r *redis) GetRefreshToken(ctx context.Context, userID string) (string, error) {
	return r.Get(ctx, refreshTokenKey(userID))
}

func (r *redis) DeleteRefreshToken(ctx context.Context, userID string) error {
	return r.Delete(ctx, refreshTokenKey(userID))
}
