package tokenstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenDenylist records logged-out tokens until their natural expiry so a
// stolen token cannot outlive its session.
type TokenDenylist interface {
	Deny(ctx context.Context, token string, ttl time.Duration) error
	IsDenied(ctx context.Context, token string) (bool, error)
}

type redisTokenDenylist struct {
	client *redis.Client
	prefix string
}

func NewRedisTokenDenylist(client *redis.Client) TokenDenylist {
	return &redisTokenDenylist{
		client: client,
		prefix: "auth:denylist:",
	}
}

func (d *redisTokenDenylist) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return d.prefix + hex.EncodeToString(sum[:])
}

func (d *redisTokenDenylist) Deny(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return d.client.Set(ctx, d.key(token), "1", ttl).Err()
}

func (d *redisTokenDenylist) IsDenied(ctx context.Context, token string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
