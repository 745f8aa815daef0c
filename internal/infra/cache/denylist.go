package cache

import (
	"context"
	"time"

	"toolshare/internal/infra"

	"github.com/redis/go-redis/v9"
)

type TokenDenylist struct {
	rdb *redis.Client
	now func() time.Time
}

func NewTokenDenylist(rdb *redis.Client) *TokenDenylist {
	return &TokenDenylist{rdb: rdb, now: time.Now}
}

func (d *TokenDenylist) key(tokenID string) string { return "revoked:" + tokenID }

func (d *TokenDenylist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(d.now())
	if ttl <= 0 {
		return nil
	}
	if err := d.rdb.Set(ctx, d.key(tokenID), "1", ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to revoke token", err, infra.KindDBFailure)
	}
	return nil
}

func (d *TokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.rdb.Exists(ctx, d.key(tokenID)).Result()
	if err != nil {
		return false, infra.WrapRepoErr("failed to check token denylist", err, infra.KindDBFailure)
	}
	return n > 0, nil
}
