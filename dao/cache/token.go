package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"Immob/pkg/log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// TokenBlacklist records revoked refresh tokens until their natural expiry.
// Tokens are keyed by digest so the raw credential never reaches redis.
type TokenBlacklist struct {
	rds *redis.Client
}

func NewTokenBlacklist(rds *redis.Client) *TokenBlacklist {
	return &TokenBlacklist{rds: rds}
}

func (s *TokenBlacklist) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return fmt.Sprintf("token_blacklist:%s", hex.EncodeToString(sum[:]))
}

func (s *TokenBlacklist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.rds.Set(ctx, s.key(token), 1, ttl).Err()
}

// IsRevoked fails closed only on a positive hit; redis errors are logged and
// treated as not revoked so auth stays available when the cache is down.
func (s *TokenBlacklist) IsRevoked(ctx context.Context, token string) bool {
	n, err := s.rds.Exists(ctx, s.key(token)).Result()
	if err != nil {
		log.L.Warn("token blacklist lookup failed", zap.Error(err))
		return false
	}
	return n > 0
}
