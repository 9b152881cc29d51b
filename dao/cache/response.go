package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/url"
	"sort"
	"strings"
	"time"

	"Immob/pkg/log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Response cache TTLs per endpoint family.
const (
	TTLPropertyList      = 5 * time.Minute
	TTLPropertyDetail    = 10 * time.Minute
	TTLStats             = time.Hour
	TTLCategories        = 30 * time.Minute
	TTLReviews           = 5 * time.Minute
	TTLFeatured          = 10 * time.Minute
	TTLReviewStats       = 10 * time.Minute
	TTLMyReviews         = 2 * time.Minute
	TTLSearchSuggestions = 30 * time.Minute
)

// Well-known cache key prefixes.
const (
	PrefixPropertyList      = "property_list"
	PrefixPropertyDetail    = "property_detail"
	PrefixPropertyStats     = "property_stats"
	PrefixPropertyFeatured  = "property_featured"
	PrefixCategories        = "property_categories"
	PrefixReviewList        = "review_list"
	PrefixReviewStats       = "review_stats"
	PrefixMyReviews         = "my_reviews"
	PrefixFavoritesList     = "favorites_list"
	PrefixSearchSuggestions = "search_suggestions"
)

// ResponseStorage caches serialized response payloads in redis. It is a
// non-authoritative accelerator: every write is best effort and a miss just
// means the caller hits MySQL.
type ResponseStorage struct {
	redis *redis.Client
}

func NewResponseStorage(rds *redis.Client) *ResponseStorage {
	return &ResponseStorage{redis: rds}
}

// Key builds "prefix:sha256(sorted k=v join)" from the request query
// parameters; no parameters collapses to the bare prefix.
func (s *ResponseStorage) Key(prefix string, params url.Values) string {
	if len(params) == 0 {
		return prefix
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		vals := append([]string(nil), params[k]...)
		sort.Strings(vals)
		parts = append(parts, k+"="+strings.Join(vals, ","))
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "&")))
	return prefix + ":" + hex.EncodeToString(sum[:])
}

// Get returns the cached payload verbatim; ok is false on miss or error.
func (s *ResponseStorage) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := s.redis.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.L.Warn("response cache get failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return data, true
}

// Set stores the JSON-encoded payload under key with the given TTL.
func (s *ResponseStorage) Set(ctx context.Context, key string, payload any, ttl time.Duration) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.L.Warn("response cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.redis.Set(ctx, key, data, ttl).Err(); err != nil {
		log.L.Warn("response cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// Delete removes explicit keys.
func (s *ResponseStorage) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := s.redis.Del(ctx, keys...).Err(); err != nil {
		log.L.Warn("response cache delete failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

// DeletePrefix removes every key under "prefix" and "prefix:*". Invalidation
// is not transactional with the triggering write; a racing reader can
// repopulate a stale entry that then lives until its TTL.
func (s *ResponseStorage) DeletePrefix(ctx context.Context, prefix string) {
	iter := s.redis.Scan(ctx, 0, prefix+":*", 100).Iterator()
	keys := []string{prefix}
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.L.Warn("response cache scan failed", zap.String("prefix", prefix), zap.Error(err))
	}
	s.Delete(ctx, keys...)
}
