package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Redis key prefixes for the catalog cache
const (
	CacheKeySpecialties = "catalog:specialties:"
	CacheKeyMedicines   = "catalog:medicines:"
)

// CatalogCacheService caches slow-changing catalog listings (specialties,
// medicines) in Redis. Cache misses and Redis failures fall through to the
// database; writers invalidate the affected prefix.
type CatalogCacheService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewCatalogCacheService(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *CatalogCacheService {
	return &CatalogCacheService{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

// Get loads a cached value into dest. Returns false on miss or Redis failure.
func (s *CatalogCacheService) Get(ctx context.Context, key string, dest interface{}) bool {
	data, err := s.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warnf("Failed to read cache key %s: %+v", key, err)
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		s.log.Warnf("Failed to decode cache key %s: %+v", key, err)
		return false
	}

	return true
}

// Set stores a value under key with the configured TTL. Failures are logged
// and ignored.
func (s *CatalogCacheService) Set(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		s.log.Warnf("Failed to encode cache key %s: %+v", key, err)
		return
	}

	if err := s.redisClient.Set(ctx, key, data, s.ttl).Err(); err != nil {
		s.log.Warnf("Failed to write cache key %s: %+v", key, err)
	}
}

// Invalidate removes all keys under the given prefix.
func (s *CatalogCacheService) Invalidate(ctx context.Context, prefix string) {
	keys, err := s.redisClient.Keys(ctx, prefix+"*").Result()
	if err != nil {
		s.log.Warnf("Failed to list cache keys for prefix %s: %+v", prefix, err)
		return
	}
	if len(keys) == 0 {
		return
	}

	if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
		s.log.Warnf("Failed to invalidate cache prefix %s: %+v", prefix, err)
	}
}
