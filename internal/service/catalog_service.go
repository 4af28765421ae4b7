package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/complaint-service/internal/domain"
	"github.com/spec-kit/complaint-service/internal/repository"
)

const (
	categoriesCacheKey = "catalog:categories"
	zonesCacheKey      = "catalog:zones"
)

// CatalogService serves the read-mostly reference data. Lists are
// cached in Redis with a short TTL; cache misses and failures fall
// through to Postgres, so Redis being down only costs latency.
type CatalogService struct {
	categories repository.CategoryRepository
	zones      repository.ZoneRepository
	cache      *redis.Client
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// NewCatalogService constructs the service. cache may be nil.
func NewCatalogService(categories repository.CategoryRepository, zones repository.ZoneRepository, cache *redis.Client, cacheTTL time.Duration, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		categories: categories,
		zones:      zones,
		cache:      cache,
		cacheTTL:   cacheTTL,
		logger:     logger,
	}
}

// ListCategories returns all complaint categories.
func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if cached, ok := cacheGet[[]domain.Category](ctx, s.cache, categoriesCacheKey); ok {
		return cached, nil
	}
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, categoriesCacheKey, categories)
	return categories, nil
}

// ListZones returns all zones.
func (s *CatalogService) ListZones(ctx context.Context) ([]domain.Zone, error) {
	if cached, ok := cacheGet[[]domain.Zone](ctx, s.cache, zonesCacheKey); ok {
		return cached, nil
	}
	zones, err := s.zones.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, zonesCacheKey, zones)
	return zones, nil
}

func cacheGet[T any](ctx context.Context, cache *redis.Client, key string) (T, bool) {
	var zero T
	if cache == nil {
		return zero, false
	}
	raw, err := cache.Get(ctx, key).Bytes()
	if err != nil {
		return zero, false
	}
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return zero, false
	}
	return value, true
}

func (s *CatalogService) cacheSet(ctx context.Context, key string, value any) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL).Err(); err != nil && s.logger != nil {
		s.logger.Debug("catalog cache write failed", zap.String("key", key), zap.Error(err))
	}
}
