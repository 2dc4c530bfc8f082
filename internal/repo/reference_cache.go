package repo

import (
	"context"
	"errors"
	"time"

	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/redissvc"
	"go.uber.org/zap"
)

const (
	CategoriesCacheKey = "catalog:ref:categories"
	SuppliersCacheKey  = "catalog:ref:suppliers"
)

// CachedReferenceRepository serves the reference lists from Redis and falls
// back to next on a miss or any cache error.
type CachedReferenceRepository struct {
	next   ReferenceRepository
	cache  *redissvc.RedisService
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedReferenceRepository(next ReferenceRepository, cache *redissvc.RedisService, ttl time.Duration, logger *zap.Logger) *CachedReferenceRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedReferenceRepository{next: next, cache: cache, ttl: ttl, logger: logger}
}

func (r *CachedReferenceRepository) Categories(ctx context.Context) ([]models.Category, error) {
	return cached(ctx, r, CategoriesCacheKey, r.next.Categories)
}

func (r *CachedReferenceRepository) Suppliers(ctx context.Context) ([]models.Supplier, error) {
	return cached(ctx, r, SuppliersCacheKey, r.next.Suppliers)
}

// Invalidate drops both cached lists.
func (r *CachedReferenceRepository) Invalidate(ctx context.Context) error {
	return r.cache.Delete(ctx, CategoriesCacheKey, SuppliersCacheKey)
}

func cached[T any](ctx context.Context, r *CachedReferenceRepository, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	var items []T
	err := r.cache.GetJSON(ctx, key, &items)
	if err == nil {
		return items, nil
	}
	if !errors.Is(err, redissvc.ErrCacheMiss) {
		r.logger.Warn("reference cache read failed", zap.String("key", key), zap.Error(err))
	}

	items, err = load(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.cache.SetJSON(ctx, key, items, r.ttl); err != nil {
		r.logger.Warn("reference cache write failed", zap.String("key", key), zap.Error(err))
	}
	return items, nil
}
