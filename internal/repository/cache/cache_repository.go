package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/veggieplaces-microservice/internal/domain"
	"github.com/veggieplaces-microservice/internal/domain/repository"
	"go.uber.org/zap"
)

const (
	urlVerdictKeyPrefix = "urlcheck:"
	qualityReportKey    = "quality:report"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}

	return val > 0, nil
}

// GetURLVerdict получает вердикт проверки URL из кеша
func (r *cacheRepository) GetURLVerdict(ctx context.Context, url string) (*domain.URLVerdict, error) {
	data, err := r.Get(ctx, urlVerdictKeyPrefix+url)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var verdict domain.URLVerdict
	if err := json.Unmarshal(data, &verdict); err != nil {
		r.logger.Error("Failed to unmarshal URL verdict", zap.String("url", url), zap.Error(err))
		return nil, fmt.Errorf("unmarshal url verdict: %w", err)
	}

	return &verdict, nil
}

// SetURLVerdict сохраняет вердикт проверки URL в кеше
func (r *cacheRepository) SetURLVerdict(ctx context.Context, verdict *domain.URLVerdict, ttl time.Duration) error {
	data, err := json.Marshal(verdict)
	if err != nil {
		r.logger.Error("Failed to marshal URL verdict", zap.Error(err))
		return fmt.Errorf("marshal url verdict: %w", err)
	}

	return r.Set(ctx, urlVerdictKeyPrefix+verdict.URL, data, ttl)
}

// GetQualityReport получает отчёт о качестве данных из кеша
func (r *cacheRepository) GetQualityReport(ctx context.Context) (*domain.FeatureCollection, error) {
	data, err := r.Get(ctx, qualityReportKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var report domain.FeatureCollection
	if err := json.Unmarshal(data, &report); err != nil {
		r.logger.Error("Failed to unmarshal quality report", zap.Error(err))
		return nil, fmt.Errorf("unmarshal quality report: %w", err)
	}

	return &report, nil
}

// SetQualityReport сохраняет отчёт о качестве данных в кеше
func (r *cacheRepository) SetQualityReport(ctx context.Context, report *domain.FeatureCollection, ttl time.Duration) error {
	data, err := json.Marshal(report)
	if err != nil {
		r.logger.Error("Failed to marshal quality report", zap.Error(err))
		return fmt.Errorf("marshal quality report: %w", err)
	}

	return r.Set(ctx, qualityReportKey, data, ttl)
}
