package repository

import (
	"context"
	"time"

	"github.com/veggieplaces-microservice/internal/domain"
)

// CacheRepository определяет методы для работы с кешем.
type CacheRepository interface {
	// Get получает значение из кеша по ключу (nil при промахе)
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetURLVerdict получает вердикт проверки URL (nil при отсутствии)
	GetURLVerdict(ctx context.Context, url string) (*domain.URLVerdict, error)

	// SetURLVerdict сохраняет вердикт проверки URL с TTL
	SetURLVerdict(ctx context.Context, verdict *domain.URLVerdict, ttl time.Duration) error

	// GetQualityReport получает кешированный отчёт о качестве данных
	GetQualityReport(ctx context.Context) (*domain.FeatureCollection, error)

	// SetQualityReport сохраняет отчёт о качестве данных с TTL
	SetQualityReport(ctx context.Context, report *domain.FeatureCollection, ttl time.Duration) error
}
