package usecase

import (
	"context"
	"time"

	"github.com/veggieplaces-microservice/internal/domain"
	"github.com/veggieplaces-microservice/internal/domain/repository"
	"github.com/veggieplaces-microservice/internal/pkg/errors"
	"github.com/veggieplaces-microservice/internal/pkg/validator"
	"github.com/veggieplaces-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// QualityUseCase строит отчёт о качестве данных по всем сохранённым местам.
//
// Проверка доступности URL вынесена в отдельный воркер: здесь мы читаем
// готовые вердикты из кеша, а непроверенные URL ставим в очередь. Отчёт,
// собранный сразу после импорта, полнеет по мере того, как воркер
// прорабатывает очередь.
type QualityUseCase struct {
	placeRepo  repository.PlaceRepository
	cacheRepo  repository.CacheRepository
	streamRepo repository.StreamRepository
	logger     *zap.Logger
	reportTTL  time.Duration
}

func NewQualityUseCase(
	placeRepo repository.PlaceRepository,
	cacheRepo repository.CacheRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
	reportTTL time.Duration,
) *QualityUseCase {
	return &QualityUseCase{
		placeRepo:  placeRepo,
		cacheRepo:  cacheRepo,
		streamRepo: streamRepo,
		logger:     logger,
		reportTTL:  reportTTL,
	}
}

// GetReport возвращает кешированный отчёт.
func (uc *QualityUseCase) GetReport(ctx context.Context) (*domain.FeatureCollection, error) {
	report, err := uc.cacheRepo.GetQualityReport(ctx)
	if err != nil {
		uc.logger.Error("Failed to read quality report from cache", zap.Error(err))
		return nil, errors.ErrCacheError
	}
	if report == nil {
		return nil, errors.ErrReportNotReady
	}
	return report, nil
}

// BuildReport прогоняет все места через проверки качества, кеширует
// результат и возвращает сводку.
func (uc *QualityUseCase) BuildReport(ctx context.Context) (*dto.QualityRunResponse, error) {
	places, err := uc.placeRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to load places for quality check", zap.Error(err))
		return nil, err
	}

	collection := domain.NewFeatureCollection(time.Now())
	summary := &dto.QualityRunResponse{}
	queued := make(map[string]bool)

	for _, place := range places {
		tags, err := place.TagSet()
		if err != nil {
			uc.logger.Warn("Skipping place with nil tags", zap.Int64("id", place.ID))
			continue
		}

		verdicts, urlsQueued := uc.resolveURLs(ctx, tags, queued)
		summary.URLsQueued += urlsQueued

		report, err := domain.CheckPlace(place, verdicts, validator.ValidateEmail)
		if err != nil {
			uc.logger.Warn("Failed to check place", zap.Int64("id", place.ID), zap.Error(err))
			continue
		}

		summary.PlacesChecked++
		if report.IssueNumber > 0 {
			summary.PlacesWithIssue++
		}
		collection.Append(place, report)
	}

	if err := uc.cacheRepo.SetQualityReport(ctx, collection, uc.reportTTL); err != nil {
		uc.logger.Error("Failed to cache quality report", zap.Error(err))
		return nil, errors.ErrCacheError
	}

	uc.logger.Info("Quality report built",
		zap.Int("places_checked", summary.PlacesChecked),
		zap.Int("places_with_issue", summary.PlacesWithIssue),
		zap.Int("urls_queued", summary.URLsQueued))

	return summary, nil
}

// resolveURLs собирает кешированные вердикты для URL места и ставит
// непроверенные URL в очередь воркера (каждый URL - один раз за запуск).
func (uc *QualityUseCase) resolveURLs(
	ctx context.Context,
	tags domain.TagSet,
	queued map[string]bool,
) (domain.URLVerdicts, int) {
	verdicts := domain.URLVerdicts{}
	urlsQueued := 0

	for _, url := range domain.CheckURLs(tags) {
		verdict, err := uc.cacheRepo.GetURLVerdict(ctx, url)
		if err != nil {
			uc.logger.Warn("Failed to read URL verdict", zap.String("url", url), zap.Error(err))
			continue
		}
		if verdict != nil {
			verdicts[url] = *verdict
			continue
		}
		if queued[url] {
			continue
		}

		event := domain.NewURLCheckEvent(url)
		if err := uc.streamRepo.PublishToStream(ctx, domain.StreamURLCheckRequest, event); err != nil {
			uc.logger.Error("Failed to queue URL check",
				zap.String("url", url),
				zap.Error(err))
			continue
		}
		queued[url] = true
		urlsQueued++
	}

	return verdicts, urlsQueued
}
