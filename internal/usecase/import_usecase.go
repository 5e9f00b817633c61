package usecase

import (
	"context"

	"github.com/veggieplaces-microservice/internal/domain"
	"github.com/veggieplaces-microservice/internal/domain/repository"
	"github.com/veggieplaces-microservice/internal/pkg/errors"
	"github.com/veggieplaces-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// ImportUseCase загружает выгрузку Overpass в хранилище.
type ImportUseCase struct {
	placeRepo    repository.PlaceRepository
	overpassRepo repository.OverpassRepository
	logger       *zap.Logger
}

func NewImportUseCase(
	placeRepo repository.PlaceRepository,
	overpassRepo repository.OverpassRepository,
	logger *zap.Logger,
) *ImportUseCase {
	return &ImportUseCase{
		placeRepo:    placeRepo,
		overpassRepo: overpassRepo,
		logger:       logger,
	}
}

// ImportFromFile читает файл выгрузки, классифицирует места и сохраняет их.
func (uc *ImportUseCase) ImportFromFile(ctx context.Context, path string) (*dto.ImportResponse, error) {
	result, err := uc.overpassRepo.Load(path)
	if err != nil {
		uc.logger.Error("Failed to load overpass export",
			zap.String("path", path),
			zap.Error(err))
		return nil, errors.ErrImportFailed
	}

	places, err := recordsToPlaces(result.Records)
	if err != nil {
		uc.logger.Error("Failed to convert overpass records", zap.Error(err))
		return nil, errors.ErrImportFailed
	}

	imported, err := uc.placeRepo.UpsertBatch(ctx, places)
	if err != nil {
		uc.logger.Error("Failed to upsert imported places", zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Overpass import finished",
		zap.String("path", path),
		zap.Int("elements_read", result.ElementsRead),
		zap.Int("imported", imported),
		zap.Int("skipped", result.Skipped))

	return &dto.ImportResponse{
		ElementsRead: result.ElementsRead,
		Imported:     imported,
		Skipped:      result.Skipped,
	}, nil
}

// recordsToPlaces классифицирует записи и подставляет отображаемое имя.
func recordsToPlaces(records []*domain.OverpassRecord) ([]*domain.Place, error) {
	places := make([]*domain.Place, 0, len(records))
	for _, rec := range records {
		tags, err := domain.NewTagSet(rec.Tags)
		if err != nil {
			return nil, err
		}

		name := rec.Name
		if name == "" {
			name, _ = domain.DisplayName(tags, rec.OSMType, rec.OSMId)
		}

		places = append(places, &domain.Place{
			OSMId:          rec.OSMId,
			OSMType:        rec.OSMType,
			Name:           name,
			Lat:            rec.Lat,
			Lon:            rec.Lon,
			Classification: domain.Classify(tags),
			Tags:           rec.Tags,
		})
	}
	return places, nil
}
