package usecase

import (
	"context"

	"github.com/veggieplaces-microservice/internal/domain"
	"github.com/veggieplaces-microservice/internal/domain/repository"
	"github.com/veggieplaces-microservice/internal/pkg/errors"
	"github.com/veggieplaces-microservice/internal/pkg/utils"
	"github.com/veggieplaces-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// PlaceUseCase отвечает за выдачу сохранённых мест слою отрисовки.
type PlaceUseCase struct {
	placeRepo repository.PlaceRepository
	logger    *zap.Logger
}

func NewPlaceUseCase(
	placeRepo repository.PlaceRepository,
	logger *zap.Logger,
) *PlaceUseCase {
	return &PlaceUseCase{
		placeRepo: placeRepo,
		logger:    logger,
	}
}

// SearchByRadius возвращает подходящие для карты места в радиусе от точки.
func (uc *PlaceUseCase) SearchByRadius(
	ctx context.Context,
	req dto.RadiusPlacesRequest,
) (*dto.RadiusPlacesResponse, error) {
	// Validate coordinates
	if !utils.ValidateCoordinates(req.Lat, req.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	// Validate radius
	if !utils.ValidateRadius(req.RadiusKm) {
		return nil, errors.ErrInvalidRadius
	}

	// Validate classification filter
	for _, c := range req.Classifications {
		if !domain.DietClassification(c).Valid() {
			return nil, errors.ErrInvalidClassification
		}
	}

	// Set default limit
	if req.Limit == 0 {
		req.Limit = 100
	}

	places, err := uc.placeRepo.GetNearby(
		ctx,
		req.Lat,
		req.Lon,
		req.RadiusKm,
		req.Classifications,
	)
	if err != nil {
		uc.logger.Error("Failed to search places by radius", zap.Error(err))
		return nil, err
	}

	// Apply limit
	if len(places) > req.Limit {
		places = places[:req.Limit]
	}

	// Build response
	result := make([]dto.PlaceWithPayload, 0, len(places))
	for _, place := range places {
		payload, err := uc.buildPayload(place)
		if err != nil {
			uc.logger.Warn("Skipping place with malformed tags",
				zap.Int64("id", place.ID),
				zap.Error(err))
			continue
		}

		// На карту попадают только места с диетической маркировкой
		if !payload.Eligible {
			continue
		}

		distance := utils.HaversineDistance(req.Lat, req.Lon, place.Lat, place.Lon) * 1000 // to meters

		result = append(result, dto.PlaceWithPayload{
			ID:       place.ID,
			OSMId:    place.OSMId,
			OSMType:  place.OSMType,
			Name:     place.Name,
			Lat:      place.Lat,
			Lon:      place.Lon,
			Distance: distance,
			Payload:  payload,
		})
	}

	return &dto.RadiusPlacesResponse{
		Places: result,
		Total:  len(result),
	}, nil
}

// GetByID возвращает место с вычисленным display payload.
func (uc *PlaceUseCase) GetByID(ctx context.Context, id int64) (*dto.PlaceWithPayload, error) {
	place, err := uc.placeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	payload, err := uc.buildPayload(place)
	if err != nil {
		uc.logger.Error("Failed to evaluate stored place",
			zap.Int64("id", id),
			zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	return &dto.PlaceWithPayload{
		ID:      place.ID,
		OSMId:   place.OSMId,
		OSMType: place.OSMType,
		Name:    place.Name,
		Lat:     place.Lat,
		Lon:     place.Lon,
		Payload: payload,
	}, nil
}

func (uc *PlaceUseCase) buildPayload(place *domain.Place) (domain.DisplayPayload, error) {
	tags, err := place.TagSet()
	if err != nil {
		return domain.DisplayPayload{}, err
	}
	return domain.Evaluate(tags), nil
}
