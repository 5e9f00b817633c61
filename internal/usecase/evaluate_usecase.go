package usecase

import (
	"github.com/veggieplaces-microservice/internal/domain"
	"github.com/veggieplaces-microservice/internal/pkg/errors"
	"github.com/veggieplaces-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// EvaluateUseCase применяет правила классификации к сырым тегам.
type EvaluateUseCase struct {
	logger *zap.Logger
}

func NewEvaluateUseCase(logger *zap.Logger) *EvaluateUseCase {
	return &EvaluateUseCase{
		logger: logger,
	}
}

// Evaluate оценивает один набор тегов.
func (uc *EvaluateUseCase) Evaluate(req dto.EvaluateRequest) (*domain.DisplayPayload, error) {
	tags, err := domain.NewTagSet(req.Tags)
	if err != nil {
		// Нарушение контракта вызывающей стороной, а не проблема данных OSM
		uc.logger.Warn("Rejected evaluate request with nil tag map")
		return nil, errors.ErrInvalidTagSet
	}

	payload := domain.Evaluate(tags)
	return &payload, nil
}

// EvaluateBatch оценивает пакет мест. Вычисление чистое и независимое для
// каждого элемента, поэтому один битый элемент валит весь запрос только в
// случае nil-карты - это ошибка вызывающего.
func (uc *EvaluateUseCase) EvaluateBatch(req dto.EvaluateBatchRequest) (*dto.EvaluateBatchResponse, error) {
	payloads := make([]domain.DisplayPayload, 0, len(req.Places))
	for i, place := range req.Places {
		tags, err := domain.NewTagSet(place.Tags)
		if err != nil {
			uc.logger.Warn("Rejected batch with nil tag map", zap.Int("index", i))
			appErr := errors.New(
				errors.ErrInvalidTagSet.Code,
				errors.ErrInvalidTagSet.Message,
				errors.ErrInvalidTagSet.StatusCode,
			)
			return nil, appErr.WithDetails(map[string]interface{}{"index": i})
		}
		payloads = append(payloads, domain.Evaluate(tags))
	}

	return &dto.EvaluateBatchResponse{
		Payloads: payloads,
		Total:    len(payloads),
	}, nil
}
