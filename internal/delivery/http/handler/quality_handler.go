package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/veggieplaces-microservice/internal/pkg/utils"
	"github.com/veggieplaces-microservice/internal/usecase"
	"go.uber.org/zap"
)

// QualityHandler - обработчик отчётов о качестве данных
type QualityHandler struct {
	qualityUC *usecase.QualityUseCase
	logger    *zap.Logger
}

// NewQualityHandler - создание нового QualityHandler
func NewQualityHandler(qualityUC *usecase.QualityUseCase, logger *zap.Logger) *QualityHandler {
	return &QualityHandler{
		qualityUC: qualityUC,
		logger:    logger,
	}
}

// GetReport - получение кешированного отчёта (GeoJSON FeatureCollection)
func (h *QualityHandler) GetReport(c *fiber.Ctx) error {
	report, err := h.qualityUC.GetReport(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	// Отчёт отдаётся как есть: потребители ждут чистый GeoJSON
	return c.JSON(report)
}

// RefreshReport - пересборка отчёта о качестве данных
func (h *QualityHandler) RefreshReport(c *fiber.Ctx) error {
	summary, err := h.qualityUC.BuildReport(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, summary, &utils.Meta{
		Total: summary.PlacesChecked,
	})
}
