package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/veggieplaces-microservice/internal/pkg/utils"
	"github.com/veggieplaces-microservice/internal/usecase"
	"go.uber.org/zap"
)

// ImportHandler - обработчик импорта выгрузки Overpass
type ImportHandler struct {
	importUC   *usecase.ImportUseCase
	exportFile string
	logger     *zap.Logger
}

// NewImportHandler - создание нового ImportHandler
func NewImportHandler(importUC *usecase.ImportUseCase, exportFile string, logger *zap.Logger) *ImportHandler {
	return &ImportHandler{
		importUC:   importUC,
		exportFile: exportFile,
		logger:     logger,
	}
}

// Import - запуск импорта из настроенного файла выгрузки
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	result, err := h.importUC.ImportFromFile(c.Context(), h.exportFile)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Imported,
	})
}
