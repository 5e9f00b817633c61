package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/veggieplaces-microservice/internal/pkg/utils"
	"github.com/veggieplaces-microservice/internal/pkg/validator"
	"github.com/veggieplaces-microservice/internal/usecase"
	"github.com/veggieplaces-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// EvaluateHandler - обработчик запросов классификации тегов
type EvaluateHandler struct {
	evaluateUC *usecase.EvaluateUseCase
	logger     *zap.Logger
}

// NewEvaluateHandler - создание нового EvaluateHandler
func NewEvaluateHandler(evaluateUC *usecase.EvaluateUseCase, logger *zap.Logger) *EvaluateHandler {
	return &EvaluateHandler{
		evaluateUC: evaluateUC,
		logger:     logger,
	}
}

// Evaluate - оценка одного набора тегов
func (h *EvaluateHandler) Evaluate(c *fiber.Ctx) error {
	var req dto.EvaluateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	payload, err := h.evaluateUC.Evaluate(req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, payload, nil)
}

// EvaluateBatch - пакетная оценка наборов тегов
func (h *EvaluateHandler) EvaluateBatch(c *fiber.Ctx) error {
	var req dto.EvaluateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.evaluateUC.EvaluateBatch(req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
