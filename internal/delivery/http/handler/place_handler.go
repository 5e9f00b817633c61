package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/veggieplaces-microservice/internal/pkg/errors"
	"github.com/veggieplaces-microservice/internal/pkg/utils"
	"github.com/veggieplaces-microservice/internal/pkg/validator"
	"github.com/veggieplaces-microservice/internal/usecase"
	"github.com/veggieplaces-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// PlaceHandler - обработчик запросов к сохранённым местам
type PlaceHandler struct {
	placeUC *usecase.PlaceUseCase
	logger  *zap.Logger
}

// NewPlaceHandler - создание нового PlaceHandler
func NewPlaceHandler(placeUC *usecase.PlaceUseCase, logger *zap.Logger) *PlaceHandler {
	return &PlaceHandler{
		placeUC: placeUC,
		logger:  logger,
	}
}

// SearchByRadius - поиск подходящих мест в радиусе
func (h *PlaceHandler) SearchByRadius(c *fiber.Ctx) error {
	var req dto.RadiusPlacesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.placeUC.SearchByRadius(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// GetByID - получение места с display payload
func (h *PlaceHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	place, err := h.placeUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, place, nil)
}
