package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/domain"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/pkg/errors"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/pkg/utils"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/pkg/validator"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/usecase"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/usecase/dto"
)

type PositionHandler struct {
	positionUC *usecase.PositionUseCase
	logger     *zap.Logger
}

func NewPositionHandler(positionUC *usecase.PositionUseCase, logger *zap.Logger) *PositionHandler {
	return &PositionHandler{
		positionUC: positionUC,
		logger:     logger,
	}
}

// Update ingests a GPS fix pushed by the device.
func (h *PositionHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdatePositionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	if err := h.positionUC.Update(domain.Coordinates{Lat: req.Lat, Lng: req.Lng}); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, h.positionUC.Current(), nil)
}

// Current returns the last fix; "known": false before the first one,
// which is a normal state, not an error.
func (h *PositionHandler) Current(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.positionUC.Current(), nil)
}
