package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/pkg/errors"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/pkg/utils"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/pkg/validator"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/usecase"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/usecase/dto"
)

type WaypointHandler struct {
	waypointUC *usecase.WaypointUseCase
	logger     *zap.Logger
}

func NewWaypointHandler(waypointUC *usecase.WaypointUseCase, logger *zap.Logger) *WaypointHandler {
	return &WaypointHandler{
		waypointUC: waypointUC,
		logger:     logger,
	}
}

// List returns the custom waypoints in insertion order.
func (h *WaypointHandler) List(c *fiber.Ctx) error {
	waypoints := h.waypointUC.List()

	return utils.SendSuccess(c, fiber.Map{
		"waypoints": waypoints,
	}, &utils.Meta{
		Total: len(waypoints),
	})
}

// Create saves a new waypoint at the supplied coordinates.
func (h *WaypointHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateWaypointRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	waypoint, err := h.waypointUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{Data: waypoint})
}

// Delete removes a waypoint; unknown ids are a no-op.
func (h *WaypointHandler) Delete(c *fiber.Ctx) error {
	if err := h.waypointUC.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
