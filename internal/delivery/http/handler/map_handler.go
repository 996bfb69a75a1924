package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/pkg/utils"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/usecase"
)

type MapHandler struct {
	mapUC  *usecase.MapUseCase
	logger *zap.Logger
}

func NewMapHandler(mapUC *usecase.MapUseCase, logger *zap.Logger) *MapHandler {
	return &MapHandler{
		mapUC:  mapUC,
		logger: logger,
	}
}

// GetFeatures returns the merged point set for the map collaborator.
func (h *MapHandler) GetFeatures(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.mapUC.Features(), nil)
}
