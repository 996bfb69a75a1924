package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/pkg/utils"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/usecase"
)

type ItineraryHandler struct {
	itineraryUC *usecase.ItineraryUseCase
	logger      *zap.Logger
}

func NewItineraryHandler(itineraryUC *usecase.ItineraryUseCase, logger *zap.Logger) *ItineraryHandler {
	return &ItineraryHandler{
		itineraryUC: itineraryUC,
		logger:      logger,
	}
}

// GetTimeline returns the itinerary with its derived display facts.
func (h *ItineraryHandler) GetTimeline(c *fiber.Ctx) error {
	timeline := h.itineraryUC.Timeline()

	return utils.SendSuccess(c, timeline, &utils.Meta{
		Total: len(timeline.Entries),
	})
}

// ToggleCompletion flips one activity's completed flag.
func (h *ItineraryHandler) ToggleCompletion(c *fiber.Ctx) error {
	id := c.Params("id")

	activity, err := h.itineraryUC.ToggleCompletion(id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, activity, nil)
}

// GetCountdown returns the live boarding countdown.
func (h *ItineraryHandler) GetCountdown(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.itineraryUC.Countdown(), nil)
}

// GetBudget returns the price summary of the day.
func (h *ItineraryHandler) GetBudget(c *fiber.Ctx) error {
	budget := h.itineraryUC.Budget()

	return utils.SendSuccess(c, budget, &utils.Meta{
		Total: len(budget.Items),
	})
}
