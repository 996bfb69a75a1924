package usecase

import (
	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/domain"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/usecase/dto"
)

// MapUseCase assembles the merged point set for the map collaborator:
// activities, static reference waypoints, custom waypoints, the track
// polyline and the current position, all in one snapshot read.
type MapUseCase struct {
	itineraryUC *ItineraryUseCase
	waypointUC  *WaypointUseCase
	positionUC  *PositionUseCase
	reference   *domain.Reference
	logger      *zap.Logger
}

func NewMapUseCase(
	itineraryUC *ItineraryUseCase,
	waypointUC *WaypointUseCase,
	positionUC *PositionUseCase,
	reference *domain.Reference,
	logger *zap.Logger,
) *MapUseCase {
	return &MapUseCase{
		itineraryUC: itineraryUC,
		waypointUC:  waypointUC,
		positionUC:  positionUC,
		reference:   reference,
		logger:      logger,
	}
}

// Features merges the layers. An unknown position is simply absent from
// the result; the collaborator draws what is there.
func (uc *MapUseCase) Features() dto.MapFeatures {
	features := dto.MapFeatures{
		Activities:      uc.itineraryUC.Activities(),
		StaticWaypoints: uc.reference.Waypoints,
		CustomWaypoints: uc.waypointUC.List(),
		Track:           uc.reference.Track,
	}

	if position := uc.positionUC.Current(); position.Known {
		coords := position.Coords
		features.Position = &coords
	}

	return features
}
