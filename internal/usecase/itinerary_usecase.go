package usecase

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/domain"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/pkg/clock"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/pkg/errors"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/pkg/metrics"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/pkg/utils"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/usecase/dto"
)

// ItineraryUseCase owns the ordered activity sequence and derives the
// per-entry display facts. The declared order is the visitation order;
// nothing here ever re-sorts it. Completion flags are the only state it
// mutates.
type ItineraryUseCase struct {
	mu         sync.RWMutex
	activities []domain.Activity

	// startMins/endMins cache the parsed HH:MM values per entry; the
	// strings themselves were validated at load.
	startMins []int
	endMins   []int

	deadline        string
	deadlineMinutes int

	clk        clock.Clock
	positionUC *PositionUseCase
	collector  *metrics.Collector
	logger     *zap.Logger
}

func NewItineraryUseCase(
	activities []domain.Activity,
	boardingDeadline string,
	clk clock.Clock,
	positionUC *PositionUseCase,
	collector *metrics.Collector,
	logger *zap.Logger,
) (*ItineraryUseCase, error) {
	deadlineMinutes, err := utils.ParseClock(boardingDeadline)
	if err != nil {
		return nil, fmt.Errorf("bad boarding deadline %q: %w", boardingDeadline, err)
	}

	startMins := make([]int, len(activities))
	endMins := make([]int, len(activities))
	for i, act := range activities {
		if startMins[i], err = utils.ParseClock(act.StartTime); err != nil {
			return nil, fmt.Errorf("activity %q: %w", act.ID, err)
		}
		if endMins[i], err = utils.ParseClock(act.EndTime); err != nil {
			return nil, fmt.Errorf("activity %q: %w", act.ID, err)
		}
	}

	return &ItineraryUseCase{
		activities:      activities,
		startMins:       startMins,
		endMins:         endMins,
		deadline:        boardingDeadline,
		deadlineMinutes: deadlineMinutes,
		clk:             clk,
		positionUC:      positionUC,
		collector:       collector,
		logger:          logger,
	}, nil
}

// Activities returns a snapshot copy of the sequence.
func (uc *ItineraryUseCase) Activities() []domain.Activity {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	snapshot := make([]domain.Activity, len(uc.activities))
	copy(snapshot, uc.activities)
	return snapshot
}

// ToggleCompletion flips the completed flag of exactly the matching
// entry. A stale id is reported as NOT_FOUND rather than silently
// ignored; a UI holding a dead reference should hear about it.
func (uc *ItineraryUseCase) ToggleCompletion(id string) (domain.Activity, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for i := range uc.activities {
		if uc.activities[i].ID == id {
			uc.activities[i].Completed = !uc.activities[i].Completed

			uc.collector.TogglesApplied.Inc()
			uc.logger.Info("Activity completion toggled",
				zap.String("id", id),
				zap.Bool("completed", uc.activities[i].Completed))

			return uc.activities[i], nil
		}
	}

	return domain.Activity{}, errors.ErrActivityNotFound.WithDetails(map[string]interface{}{"id": id})
}

// Timeline is the read-only projection consumed by the display: for each
// entry its duration text, live progress, the gap to the previous entry
// and, when both a fix and coordinates exist, distance and bearing from
// the user. Recomputed in full on every call; nothing is cached because
// "now" and the fix change independently of the activity data.
func (uc *ItineraryUseCase) Timeline() dto.TimelineResponse {
	now := clock.MinutesOfDay(uc.clk.Now())
	position := uc.positionUC.Current()

	uc.mu.RLock()
	defer uc.mu.RUnlock()

	entries := make([]dto.TimelineEntry, 0, len(uc.activities))
	for i, act := range uc.activities {
		entry := dto.TimelineEntry{
			Activity:     act,
			DurationText: utils.FormatDuration(utils.Duration(uc.startMins[i], uc.endMins[i])),
			Progress:     utils.Progress(now, uc.startMins[i], uc.endMins[i]),
		}

		// Gap is strictly between adjacent declared entries, not
		// chronologically nearest ones. Zero gaps are suppressed.
		if i > 0 {
			if gap := utils.Gap(uc.endMins[i-1], uc.startMins[i]); gap > 0 {
				entry.GapMinutes = &gap
				entry.GapText = utils.FormatGap(gap)
			}
		}

		if position.Known && act.HasCoords() {
			dist, bearing := utils.DistanceAndBearing(
				position.Coords.Lat, position.Coords.Lng,
				act.Coords.Lat, act.Coords.Lng,
			)
			entry.DistanceMeters = &dist
			entry.DistanceText = utils.FormatDistance(dist)
			entry.BearingDegrees = &bearing
		}

		entries = append(entries, entry)
	}

	return dto.TimelineResponse{Entries: entries}
}

// Countdown reports the time left to the boarding deadline at 1-second
// granularity, terminal once the deadline passes.
func (uc *ItineraryUseCase) Countdown() dto.CountdownResponse {
	cd := utils.CountdownTo(clock.SecondsOfDay(uc.clk.Now()), uc.deadlineMinutes)

	return dto.CountdownResponse{
		Deadline: uc.deadline,
		Display:  cd.String(),
		Hours:    cd.Hours,
		Minutes:  cd.Minutes,
		Seconds:  cd.Seconds,
		Elapsed:  cd.Elapsed,
	}
}

// CountdownSeconds is the raw remaining seconds, used by the ticker
// worker for the metrics gauge.
func (uc *ItineraryUseCase) CountdownSeconds() (int, bool) {
	cd := utils.CountdownTo(clock.SecondsOfDay(uc.clk.Now()), uc.deadlineMinutes)
	return cd.Remaining(), cd.Elapsed
}

// Budget totals the scheduled prices and lists paid entries. Read-only;
// prices never feed back into scheduling.
func (uc *ItineraryUseCase) Budget() dto.BudgetResponse {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	resp := dto.BudgetResponse{Items: []dto.BudgetItem{}}
	for _, act := range uc.activities {
		resp.TotalEUR += act.PriceEUR
		if act.PriceEUR > 0 {
			resp.Items = append(resp.Items, dto.BudgetItem{
				ID:       act.ID,
				Title:    act.Title,
				PriceEUR: act.PriceEUR,
			})
		}
	}

	return resp
}
