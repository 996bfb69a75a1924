package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/domain"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/pkg/clock"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/pkg/errors"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/pkg/metrics"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/usecase"
)

// at returns a fixed clock on the operating day.
func at(hour, min, sec int) clock.Clock {
	return clock.Fixed{Instant: time.Date(2026, 4, 13, hour, min, sec, 0, time.Local)}
}

func testActivities() []domain.Activity {
	return []domain.Activity{
		{
			ID:        "act-1",
			Title:     "Walk to the Old Port",
			StartTime: "08:00",
			EndTime:   "09:00",
			Type:      domain.ActivityWalking,
			Coords:    &domain.Coordinates{Lat: 43.2951, Lng: 5.3756},
		},
		{
			ID:        "act-2",
			Title:     "Notre-Dame de la Garde",
			StartTime: "09:30",
			EndTime:   "10:00",
			Type:      domain.ActivityVisit,
			PriceEUR:  12,
			Coords:    &domain.Coordinates{Lat: 43.2839, Lng: 5.3712},
		},
		{
			ID:        "act-3",
			Title:     "Keep phone charged",
			StartTime: "10:00",
			EndTime:   "10:30",
			Type:      domain.ActivityLimit,
			Critical:  true,
		},
	}
}

func newItineraryUC(t *testing.T, clk clock.Clock) (*usecase.ItineraryUseCase, *usecase.PositionUseCase) {
	t.Helper()

	collector := metrics.NewCollector()
	positionUC := usecase.NewPositionUseCase(clk, collector, zap.NewNop())

	uc, err := usecase.NewItineraryUseCase(
		testActivities(), "18:30", clk, positionUC, collector, zap.NewNop(),
	)
	require.NoError(t, err)
	return uc, positionUC
}

func TestItineraryUseCase_RejectsBadDeadline(t *testing.T) {
	collector := metrics.NewCollector()
	positionUC := usecase.NewPositionUseCase(at(8, 0, 0), collector, zap.NewNop())

	_, err := usecase.NewItineraryUseCase(
		testActivities(), "25:00", at(8, 0, 0), positionUC, collector, zap.NewNop(),
	)
	assert.Error(t, err)
}

func TestItineraryUseCase_ToggleCompletion(t *testing.T) {
	uc, _ := newItineraryUC(t, at(8, 0, 0))

	toggled, err := uc.ToggleCompletion("act-1")
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	activities := uc.Activities()
	assert.True(t, activities[0].Completed)
	assert.False(t, activities[1].Completed)
	assert.False(t, activities[2].Completed)

	// Everything but the flag is untouched, and order is preserved.
	assert.Equal(t, "act-1", activities[0].ID)
	assert.Equal(t, "Walk to the Old Port", activities[0].Title)
	assert.Equal(t, "08:00", activities[0].StartTime)

	// Toggling again flips it back.
	toggled, err = uc.ToggleCompletion("act-1")
	require.NoError(t, err)
	assert.False(t, toggled.Completed)
}

func TestItineraryUseCase_ToggleUnknownID(t *testing.T) {
	uc, _ := newItineraryUC(t, at(8, 0, 0))

	_, err := uc.ToggleCompletion("gone")
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)

	for _, act := range uc.Activities() {
		assert.False(t, act.Completed)
	}
}

func TestItineraryUseCase_TimelineGaps(t *testing.T) {
	uc, _ := newItineraryUC(t, at(8, 0, 0))

	entries := uc.Timeline().Entries
	require.Len(t, entries, 3)

	// First entry never has a gap.
	assert.Nil(t, entries[0].GapMinutes)

	// 09:00 -> 09:30 is a 30 minute wait.
	require.NotNil(t, entries[1].GapMinutes)
	assert.Equal(t, 30, *entries[1].GapMinutes)
	assert.Equal(t, "30min", entries[1].GapText)

	// 10:00 -> 10:00 back-to-back gap is suppressed, not an error.
	assert.Nil(t, entries[2].GapMinutes)
}

func TestItineraryUseCase_TimelineProgress(t *testing.T) {
	tests := []struct {
		name     string
		clk      clock.Clock
		expected []float64
	}{
		{"before the day", at(6, 0, 0), []float64{0, 0, 0}},
		{"mid first activity", at(8, 30, 0), []float64{0.5, 0, 0}},
		{"after first, in gap", at(9, 15, 0), []float64{1, 0, 0}},
		{"all done", at(11, 0, 0), []float64{1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newItineraryUC(t, tt.clk)

			entries := uc.Timeline().Entries
			require.Len(t, entries, len(tt.expected))
			for i, expected := range tt.expected {
				assert.InDelta(t, expected, entries[i].Progress, 1e-9)
			}
		})
	}
}

func TestItineraryUseCase_TimelineDistance(t *testing.T) {
	uc, positionUC := newItineraryUC(t, at(8, 0, 0))

	t.Run("no fix yet, distances absent", func(t *testing.T) {
		for _, entry := range uc.Timeline().Entries {
			assert.Nil(t, entry.DistanceMeters)
			assert.Nil(t, entry.BearingDegrees)
			assert.Empty(t, entry.DistanceText)
		}
	})

	t.Run("with a fix", func(t *testing.T) {
		require.NoError(t, positionUC.Update(domain.Coordinates{Lat: 43.2965, Lng: 5.3698}))

		entries := uc.Timeline().Entries

		// Geolocated activities get distance, bearing and display text.
		require.NotNil(t, entries[0].DistanceMeters)
		assert.Greater(t, *entries[0].DistanceMeters, 0.0)
		require.NotNil(t, entries[0].BearingDegrees)
		assert.GreaterOrEqual(t, *entries[0].BearingDegrees, 0.0)
		assert.Less(t, *entries[0].BearingDegrees, 360.0)
		assert.NotEmpty(t, entries[0].DistanceText)

		// The non-geolocatable reminder entry still omits them.
		assert.Nil(t, entries[2].DistanceMeters)
	})
}

func TestItineraryUseCase_Countdown(t *testing.T) {
	t.Run("half hour remaining", func(t *testing.T) {
		uc, _ := newItineraryUC(t, at(18, 0, 0))

		cd := uc.Countdown()
		assert.False(t, cd.Elapsed)
		assert.Equal(t, "00h 30m 00s", cd.Display)
		assert.Equal(t, "18:30", cd.Deadline)
	})

	t.Run("just past the deadline", func(t *testing.T) {
		uc, _ := newItineraryUC(t, at(18, 30, 1))

		cd := uc.Countdown()
		assert.True(t, cd.Elapsed)
		assert.Equal(t, "elapsed", cd.Display)
	})
}

func TestItineraryUseCase_Budget(t *testing.T) {
	uc, _ := newItineraryUC(t, at(8, 0, 0))

	budget := uc.Budget()
	assert.Equal(t, 12.0, budget.TotalEUR)
	require.Len(t, budget.Items, 1)
	assert.Equal(t, "act-2", budget.Items[0].ID)
	assert.Equal(t, 12.0, budget.Items[0].PriceEUR)
}
