package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/domain"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/pkg/errors"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/pkg/metrics"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/usecase"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/usecase/dto"
)

// MockWaypointRepository is a mock of WaypointRepository
type MockWaypointRepository struct {
	mock.Mock
}

func (m *MockWaypointRepository) Load(ctx context.Context) ([]domain.Waypoint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Waypoint), args.Error(1)
}

func (m *MockWaypointRepository) Save(ctx context.Context, waypoints []domain.Waypoint) error {
	args := m.Called(ctx, waypoints)
	return args.Error(0)
}

func newWaypointUC(t *testing.T, repo *MockWaypointRepository) *usecase.WaypointUseCase {
	t.Helper()

	uc, err := usecase.NewWaypointUseCase(
		context.Background(), repo, at(10, 0, 0), metrics.NewCollector(), zap.NewNop(),
	)
	require.NoError(t, err)
	return uc
}

func TestWaypointUseCase_CorruptStoreRecovers(t *testing.T) {
	repo := &MockWaypointRepository{}
	repo.On("Load", mock.Anything).Return(nil, errors.ErrPersistenceCorrupt)
	repo.On("Save", mock.Anything, []domain.Waypoint{}).Return(nil)

	uc := newWaypointUC(t, repo)

	assert.Empty(t, uc.List())
	repo.AssertCalled(t, "Save", mock.Anything, []domain.Waypoint{})
}

func TestWaypointUseCase_CreateRejectsEmptyName(t *testing.T) {
	repo := &MockWaypointRepository{}
	repo.On("Load", mock.Anything).Return([]domain.Waypoint{}, nil)

	uc := newWaypointUC(t, repo)

	tests := []string{"", "   ", "\t\n"}
	for _, name := range tests {
		_, err := uc.Create(context.Background(), dto.CreateWaypointRequest{
			Name: name,
			Lat:  43.2951,
			Lng:  5.3756,
		})
		assert.Equal(t, errors.ErrEmptyWaypointName, err)
	}

	// Nothing was stored, nothing was persisted.
	assert.Empty(t, uc.List())
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestWaypointUseCase_CreateRejectsBadCoordinates(t *testing.T) {
	repo := &MockWaypointRepository{}
	repo.On("Load", mock.Anything).Return([]domain.Waypoint{}, nil)

	uc := newWaypointUC(t, repo)

	_, err := uc.Create(context.Background(), dto.CreateWaypointRequest{
		Name: "Café",
		Lat:  123.0,
		Lng:  5.3756,
	})
	assert.Equal(t, errors.ErrInvalidCoordinates, err)
}

func TestWaypointUseCase_Create(t *testing.T) {
	repo := &MockWaypointRepository{}
	repo.On("Load", mock.Anything).Return([]domain.Waypoint{}, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	uc := newWaypointUC(t, repo)

	created, err := uc.Create(context.Background(), dto.CreateWaypointRequest{
		Name:        "  Café de la Banque  ",
		Description: "good espresso",
		Lat:         43.2951,
		Lng:         5.3756,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Café de la Banque", created.Name)
	assert.Equal(t, domain.Coordinates{Lat: 43.2951, Lng: 5.3756}, created.Coords)
	assert.False(t, created.CreatedAt.IsZero())

	listed := uc.List()
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	// Persisted synchronously as part of the call.
	repo.AssertNumberOfCalls(t, "Save", 1)
}

func TestWaypointUseCase_CreateUniqueIDs(t *testing.T) {
	repo := &MockWaypointRepository{}
	repo.On("Load", mock.Anything).Return([]domain.Waypoint{}, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	uc := newWaypointUC(t, repo)

	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		wp, err := uc.Create(context.Background(), dto.CreateWaypointRequest{
			Name: "spot",
			Lat:  43.29,
			Lng:  5.37,
		})
		require.NoError(t, err)

		_, dup := seen[wp.ID]
		assert.False(t, dup, "duplicate id %s", wp.ID)
		seen[wp.ID] = struct{}{}
	}
}

func TestWaypointUseCase_CreateRollsBackOnSaveFailure(t *testing.T) {
	repo := &MockWaypointRepository{}
	repo.On("Load", mock.Anything).Return([]domain.Waypoint{}, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(assert.AnError)

	uc := newWaypointUC(t, repo)

	_, err := uc.Create(context.Background(), dto.CreateWaypointRequest{
		Name: "Café",
		Lat:  43.2951,
		Lng:  5.3756,
	})
	assert.Equal(t, errors.ErrStorageError, err)

	// No partial entity survives a failed persist.
	assert.Empty(t, uc.List())
}

func TestWaypointUseCase_Delete(t *testing.T) {
	existing := []domain.Waypoint{
		{ID: "wp-1", Name: "first", Coords: domain.Coordinates{Lat: 1, Lng: 1}},
		{ID: "wp-2", Name: "second", Coords: domain.Coordinates{Lat: 2, Lng: 2}},
	}

	repo := &MockWaypointRepository{}
	repo.On("Load", mock.Anything).Return(existing, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	uc := newWaypointUC(t, repo)

	require.NoError(t, uc.Delete(context.Background(), "wp-1"))

	listed := uc.List()
	require.Len(t, listed, 1)
	assert.Equal(t, "wp-2", listed[0].ID)
	repo.AssertNumberOfCalls(t, "Save", 1)
}

func TestWaypointUseCase_DeleteUnknownIDIsNoOp(t *testing.T) {
	existing := []domain.Waypoint{
		{ID: "wp-1", Name: "first", Coords: domain.Coordinates{Lat: 1, Lng: 1}},
	}

	repo := &MockWaypointRepository{}
	repo.On("Load", mock.Anything).Return(existing, nil)

	uc := newWaypointUC(t, repo)

	assert.NoError(t, uc.Delete(context.Background(), "nope"))
	assert.Len(t, uc.List(), 1)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestWaypointUseCase_ListInsertionOrder(t *testing.T) {
	repo := &MockWaypointRepository{}
	repo.On("Load", mock.Anything).Return([]domain.Waypoint{}, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	uc := newWaypointUC(t, repo)

	names := []string{"first", "second", "third"}
	for _, name := range names {
		_, err := uc.Create(context.Background(), dto.CreateWaypointRequest{
			Name: name,
			Lat:  43.29,
			Lng:  5.37,
		})
		require.NoError(t, err)
	}

	listed := uc.List()
	require.Len(t, listed, 3)
	for i, name := range names {
		assert.Equal(t, name, listed[i].Name)
	}
}
