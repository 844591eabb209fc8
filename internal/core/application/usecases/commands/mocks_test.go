package commands_test

import (
	"context"
	"testing"
	"time"

	"foodjourney/internal/core/application/usecases/commands"
	"foodjourney/internal/core/domain/model/entity"
	"foodjourney/internal/core/domain/model/event"
	"foodjourney/internal/core/domain/model/journey"
	"foodjourney/internal/core/domain/model/kernel"
	"foodjourney/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEntityRepository struct{ mock.Mock }

func (m *MockEntityRepository) Add(ctx context.Context, e *entity.Entity) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEntityRepository) Get(ctx context.Context, id kernel.UUID) (*entity.Entity, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*entity.Entity)
	return e, args.Error(1)
}

func (m *MockEntityRepository) GetAll(ctx context.Context) ([]*entity.Entity, error) {
	args := m.Called(ctx)
	entities, _ := args.Get(0).([]*entity.Entity)
	return entities, args.Error(1)
}

func (m *MockEntityRepository) GetAllOfRoles(ctx context.Context, roles ...entity.Role) ([]*entity.Entity, error) {
	args := m.Called(ctx, roles)
	entities, _ := args.Get(0).([]*entity.Entity)
	return entities, args.Error(1)
}

type MockJourneyRepository struct{ mock.Mock }

func (m *MockJourneyRepository) Add(ctx context.Context, j *journey.Journey) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJourneyRepository) Update(ctx context.Context, j *journey.Journey) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJourneyRepository) Get(ctx context.Context, id kernel.UUID) (*journey.Journey, error) {
	args := m.Called(ctx, id)
	j, _ := args.Get(0).(*journey.Journey)
	return j, args.Error(1)
}

func (m *MockJourneyRepository) GetAll(ctx context.Context) ([]*journey.Journey, error) {
	args := m.Called(ctx)
	journeys, _ := args.Get(0).([]*journey.Journey)
	return journeys, args.Error(1)
}

type MockEventRepository struct{ mock.Mock }

func (m *MockEventRepository) Add(ctx context.Context, e *event.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEventRepository) GetAll(ctx context.Context) ([]*event.Event, error) {
	args := m.Called(ctx)
	events, _ := args.Get(0).([]*event.Event)
	return events, args.Error(1)
}

// MockUoW satisfies every narrowed unit of work interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) EntityRepository() ports.EntityRepository {
	args := m.Called()
	return args.Get(0).(ports.EntityRepository)
}

func (m *MockUoW) JourneyRepository() ports.JourneyRepository {
	args := m.Called()
	return args.Get(0).(ports.JourneyRepository)
}

func (m *MockUoW) EventRepository() ports.EventRepository {
	args := m.Called()
	return args.Get(0).(ports.EventRepository)
}

type MockEntityUoWFactory struct{ mock.Mock }

func (m *MockEntityUoWFactory) Create() commands.EntityUoW {
	args := m.Called()
	return args.Get(0).(commands.EntityUoW)
}

type MockJourneyUoWFactory struct{ mock.Mock }

func (m *MockJourneyUoWFactory) Create() commands.JourneyUoW {
	args := m.Called()
	return args.Get(0).(commands.JourneyUoW)
}

type MockEventUoWFactory struct{ mock.Mock }

func (m *MockEventUoWFactory) Create() commands.EventUoW {
	args := m.Called()
	return args.Get(0).(commands.EventUoW)
}

type MockJourneyNotifier struct{ mock.Mock }

func (m *MockJourneyNotifier) JourneyChanged(ctx context.Context, j *journey.Journey) {
	m.Called(ctx, j)
}

type MockCompletionScheduler struct{ mock.Mock }

func (m *MockCompletionScheduler) PrepareCompletion(journeyID kernel.UUID, delay time.Duration) (func(), error) {
	args := m.Called(journeyID, delay)
	start, _ := args.Get(0).(func())
	return start, args.Error(1)
}

type MockGeolocator struct{ mock.Mock }

func (m *MockGeolocator) CurrentPosition(ctx context.Context) (kernel.Location, error) {
	args := m.Called(ctx)
	location, _ := args.Get(0).(kernel.Location)
	return location, args.Error(1)
}

func newEntity(t *testing.T, role entity.Role, name string, lat, lon float64) *entity.Entity {
	t.Helper()
	e, err := entity.NewEntity(kernel.NewUUID(), role, name, kernel.MustNewLocation(lat, lon))
	require.NoError(t, err)
	return e
}
