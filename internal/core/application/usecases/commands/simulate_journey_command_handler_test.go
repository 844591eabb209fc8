package commands_test

import (
	"errors"
	"testing"
	"time"

	"foodjourney/internal/core/application/usecases/commands"
	"foodjourney/internal/core/domain/model/entity"
	"foodjourney/internal/core/domain/model/journey"
	"foodjourney/internal/core/domain/model/kernel"
	"foodjourney/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type simulateFixture struct {
	entityRepo  *MockEntityRepository
	journeyRepo *MockJourneyRepository
	uow         *MockUoW
	factory     *MockJourneyUoWFactory
	notifier    *MockJourneyNotifier
	scheduler   *MockCompletionScheduler
	handler     commands.SimulateJourneyCommandHandler
}

func newSimulateFixture(delay time.Duration) *simulateFixture {
	f := &simulateFixture{
		entityRepo:  new(MockEntityRepository),
		journeyRepo: new(MockJourneyRepository),
		uow:         new(MockUoW),
		factory:     new(MockJourneyUoWFactory),
		notifier:    new(MockJourneyNotifier),
		scheduler:   new(MockCompletionScheduler),
	}
	f.factory.On("Create").Return(f.uow).Once()
	f.handler = commands.NewSimulateJourneyCommandHandler(
		f.factory, services.NewJourneyMatcher(nil), f.notifier, f.scheduler, delay)
	return f
}

func (f *simulateFixture) pools(donors, pickers, deliveryLocations []*entity.Entity) {
	f.entityRepo.On("GetAllOfRoles", mock.Anything, services.DonorRoles).Return(donors, nil).Once()
	f.entityRepo.On("GetAllOfRoles", mock.Anything, services.PickerRoles).Return(pickers, nil).Once()
	f.entityRepo.On("GetAllOfRoles", mock.Anything, services.DeliveryLocationRoles).Return(deliveryLocations, nil).Once()
}

func TestSimulateJourneyCommandHandler_Handle_Success(t *testing.T) {
	// Given
	ctx := t.Context()
	donor := newEntity(t, entity.FoodDonor, "Punjabi Rasoi", 23.03, 72.58)
	picker := newEntity(t, entity.Picker, "Sanjay Kumar", 23.01, 72.56)
	delivery := newEntity(t, entity.Institution, "Civil Hospital", 23.05, 72.60)
	journeyID := kernel.NewUUID()
	cmd, err := commands.NewSimulateJourneyCommand(journeyID)
	require.NoError(t, err)

	var steps []string
	step := func(name string) func(mock.Arguments) {
		return func(mock.Arguments) { steps = append(steps, name) }
	}
	f := newSimulateFixture(2 * time.Second)
	f.pools([]*entity.Entity{donor}, []*entity.Entity{picker}, []*entity.Entity{delivery})
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("EntityRepository").Return(f.entityRepo).Once(),
		f.uow.On("JourneyRepository").Return(f.journeyRepo).Once(),
		f.uow.On("Commit", ctx).Return(nil).Run(step("commit")).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	f.journeyRepo.On("Add", ctx, mock.AnythingOfType("*journey.Journey")).Return(nil).Once()
	f.notifier.On("JourneyChanged", ctx, mock.AnythingOfType("*journey.Journey")).Return().Run(step("notify")).Once()
	f.scheduler.On("PrepareCompletion", journeyID, 2*time.Second).
		Return(func() { steps = append(steps, "start") }, nil).Run(step("prepare")).Once()

	// When
	j, err := f.handler.Handle(ctx, cmd)

	// Then
	require.NoError(t, err)
	assert.Equal(t, journeyID, j.ID())
	assert.Equal(t, journey.InProgress, j.Status())
	assert.Equal(t, *donor.FoodID(), j.FoodID())
	assert.Same(t, donor, j.Donor())
	assert.Same(t, picker, j.Picker())
	assert.Same(t, delivery, j.DeliveryLocation())
	assert.Equal(t, []string{"prepare", "commit", "notify", "start"}, steps)
	f.entityRepo.AssertExpectations(t)
	f.journeyRepo.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
	f.scheduler.AssertExpectations(t)
}

func TestSimulateJourneyCommandHandler_Handle_InsufficientEntities(t *testing.T) {
	tests := []struct {
		name  string
		empty int
	}{
		{name: "no donors", empty: 0},
		{name: "no pickers", empty: 1},
		{name: "no delivery locations", empty: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			pools := [][]*entity.Entity{
				{newEntity(t, entity.FoodDonor, "Gupta Bhojanalay", 23.03, 72.58)},
				{newEntity(t, entity.Picker, "Ramesh Solanki", 23.01, 72.56)},
				{newEntity(t, entity.DeliveryLocation, "Vasna Slum", 23.00, 72.55)},
			}
			pools[tt.empty] = nil
			cmd, _ := commands.NewSimulateJourneyCommand(kernel.NewUUID())

			f := newSimulateFixture(0)
			f.pools(pools[0], pools[1], pools[2])
			f.uow.On("Begin", ctx).Return(nil).Once()
			f.uow.On("EntityRepository").Return(f.entityRepo).Once()
			f.uow.On("Rollback", ctx).Return(nil).Once()

			j, err := f.handler.Handle(ctx, cmd)

			assert.Nil(t, j)
			require.ErrorIs(t, err, services.ErrInsufficientEntities)
			f.uow.AssertNotCalled(t, "JourneyRepository")
			f.uow.AssertNotCalled(t, "Commit", ctx)
			f.notifier.AssertNotCalled(t, "JourneyChanged", mock.Anything, mock.Anything)
			f.scheduler.AssertNotCalled(t, "PrepareCompletion", mock.Anything, mock.Anything)
		})
	}
}

func TestSimulateJourneyCommandHandler_Handle_UsesDefaultDelay(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSimulateJourneyCommand(kernel.NewUUID())

	f := newSimulateFixture(0)
	f.pools(
		[]*entity.Entity{newEntity(t, entity.FoodDonor, "Anand Hotel", 23.03, 72.58)},
		[]*entity.Entity{newEntity(t, entity.Picker, "Arjun Yadav", 23.01, 72.56)},
		[]*entity.Entity{newEntity(t, entity.DeliveryLocation, "Gota Shelter", 23.10, 72.54)},
	)
	f.uow.On("Begin", ctx).Return(nil)
	f.uow.On("EntityRepository").Return(f.entityRepo)
	f.uow.On("JourneyRepository").Return(f.journeyRepo)
	f.uow.On("Commit", ctx).Return(nil)
	f.uow.On("Rollback", ctx).Return(nil)
	f.journeyRepo.On("Add", ctx, mock.Anything).Return(nil)
	f.notifier.On("JourneyChanged", ctx, mock.Anything).Return()
	f.scheduler.On("PrepareCompletion", cmd.JourneyID(), commands.DefaultCompletionDelay).Return(func() {}, nil).Once()

	_, err := f.handler.Handle(ctx, cmd)

	require.NoError(t, err)
	f.scheduler.AssertExpectations(t)
}

func TestSimulateJourneyCommandHandler_Handle_CommitErrorDoesNotNotify(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSimulateJourneyCommand(kernel.NewUUID())

	f := newSimulateFixture(time.Second)
	f.pools(
		[]*entity.Entity{newEntity(t, entity.FoodDonor, "Rajus Dhabha", 23.03, 72.58)},
		[]*entity.Entity{newEntity(t, entity.Picker, "Deepak Singh", 23.01, 72.56)},
		[]*entity.Entity{newEntity(t, entity.DeliveryLocation, "Prerna Orphanage", 23.10, 72.54)},
	)
	f.uow.On("Begin", ctx).Return(nil)
	f.uow.On("EntityRepository").Return(f.entityRepo)
	f.uow.On("JourneyRepository").Return(f.journeyRepo)
	f.uow.On("Commit", ctx).Return(errors.New("commit error"))
	f.uow.On("Rollback", ctx).Return(nil)
	f.journeyRepo.On("Add", ctx, mock.Anything).Return(nil)
	started := false
	f.scheduler.On("PrepareCompletion", cmd.JourneyID(), time.Second).Return(func() { started = true }, nil).Once()

	_, err := f.handler.Handle(ctx, cmd)

	require.Error(t, err)
	f.notifier.AssertNotCalled(t, "JourneyChanged", mock.Anything, mock.Anything)
	assert.False(t, started, "the completion timer is not started for an uncommitted journey")
}

func TestSimulateJourneyCommandHandler_Handle_ScheduleErrorWritesNothing(t *testing.T) {
	// Given
	ctx := t.Context()
	cmd, _ := commands.NewSimulateJourneyCommand(kernel.NewUUID())

	f := newSimulateFixture(time.Second)
	f.pools(
		[]*entity.Entity{newEntity(t, entity.FoodDonor, "Rajus Dhabha", 23.03, 72.58)},
		[]*entity.Entity{newEntity(t, entity.Picker, "Deepak Singh", 23.01, 72.56)},
		[]*entity.Entity{newEntity(t, entity.DeliveryLocation, "Prerna Orphanage", 23.10, 72.54)},
	)
	f.uow.On("Begin", ctx).Return(nil)
	f.uow.On("EntityRepository").Return(f.entityRepo)
	f.uow.On("JourneyRepository").Return(f.journeyRepo)
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.journeyRepo.On("Add", ctx, mock.Anything).Return(nil)
	scheduleErr := errors.New("scheduler stopped")
	f.scheduler.On("PrepareCompletion", cmd.JourneyID(), time.Second).Return(nil, scheduleErr).Once()

	// When
	j, err := f.handler.Handle(ctx, cmd)

	// Then
	assert.Nil(t, j)
	require.ErrorIs(t, err, scheduleErr)
	f.uow.AssertNotCalled(t, "Commit", ctx)
	f.uow.AssertExpectations(t)
	f.notifier.AssertNotCalled(t, "JourneyChanged", mock.Anything, mock.Anything)
}

func TestSimulateJourneyCommandHandler_Handle_ValidationError(t *testing.T) {
	f := newSimulateFixture(time.Second)

	_, err := f.handler.Handle(t.Context(), commands.SimulateJourneyCommand{})

	require.ErrorIs(t, err, commands.ErrSimulateJourneyCommandIsNotConstructed)
	f.factory.AssertNotCalled(t, "Create")
}
