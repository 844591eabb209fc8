package commands_test

import (
	"testing"
	"time"

	"foodjourney/internal/core/application/usecases/commands"
	"foodjourney/internal/core/domain/model/entity"
	"foodjourney/internal/core/domain/model/journey"
	"foodjourney/internal/core/domain/model/kernel"
	"foodjourney/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newJourney(t *testing.T) *journey.Journey {
	t.Helper()
	j, err := journey.NewJourney(
		kernel.NewUUID(),
		newEntity(t, entity.FoodDonor, "Community Kitchen", 23.03, 72.58),
		newEntity(t, entity.Picker, "Mohammed Rafi", 23.01, 72.56),
		newEntity(t, entity.DeliveryLocation, "Nava Vadaj Colony", 23.06, 72.57),
		time.Now(),
	)
	require.NoError(t, err)
	return j
}

func TestCompleteJourneyCommandHandler_Handle_Success(t *testing.T) {
	// Given
	ctx := t.Context()
	j := newJourney(t)
	cmd, _ := commands.NewCompleteJourneyCommand(j.ID())

	repo := new(MockJourneyRepository)
	uow := new(MockUoW)
	notifier := new(MockJourneyNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JourneyRepository").Return(repo).Once(),
		repo.On("Get", ctx, j.ID()).Return(j, nil).Once(),
		repo.On("Update", ctx, j).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	notifier.On("JourneyChanged", ctx, j).Return().Once()
	factory := new(MockJourneyUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteJourneyCommandHandler(factory, notifier)

	// When
	err := h.Handle(ctx, cmd)

	// Then
	require.NoError(t, err)
	assert.Equal(t, journey.Completed, j.Status())
	assert.NotNil(t, j.CompletedAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCompleteJourneyCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewCompleteJourneyCommand(id)

	repo := new(MockJourneyRepository)
	repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("journey", id.String())).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("JourneyRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockJourneyUoWFactory)
	factory.On("Create").Return(uow).Once()
	notifier := new(MockJourneyNotifier)

	h := commands.NewCompleteJourneyCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	notifier.AssertNotCalled(t, "JourneyChanged", mock.Anything, mock.Anything)
}

func TestCompleteJourneyCommandHandler_Handle_AlreadyCompleted(t *testing.T) {
	ctx := t.Context()
	j := newJourney(t)
	require.NoError(t, j.Complete(time.Now()))
	completedAt := j.CompletedAt()
	cmd, _ := commands.NewCompleteJourneyCommand(j.ID())

	repo := new(MockJourneyRepository)
	repo.On("Get", ctx, j.ID()).Return(j, nil).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("JourneyRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockJourneyUoWFactory)
	factory.On("Create").Return(uow).Once()
	notifier := new(MockJourneyNotifier)

	h := commands.NewCompleteJourneyCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, journey.ErrAlreadyCompleted)
	assert.Equal(t, completedAt, j.CompletedAt())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
	notifier.AssertNotCalled(t, "JourneyChanged", mock.Anything, mock.Anything)
}

func TestCompleteJourneyCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewCompleteJourneyCommandHandler(new(MockJourneyUoWFactory), new(MockJourneyNotifier))

	err := h.Handle(t.Context(), commands.CompleteJourneyCommand{})

	require.ErrorIs(t, err, commands.ErrCompleteJourneyCommandIsNotConstructed)
}
