package commands_test

import (
	"errors"
	"testing"

	"foodjourney/internal/core/application/usecases/commands"
	"foodjourney/internal/core/domain/model/entity"
	"foodjourney/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRegisterCommand(t *testing.T, role entity.Role) commands.RegisterEntityCommand {
	t.Helper()
	cmd, err := commands.NewRegisterEntityCommand(role, "Anand Hotel", kernel.MustNewLocation(23.02, 72.57))
	require.NoError(t, err)
	return cmd
}

func TestRegisterEntityCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newRegisterCommand(t, entity.FoodDonor)

	var added *entity.Entity
	repo := new(MockEntityRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EntityRepository").Return(repo).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	repo.On("Add", ctx, mock.AnythingOfType("*entity.Entity")).
		Run(func(args mock.Arguments) { added = args.Get(1).(*entity.Entity) }).
		Return(nil).Once()

	factory := new(MockEntityUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterEntityCommandHandler(factory)
	id, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, added)
	assert.Equal(t, added.ID(), id)
	assert.Equal(t, "Anand Hotel", added.Name())
	assert.NotNil(t, added.FoodID(), "donors get a food identifier at registration")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterEntityCommandHandler_Handle_ReturnsDistinctIDs(t *testing.T) {
	ctx := t.Context()
	cmd := newRegisterCommand(t, entity.Volunteer)

	repo := new(MockEntityRepository)
	repo.On("Add", ctx, mock.Anything).Return(nil)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("EntityRepository").Return(repo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	factory := new(MockEntityUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewRegisterEntityCommandHandler(factory)
	first, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	second, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.False(t, first.IsEqual(second))
}

func TestRegisterEntityCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockEntityUoWFactory)
	h := commands.NewRegisterEntityCommandHandler(factory)

	_, err := h.Handle(t.Context(), commands.RegisterEntityCommand{})

	require.ErrorIs(t, err, commands.ErrRegisterEntityCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestRegisterEntityCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := newRegisterCommand(t, entity.Host)

	uow := new(MockUoW)
	factory := new(MockEntityUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewRegisterEntityCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestRegisterEntityCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := newRegisterCommand(t, entity.Picker)

	repo := new(MockEntityRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EntityRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*entity.Entity")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockEntityUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterEntityCommandHandler(factory)
	id, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

func TestRegisterEntityCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := newRegisterCommand(t, entity.Institution)

	repo := new(MockEntityRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EntityRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*entity.Entity")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockEntityUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterEntityCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
}
