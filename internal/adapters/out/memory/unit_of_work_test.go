package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"foodjourney/internal/adapters/out/memory"
	"foodjourney/internal/core/domain/model/entity"
	"foodjourney/internal/core/domain/model/event"
	"foodjourney/internal/core/domain/model/journey"
	"foodjourney/internal/core/domain/model/kernel"
	"foodjourney/internal/core/ports"
	"foodjourney/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// UnitOfWorkTestSuite exercises the in-memory store through its unit of work.
type UnitOfWorkTestSuite struct {
	suite.Suite
	store   *memory.Store
	factory ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkTestSuite) SetupTest() {
	suite.store = memory.NewStore()
	suite.factory = memory.NewUnitOfWorkFactory(suite.store)
}

func (suite *UnitOfWorkTestSuite) newEntity(role entity.Role, name string, lat, lon float64) *entity.Entity {
	e, err := entity.NewEntity(kernel.NewUUID(), role, name, kernel.MustNewLocation(lat, lon))
	suite.Require().NoError(err)
	return e
}

func (suite *UnitOfWorkTestSuite) register(entities ...*entity.Entity) {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	for _, e := range entities {
		suite.Require().NoError(uow.EntityRepository().Add(ctx, e))
	}
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *UnitOfWorkTestSuite) newJourney() *journey.Journey {
	donor := suite.newEntity(entity.FoodDonor, "Community Kitchen", 23.03, 72.58)
	picker := suite.newEntity(entity.Picker, "Vivek Picker", 23.01, 72.56)
	delivery := suite.newEntity(entity.DeliveryLocation, "Vasna Slum", 23.00, 72.55)
	suite.register(donor, picker, delivery)

	j, err := journey.NewJourney(kernel.NewUUID(), donor, picker, delivery, time.Now())
	suite.Require().NoError(err)
	return j
}

func (suite *UnitOfWorkTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "second Begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().ErrorIs(uow.Commit(ctx), memory.ErrNoActiveTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), memory.ErrNoActiveTransaction)
}

func (suite *UnitOfWorkTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	_, err := uow.EntityRepository().GetAll(ctx)
	suite.Require().ErrorIs(err, memory.ErrNoActiveTransaction)
	err = uow.JourneyRepository().Add(ctx, suite.newJourney())
	suite.Require().ErrorIs(err, memory.ErrNoActiveTransaction)
	_, err = uow.EventRepository().GetAll(ctx)
	suite.Require().ErrorIs(err, memory.ErrNoActiveTransaction)
}

func (suite *UnitOfWorkTestSuite) TestUnitOfWork_BeginWithCanceledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	suite.Require().ErrorIs(suite.factory.Create().Begin(ctx), context.Canceled)

	// the lock was not taken
	suite.register(suite.newEntity(entity.Host, "Sankalp Bhavan", 23.0, 72.5))
}

func (suite *UnitOfWorkTestSuite) TestEntityRepository_RegistrationOrderAndRoles() {
	ctx := context.Background()
	donor := suite.newEntity(entity.FoodDonor, "Anand Hotel", 23.03, 72.58)
	ngo := suite.newEntity(entity.Ngo, "Seva Food Bank", 23.02, 72.57)
	institution := suite.newEntity(entity.Institution, "Civil Hospital", 23.05, 72.60)
	delivery := suite.newEntity(entity.DeliveryLocation, "Gota Shelter", 23.10, 72.54)
	suite.register(donor, ngo, institution, delivery)

	all, err := suite.store.Entities(ctx)
	suite.Require().NoError(err)
	suite.Equal([]*entity.Entity{donor, ngo, institution, delivery}, all)

	deliveries, err := suite.store.Entities(ctx, entity.DeliveryLocation, entity.Institution)
	suite.Require().NoError(err)
	suite.Equal([]*entity.Entity{institution, delivery}, deliveries)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	none, err := uow.EntityRepository().GetAllOfRoles(ctx)
	suite.Require().NoError(err)
	suite.Empty(none)

	got, err := uow.EntityRepository().Get(ctx, ngo.ID())
	suite.Require().NoError(err)
	suite.Same(ngo, got)
}

func (suite *UnitOfWorkTestSuite) TestEntityRepository_RejectsDuplicateID() {
	ctx := context.Background()
	e := suite.newEntity(entity.Volunteer, "Priya Patel", 23.03, 72.58)
	suite.register(e)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	suite.Require().ErrorIs(uow.EntityRepository().Add(ctx, e), memory.ErrEntityAlreadyExists)

	staged := suite.newEntity(entity.Volunteer, "Neha Nair", 23.03, 72.58)
	suite.Require().NoError(uow.EntityRepository().Add(ctx, staged))
	suite.Require().ErrorIs(uow.EntityRepository().Add(ctx, staged), memory.ErrEntityAlreadyExists)
}

func (suite *UnitOfWorkTestSuite) TestEntityRepository_GetMissing() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	_, err := uow.EntityRepository().Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.store.Entity(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkTestSuite) TestUnitOfWork_RollbackDiscardsChanges() {
	ctx := context.Background()
	j := suite.newJourney()
	before, err := suite.store.Entities(ctx)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.EntityRepository().Add(ctx, suite.newEntity(entity.Host, "Amul School Host", 23, 72)))
	suite.Require().NoError(uow.JourneyRepository().Add(ctx, j))
	staged, err := uow.EntityRepository().GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(staged, len(before)+1, "staged changes are visible inside the transaction")
	suite.Require().NoError(uow.Rollback(ctx))

	after, err := suite.store.Entities(ctx)
	suite.Require().NoError(err)
	suite.Equal(before, after)
	journeys, err := suite.store.Journeys(ctx)
	suite.Require().NoError(err)
	suite.Empty(journeys)
}

func (suite *UnitOfWorkTestSuite) TestJourneyRepository_LogIsAppendOnly() {
	ctx := context.Background()
	first, second := suite.newJourney(), suite.newJourney()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.JourneyRepository().Add(ctx, first))
	suite.Require().NoError(uow.JourneyRepository().Add(ctx, second))
	suite.Require().ErrorIs(uow.JourneyRepository().Add(ctx, first), memory.ErrJourneyAlreadyExists)
	suite.Require().NoError(uow.Commit(ctx))

	// complete the first journey in a later transaction
	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	stored, err := uow.JourneyRepository().Get(ctx, first.ID())
	suite.Require().NoError(err)
	suite.Same(first, stored, "the log hands out the journey it holds")
	suite.Require().NoError(stored.Complete(time.Now()))
	suite.Require().NoError(uow.JourneyRepository().Update(ctx, stored))
	suite.Require().NoError(uow.Commit(ctx))

	journeys, err := suite.store.Journeys(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(journeys, 2)
	suite.True(journeys[0].IsEqual(first))
	suite.Equal(journey.Completed, journeys[0].Status())
	suite.True(journeys[1].IsEqual(second))
	suite.Equal(journey.InProgress, journeys[1].Status())

	// the journey the caller added observes the completion
	suite.Same(first, journeys[0])
	suite.Equal(journey.Completed, first.Status())
	suite.NotNil(first.CompletedAt())
	suite.Same(first.Donor(), journeys[0].Donor(), "participants stay registry references")
}

func (suite *UnitOfWorkTestSuite) TestJourneyRepository_UpdateStagedAndMissing() {
	ctx := context.Background()
	j := suite.newJourney()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().ErrorIs(uow.JourneyRepository().Update(ctx, j), errs.ErrObjectNotFound)

	suite.Require().NoError(uow.JourneyRepository().Add(ctx, j))
	suite.Require().NoError(j.Complete(time.Now()))
	suite.Require().NoError(uow.JourneyRepository().Update(ctx, j))
	all, err := uow.JourneyRepository().GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 1)
	suite.Equal(journey.Completed, all[0].Status())
	suite.Require().NoError(uow.Commit(ctx))

	_, err = suite.factory.Create().JourneyRepository().Get(ctx, j.ID())
	suite.Require().ErrorIs(err, memory.ErrNoActiveTransaction)
}

func (suite *UnitOfWorkTestSuite) TestEventRepository_AddAndList() {
	ctx := context.Background()
	venue := suite.newEntity(entity.Host, "Sarvodaya Community Center", 23.03, 72.58)
	suite.register(venue)
	e, err := event.NewEvent(kernel.NewUUID(), "Surplus Sunday", time.Now(), venue, event.FromQuery)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.EventRepository().Add(ctx, e))
	staged, err := uow.EventRepository().GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(staged, 1)
	suite.Require().NoError(uow.Commit(ctx))

	events, err := suite.store.Events(ctx)
	suite.Require().NoError(err)
	suite.Equal([]*event.Event{e}, events)
}

func (suite *UnitOfWorkTestSuite) TestUnitOfWork_ConcurrentWriters() {
	ctx := context.Background()
	const writers = 50

	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			uow := suite.factory.Create()
			if err := uow.Begin(ctx); err != nil {
				return
			}
			defer func() { _ = uow.Rollback(ctx) }()
			e, err := entity.NewEntity(kernel.NewUUID(), entity.Volunteer, "Volunteer", kernel.MustNewLocation(23, 72+float64(i)/100))
			if err != nil {
				return
			}
			if err = uow.EntityRepository().Add(ctx, e); err != nil {
				return
			}
			_ = uow.Commit(ctx)
		}()
	}
	wg.Wait()

	all, err := suite.store.Entities(ctx)
	suite.Require().NoError(err)
	suite.Len(all, writers)
}

func TestUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}
