package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "foodjourney/internal/adapters/in/http"
	"foodjourney/internal/adapters/out/geolocation"
	"foodjourney/internal/adapters/out/kafka"
	"foodjourney/internal/adapters/out/memory"
	"foodjourney/internal/adapters/out/notify"
	"foodjourney/internal/core/application/usecases/commands"
	"foodjourney/internal/core/application/usecases/queries"
	"foodjourney/internal/core/domain/model/kernel"
	"foodjourney/internal/core/domain/services"
	"foodjourney/internal/core/ports"
	"foodjourney/internal/jobs"

	"github.com/labstack/echo/v4"
)

// CompositionRoot owns the in-memory store and every long-lived component built on it.
// One root is one independent session: two roots never share entities or journeys.
type CompositionRoot struct {
	configs Config
	region  Region
	logger  *slog.Logger

	store      *memory.Store
	uowFactory *memory.UnitOfWorkFactory
	sampler    *kernel.Sampler
	matcher    services.JourneyMatcher
	resolver   services.LocationResolver

	journeyLog  *notify.LogNotifier
	broadcaster *notify.Broadcaster
	publisher   *kafka.JourneyPublisher
	notifier    ports.JourneyNotifier

	completionJob *jobs.JourneyCompletionJob
	jobManager    *jobs.JobManager
}

func NewCompositionRoot(configs Config, region Region, logger *slog.Logger) (*CompositionRoot, error) {
	resolver, err := services.NewLocationResolver(region.Center)
	if err != nil {
		return nil, fmt.Errorf("region center: %w", err)
	}

	store := memory.NewStore()
	c := &CompositionRoot{
		configs:    configs,
		region:     region,
		logger:     logger,
		store:      store,
		uowFactory: memory.NewUnitOfWorkFactory(store),
		sampler:    kernel.NewSampler(nil),
		matcher:    services.NewJourneyMatcher(nil),
		resolver:   resolver,
	}

	c.journeyLog = notify.NewLogNotifier(logger)
	c.broadcaster = notify.NewBroadcaster(logger, 0)
	fanout := notify.Fanout{c.journeyLog, c.broadcaster}
	if configs.KafkaEnabled() {
		writer := kafka.NewWriter(kafka.Params{
			Brokers: configs.KafkaBrokers,
			Topic:   configs.KafkaJourneyChangedTopic,
		})
		c.publisher = kafka.NewJourneyPublisher(writer, logger, 0)
		fanout = append(fanout, c.publisher)
	}
	c.notifier = fanout

	c.completionJob = jobs.NewJourneyCompletionJob(c.CreateCompleteJourneyCommandHandler(), logger)
	statsJob := jobs.NewJourneyStatsJob(c.CreateGetJourneysQueryHandler(), configs.StatsSpec, logger)
	c.jobManager = jobs.NewJobManager(c.completionJob, statsJob)

	return c, nil
}

// Start populates the registry from the region seeds, then starts the publisher and the jobs.
func (c *CompositionRoot) Start(ctx context.Context) error {
	cmd, err := c.region.PopulateCommand()
	if err != nil {
		return fmt.Errorf("region seeds: %w", err)
	}
	ids, err := c.CreatePopulateRegionCommandHandler().Handle(ctx, cmd)
	if err != nil {
		return fmt.Errorf("populate region: %w", err)
	}
	c.logger.InfoContext(ctx, "Region populated", "region", c.region.Name, "entities", len(ids))

	if c.publisher != nil {
		c.publisher.Start(ctx)
	}
	return c.jobManager.StartAll()
}

// Stop ends the jobs first so no completion fires after the notifiers are closed.
func (c *CompositionRoot) Stop() error {
	c.jobManager.StopAll()
	c.broadcaster.Close()
	if c.publisher != nil {
		if err := c.publisher.Stop(); err != nil {
			return fmt.Errorf("stop journey publisher: %w", err)
		}
	}
	return nil
}

func (c *CompositionRoot) Store() *memory.Store {
	return c.store
}

func (c *CompositionRoot) Notifier() ports.JourneyNotifier {
	return c.notifier
}

func (c *CompositionRoot) CreateRegisterEntityCommandHandler() commands.RegisterEntityCommandHandler {
	var f commands.EntityUoWFactory = FuncEntityUoWFactory(func() commands.EntityUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterEntityCommandHandler(f)
}

func (c *CompositionRoot) CreatePopulateRegionCommandHandler() commands.PopulateRegionCommandHandler {
	var f commands.EntityUoWFactory = FuncEntityUoWFactory(func() commands.EntityUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPopulateRegionCommandHandler(f, c.sampler)
}

func (c *CompositionRoot) CreateSimulateJourneyCommandHandler() commands.SimulateJourneyCommandHandler {
	var f commands.JourneyUoWFactory = FuncJourneyUoWFactory(func() commands.JourneyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSimulateJourneyCommandHandler(f, c.matcher, c.notifier, c.completionJob, c.configs.CompletionDelay)
}

func (c *CompositionRoot) CreateCompleteJourneyCommandHandler() commands.CompleteJourneyCommandHandler {
	var f commands.JourneyUoWFactory = FuncJourneyUoWFactory(func() commands.JourneyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteJourneyCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateScheduleEventCommandHandler() commands.ScheduleEventCommandHandler {
	var f commands.EventUoWFactory = FuncEventUoWFactory(func() commands.EventUoW {
		return c.uowFactory.Create()
	})
	return commands.NewScheduleEventCommandHandler(f, c.resolver, geolocation.NewContextGeolocator())
}

func (c *CompositionRoot) CreateGetEntityQueryHandler() queries.GetEntityQueryHandler {
	return queries.NewGetEntityQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetEntitiesQueryHandler() queries.GetEntitiesQueryHandler {
	return queries.NewGetEntitiesQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetJourneysQueryHandler() queries.GetJourneysQueryHandler {
	return queries.NewGetJourneysQueryHandler(c.store)
}

func (c *CompositionRoot) CreateResolveLocationQueryHandler() queries.ResolveLocationQueryHandler {
	return queries.NewResolveLocationQueryHandler(c.store, c.resolver)
}

func (c *CompositionRoot) CreateGetEventsQueryHandler() queries.GetEventsQueryHandler {
	return queries.NewGetEventsQueryHandler(c.store)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateRegisterEntityCommandHandler(),
		c.CreateSimulateJourneyCommandHandler(),
		c.CreateScheduleEventCommandHandler(),
		c.CreateGetEntityQueryHandler(),
		c.CreateGetEntitiesQueryHandler(),
		c.CreateGetJourneysQueryHandler(),
		c.CreateResolveLocationQueryHandler(),
		c.CreateGetEventsQueryHandler(),
		httpin.Region{
			Name:          c.region.Name,
			Center:        c.region.Center,
			SpawnRadiusKm: c.region.SpawnRadiusKm,
			Zoom:          c.region.Zoom,
		},
		c.sampler,
		c.broadcaster,
		c.logger,
	)
}

// CreateRouter builds the HTTP router. Shutting its server down ends open journey streams.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	e, err := httpin.NewRouter(c.CreateServer(), c.logger)
	if err != nil {
		return nil, err
	}
	e.Server.RegisterOnShutdown(c.broadcaster.Close)
	return e, nil
}

type FuncEntityUoWFactory func() commands.EntityUoW

func (f FuncEntityUoWFactory) Create() commands.EntityUoW {
	return f()
}

type FuncJourneyUoWFactory func() commands.JourneyUoW

func (f FuncJourneyUoWFactory) Create() commands.JourneyUoW {
	return f()
}

type FuncEventUoWFactory func() commands.EventUoW

func (f FuncEventUoWFactory) Create() commands.EventUoW {
	return f()
}
