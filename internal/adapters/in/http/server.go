package http

import (
	"log/slog"
	"net/http"

	"foodjourney/internal/adapters/out/geolocation"
	"foodjourney/internal/core/application/usecases/commands"
	"foodjourney/internal/core/application/usecases/queries"
	"foodjourney/internal/core/domain/model/entity"
	"foodjourney/internal/core/domain/model/kernel"
	"foodjourney/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/labstack/echo/v4"
)

// Region is the area the map is centered on. Entities registered without a
// location are placed within SpawnRadiusKm of Center.
type Region struct {
	Name          string
	Center        kernel.Location
	SpawnRadiusKm float64
	Zoom          int
}

// JourneyStream delivers journey changes to a subscriber until cancel is called.
type JourneyStream interface {
	Subscribe() (changes <-chan queries.JourneyResponse, cancel func())
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerEntityHandler  commands.RegisterEntityCommandHandler
	simulateJourneyHandler commands.SimulateJourneyCommandHandler
	scheduleEventHandler   commands.ScheduleEventCommandHandler

	// Query handlers
	getEntityHandler       queries.GetEntityQueryHandler
	getEntitiesHandler     queries.GetEntitiesQueryHandler
	getJourneysHandler     queries.GetJourneysQueryHandler
	resolveLocationHandler queries.ResolveLocationQueryHandler
	getEventsHandler       queries.GetEventsQueryHandler

	region   Region
	sampler  *kernel.Sampler
	journeys JourneyStream
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerEntityHandler commands.RegisterEntityCommandHandler,
	simulateJourneyHandler commands.SimulateJourneyCommandHandler,
	scheduleEventHandler commands.ScheduleEventCommandHandler,
	getEntityHandler queries.GetEntityQueryHandler,
	getEntitiesHandler queries.GetEntitiesQueryHandler,
	getJourneysHandler queries.GetJourneysQueryHandler,
	resolveLocationHandler queries.ResolveLocationQueryHandler,
	getEventsHandler queries.GetEventsQueryHandler,
	region Region,
	sampler *kernel.Sampler,
	journeys JourneyStream,
	logger *slog.Logger,
) *Server {
	if sampler == nil {
		sampler = kernel.NewSampler(nil)
	}
	return &Server{
		registerEntityHandler:  registerEntityHandler,
		simulateJourneyHandler: simulateJourneyHandler,
		scheduleEventHandler:   scheduleEventHandler,
		getEntityHandler:       getEntityHandler,
		getEntitiesHandler:     getEntitiesHandler,
		getJourneysHandler:     getJourneysHandler,
		resolveLocationHandler: resolveLocationHandler,
		getEventsHandler:       getEventsHandler,
		region:                 region,
		sampler:                sampler,
		journeys:               journeys,
		logger:                 logger.With("component", "HTTPServer"),
	}
}

// GetRegion handles GET /api/v1/region.
func (s *Server) GetRegion(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, servers.Region{
		Name:          s.region.Name,
		Center:        toLocation(s.region.Center),
		SpawnRadiusKm: s.region.SpawnRadiusKm,
		Zoom:          s.region.Zoom,
	})
}

// GetEntities handles GET /api/v1/entities - lists entities, optionally filtered by role.
func (s *Server) GetEntities(ctx echo.Context, params servers.GetEntitiesParams) error {
	var roles []entity.Role
	if params.Roles != nil {
		for _, code := range *params.Roles {
			role, err := entity.ParseRole(string(code))
			if err != nil {
				return s.problem(ctx, err, "list entities")
			}
			roles = append(roles, role)
		}
	}

	query, err := queries.NewGetEntitiesQuery(roles...)
	if err != nil {
		return s.problem(ctx, err, "list entities")
	}

	entities, err := s.getEntitiesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.problem(ctx, err, "list entities")
	}

	response := make([]servers.Entity, len(entities))
	for i, e := range entities {
		response[i] = toEntity(e)
	}
	return ctx.JSON(http.StatusOK, response)
}

// RegisterEntity handles POST /api/v1/entities - registers an entity.
func (s *Server) RegisterEntity(ctx echo.Context) error {
	var newEntity servers.NewEntity
	if err := ctx.Bind(&newEntity); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	role, err := entity.ParseRole(string(newEntity.Role))
	if err != nil {
		return s.problem(ctx, err, "register entity")
	}

	var location kernel.Location
	if newEntity.Location != nil {
		location, err = kernel.NewLocation(newEntity.Location.Latitude, newEntity.Location.Longitude)
	} else {
		location, err = s.sampler.Sample(s.region.Center, s.region.SpawnRadiusKm)
	}
	if err != nil {
		return s.problem(ctx, err, "register entity")
	}

	cmd, err := commands.NewRegisterEntityCommand(role, newEntity.Name, location)
	if err != nil {
		return s.problem(ctx, err, "register entity")
	}

	id, err := s.registerEntityHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.problem(ctx, err, "register entity")
	}

	query, err := queries.NewGetEntityQuery(id)
	if err != nil {
		return s.problem(ctx, err, "register entity")
	}
	registered, err := s.getEntityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.problem(ctx, err, "register entity")
	}

	return ctx.JSON(http.StatusCreated, toEntity(registered))
}

// GetEntity handles GET /api/v1/entities/{entityId}.
func (s *Server) GetEntity(ctx echo.Context, entityId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(entityId[:])
	if err != nil {
		return s.problem(ctx, err, "get entity")
	}

	query, err := queries.NewGetEntityQuery(id)
	if err != nil {
		return s.problem(ctx, err, "get entity")
	}

	found, err := s.getEntityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.problem(ctx, err, "get entity")
	}

	return ctx.JSON(http.StatusOK, toEntity(found))
}

// SimulateJourney handles POST /api/v1/journeys - starts a food journey.
func (s *Server) SimulateJourney(ctx echo.Context) error {
	cmd, err := commands.NewSimulateJourneyCommand(kernel.NewUUID())
	if err != nil {
		return s.problem(ctx, err, "simulate journey")
	}

	j, err := s.simulateJourneyHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.problem(ctx, err, "simulate journey")
	}

	return ctx.JSON(http.StatusCreated, toJourney(queries.NewJourneyResponse(j)))
}

// GetJourneys handles GET /api/v1/journeys - returns the journey log.
func (s *Server) GetJourneys(ctx echo.Context) error {
	journeyLog, err := s.getJourneysHandler.Handle(ctx.Request().Context(), queries.NewGetJourneysQuery())
	if err != nil {
		return s.problem(ctx, err, "retrieve journeys")
	}

	response := servers.JourneyLog{
		Journeys:   make([]servers.Journey, len(journeyLog.Journeys)),
		InProgress: journeyLog.InProgress,
		Completed:  journeyLog.Completed,
	}
	for i, j := range journeyLog.Journeys {
		response.Journeys[i] = toJourney(j)
	}
	return ctx.JSON(http.StatusOK, response)
}

// ResolveLocation handles GET /api/v1/locations/resolve?q=.
func (s *Server) ResolveLocation(ctx echo.Context, params servers.ResolveLocationParams) error {
	query, err := queries.NewResolveLocationQuery(params.Q)
	if err != nil {
		return s.problem(ctx, err, "resolve location")
	}

	resolved, err := s.resolveLocationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.problem(ctx, err, "resolve location")
	}

	return ctx.JSON(http.StatusOK, toEntity(resolved))
}

// ScheduleEvent handles POST /api/v1/events. Without a location query the venue
// is the entity nearest to the position sent with the request.
func (s *Server) ScheduleEvent(ctx echo.Context) error {
	var newEvent servers.NewEvent
	if err := ctx.Bind(&newEvent); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	reqCtx := ctx.Request().Context()
	if newEvent.Position != nil {
		position, err := kernel.NewLocation(newEvent.Position.Latitude, newEvent.Position.Longitude)
		if err != nil {
			return s.problem(ctx, err, "schedule event")
		}
		reqCtx = geolocation.WithPosition(reqCtx, position)
	}

	var locationQuery string
	if newEvent.LocationQuery != nil {
		locationQuery = *newEvent.LocationQuery
	}

	cmd, err := commands.NewScheduleEventCommand(kernel.NewUUID(), newEvent.Kind, newEvent.Date.Time, locationQuery)
	if err != nil {
		return s.problem(ctx, err, "schedule event")
	}

	scheduled, err := s.scheduleEventHandler.Handle(reqCtx, cmd)
	if err != nil {
		return s.problem(ctx, err, "schedule event")
	}

	return ctx.JSON(http.StatusCreated, toEvent(queries.NewEventResponse(scheduled)))
}

// GetEvents handles GET /api/v1/events.
func (s *Server) GetEvents(ctx echo.Context) error {
	events, err := s.getEventsHandler.Handle(ctx.Request().Context(), queries.NewGetEventsQuery())
	if err != nil {
		return s.problem(ctx, err, "retrieve events")
	}

	response := make([]servers.Event, len(events))
	for i, e := range events {
		response[i] = toEvent(e)
	}
	return ctx.JSON(http.StatusOK, response)
}
