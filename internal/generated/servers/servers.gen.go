// Package servers provides primitives to interact with the openapi HTTP API.
//
// The file follows the layout oapi-codegen v2 produces for echo servers but is
// maintained by hand together with api/openapi.json. servers_test.go checks that
// every operation of the document is routed.
package servers

import (
	"fmt"
	"net/http"
	"time"

	"foodjourney/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for JourneyStatus.
const (
	Completed  JourneyStatus = "Completed"
	InProgress JourneyStatus = "InProgress"
)

// Defines values for Role.
const (
	DeliveryLocation Role = "DeliveryLocation"
	FoodDonor        Role = "FoodDonor"
	Host             Role = "Host"
	Institution      Role = "Institution"
	Ngo              Role = "Ngo"
	Picker           Role = "Picker"
	Volunteer        Role = "Volunteer"
)

// Defines values for VenueSource.
const (
	CurrentPosition VenueSource = "CurrentPosition"
	Query           VenueSource = "Query"
)

// Entity defines model for Entity.
type Entity struct {
	FoodId   *openapi_types.UUID `json:"foodId,omitempty"`
	Id       openapi_types.UUID  `json:"id"`
	Location Location            `json:"location"`
	Name     string              `json:"name"`
	Role     Role                `json:"role"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Event defines model for Event.
type Event struct {
	Date        openapi_types.Date `json:"date"`
	Id          openapi_types.UUID `json:"id"`
	Kind        string             `json:"kind"`
	Venue       Entity             `json:"venue"`
	VenueSource VenueSource        `json:"venueSource"`
}

// Journey defines model for Journey.
type Journey struct {
	CompletedAt      *time.Time         `json:"completedAt,omitempty"`
	CreatedAt        time.Time          `json:"createdAt"`
	DeliveryLocation Entity             `json:"deliveryLocation"`
	Donor            Entity             `json:"donor"`
	FoodId           openapi_types.UUID `json:"foodId"`
	Id               openapi_types.UUID `json:"id"`
	Picker           Entity             `json:"picker"`
	Route            []Location         `json:"route"`
	Status           JourneyStatus      `json:"status"`
}

// JourneyLog defines model for JourneyLog.
type JourneyLog struct {
	Completed  int       `json:"completed"`
	InProgress int       `json:"inProgress"`
	Journeys   []Journey `json:"journeys"`
}

// JourneyStatus defines model for JourneyStatus.
type JourneyStatus string

// Location defines model for Location.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewEntity defines model for NewEntity.
type NewEntity struct {
	Location *Location `json:"location,omitempty"`
	Name     string    `json:"name"`
	Role     Role      `json:"role"`
}

// NewEvent defines model for NewEvent.
type NewEvent struct {
	Date          openapi_types.Date `json:"date"`
	Kind          string             `json:"kind"`
	LocationQuery *string            `json:"locationQuery,omitempty"`
	Position      *Location          `json:"position,omitempty"`
}

// Region defines model for Region.
type Region struct {
	Center        Location `json:"center"`
	Name          string   `json:"name"`
	SpawnRadiusKm float64  `json:"spawnRadiusKm"`
	Zoom          int      `json:"zoom"`
}

// Role defines model for Role.
type Role string

// VenueSource defines model for VenueSource.
type VenueSource string

// BadRequest defines model for BadRequest.
type BadRequest = Error

// InternalError defines model for InternalError.
type InternalError = Error

// NotFound defines model for NotFound.
type NotFound = Error

// GetEntitiesParams defines parameters for GetEntities.
type GetEntitiesParams struct {
	// Roles Only entities having one of these roles. All entities when omitted.
	Roles *[]Role `form:"roles,omitempty" json:"roles,omitempty"`
}

// ResolveLocationParams defines parameters for ResolveLocation.
type ResolveLocationParams struct {
	Q string `form:"q" json:"q"`
}

// RegisterEntityJSONRequestBody defines body for RegisterEntity for application/json ContentType.
type RegisterEntityJSONRequestBody = NewEntity

// ScheduleEventJSONRequestBody defines body for ScheduleEvent for application/json ContentType.
type ScheduleEventJSONRequestBody = NewEvent

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List registered entities in registration order
	// (GET /api/v1/entities)
	GetEntities(ctx echo.Context, params GetEntitiesParams) error
	// Register an entity; the location is sampled around the region center when omitted
	// (POST /api/v1/entities)
	RegisterEntity(ctx echo.Context) error
	// Get one entity
	// (GET /api/v1/entities/{entityId})
	GetEntity(ctx echo.Context, entityId openapi_types.UUID) error
	// Scheduled community events
	// (GET /api/v1/events)
	GetEvents(ctx echo.Context) error
	// Schedule a community event at a venue found by text or by the caller's position
	// (POST /api/v1/events)
	ScheduleEvent(ctx echo.Context) error
	// Journey log in creation order
	// (GET /api/v1/journeys)
	GetJourneys(ctx echo.Context) error
	// Simulate a food journey from a random donor through a random picker to a random delivery location
	// (POST /api/v1/journeys)
	SimulateJourney(ctx echo.Context) error
	// Server-sent events, one per journey change
	// (GET /api/v1/journeys/stream)
	StreamJourneys(ctx echo.Context) error
	// Resolve free text to a registered entity
	// (GET /api/v1/locations/resolve)
	ResolveLocation(ctx echo.Context, params ResolveLocationParams) error
	// Region the map is centered on
	// (GET /api/v1/region)
	GetRegion(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetEntities converts echo context to params.
func (w *ServerInterfaceWrapper) GetEntities(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params GetEntitiesParams
	// ------------- Optional query parameter "roles" -------------

	err = runtime.BindQueryParameter("form", false, false, "roles", ctx.QueryParams(), &params.Roles)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter roles: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetEntities(ctx, params)
	return err
}

// RegisterEntity converts echo context to params.
func (w *ServerInterfaceWrapper) RegisterEntity(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RegisterEntity(ctx)
	return err
}

// GetEntity converts echo context to params.
func (w *ServerInterfaceWrapper) GetEntity(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "entityId" -------------
	var entityId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "entityId", ctx.Param("entityId"), &entityId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter entityId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetEntity(ctx, entityId)
	return err
}

// GetEvents converts echo context to params.
func (w *ServerInterfaceWrapper) GetEvents(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetEvents(ctx)
	return err
}

// ScheduleEvent converts echo context to params.
func (w *ServerInterfaceWrapper) ScheduleEvent(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ScheduleEvent(ctx)
	return err
}

// GetJourneys converts echo context to params.
func (w *ServerInterfaceWrapper) GetJourneys(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetJourneys(ctx)
	return err
}

// SimulateJourney converts echo context to params.
func (w *ServerInterfaceWrapper) SimulateJourney(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SimulateJourney(ctx)
	return err
}

// StreamJourneys converts echo context to params.
func (w *ServerInterfaceWrapper) StreamJourneys(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.StreamJourneys(ctx)
	return err
}

// ResolveLocation converts echo context to params.
func (w *ServerInterfaceWrapper) ResolveLocation(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ResolveLocationParams
	// ------------- Required query parameter "q" -------------

	err = runtime.BindQueryParameter("form", true, true, "q", ctx.QueryParams(), &params.Q)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter q: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ResolveLocation(ctx, params)
	return err
}

// GetRegion converts echo context to params.
func (w *ServerInterfaceWrapper) GetRegion(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetRegion(ctx)
	return err
}

// This is a simple interface which specifies echo.Route addition functions which
// are present on both echo.Echo and echo.Group, since we want to allow using
// either of them for path registration
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// Registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {

	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/entities", wrapper.GetEntities)
	router.POST(baseURL+"/api/v1/entities", wrapper.RegisterEntity)
	router.GET(baseURL+"/api/v1/entities/:entityId", wrapper.GetEntity)
	router.GET(baseURL+"/api/v1/events", wrapper.GetEvents)
	router.POST(baseURL+"/api/v1/events", wrapper.ScheduleEvent)
	router.GET(baseURL+"/api/v1/journeys", wrapper.GetJourneys)
	router.POST(baseURL+"/api/v1/journeys", wrapper.SimulateJourney)
	router.GET(baseURL+"/api/v1/journeys/stream", wrapper.StreamJourneys)
	router.GET(baseURL+"/api/v1/locations/resolve", wrapper.ResolveLocation)
	router.GET(baseURL+"/api/v1/region", wrapper.GetRegion)

}

// GetSwagger returns the Swagger specification the handlers in this file implement.
func GetSwagger() (swagger *openapi3.T, err error) {
	loader := openapi3.NewLoader()
	swagger, err = loader.LoadFromData(api.Spec)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}
	return swagger, nil
}
