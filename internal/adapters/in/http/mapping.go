package http

import (
	"foodjourney/internal/core/application/usecases/queries"
	"foodjourney/internal/core/domain/model/kernel"
	"foodjourney/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toLocation(l kernel.Location) servers.Location {
	return servers.Location{
		Latitude:  l.Latitude(),
		Longitude: l.Longitude(),
	}
}

func toEntity(e queries.EntityResponse) servers.Entity {
	response := servers.Entity{
		Id:       e.ID.Bytes(),
		Role:     servers.Role(e.Role.String()),
		Name:     e.Name,
		Location: toLocation(e.Location),
	}
	if e.FoodID != nil {
		foodID := e.FoodID.Bytes()
		response.FoodId = &foodID
	}
	return response
}

func toJourney(j queries.JourneyResponse) servers.Journey {
	route := make([]servers.Location, len(j.Route))
	for i, stop := range j.Route {
		route[i] = toLocation(stop)
	}
	return servers.Journey{
		Id:               j.ID.Bytes(),
		FoodId:           j.FoodID.Bytes(),
		Donor:            toEntity(j.Donor),
		Picker:           toEntity(j.Picker),
		DeliveryLocation: toEntity(j.DeliveryLocation),
		Status:           servers.JourneyStatus(j.Status.String()),
		Route:            route,
		CreatedAt:        j.CreatedAt,
		CompletedAt:      j.CompletedAt,
	}
}

func toEvent(e queries.EventResponse) servers.Event {
	return servers.Event{
		Id:          e.ID.Bytes(),
		Kind:        e.Kind,
		Date:        openapi_types.Date{Time: e.Date},
		Venue:       toEntity(e.Venue),
		VenueSource: servers.VenueSource(e.Source.String()),
	}
}
