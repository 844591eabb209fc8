package queries

import (
	"context"

	"foodjourney/internal/core/domain/services"
)

// ResolveLocationQueryHandler runs the location resolver over the registry.
// services.ErrEntityNotFound is returned when nothing is registered.
type ResolveLocationQueryHandler struct {
	reader   EntityReader
	resolver services.LocationResolver
}

func NewResolveLocationQueryHandler(reader EntityReader, resolver services.LocationResolver) ResolveLocationQueryHandler {
	return ResolveLocationQueryHandler{
		reader:   reader,
		resolver: resolver,
	}
}

func (h ResolveLocationQueryHandler) Handle(ctx context.Context, query ResolveLocationQuery) (EntityResponse, error) {
	if err := query.Validate(); err != nil {
		return EntityResponse{}, err
	}

	entities, err := h.reader.Entities(ctx)
	if err != nil {
		return EntityResponse{}, err
	}

	e, err := h.resolver.Resolve(query.Text(), entities)
	if err != nil {
		return EntityResponse{}, err
	}

	return newEntityResponse(e), nil
}
