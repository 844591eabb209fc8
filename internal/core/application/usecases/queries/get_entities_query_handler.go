package queries

import (
	"context"
)

// GetEntitiesQueryHandler lists entities in registration order.
type GetEntitiesQueryHandler struct {
	reader EntityReader
}

func NewGetEntitiesQueryHandler(reader EntityReader) GetEntitiesQueryHandler {
	return GetEntitiesQueryHandler{reader: reader}
}

func (h GetEntitiesQueryHandler) Handle(ctx context.Context, query GetEntitiesQuery) ([]EntityResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entities, err := h.reader.Entities(ctx, query.Roles()...)
	if err != nil {
		return nil, err
	}

	result := make([]EntityResponse, 0, len(entities))
	for _, e := range entities {
		result = append(result, newEntityResponse(e))
	}
	return result, nil
}
