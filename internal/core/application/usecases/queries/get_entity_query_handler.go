package queries

import (
	"context"
)

// GetEntityQueryHandler returns one entity, or an errs.ObjectNotFoundError.
type GetEntityQueryHandler struct {
	reader EntityReader
}

func NewGetEntityQueryHandler(reader EntityReader) GetEntityQueryHandler {
	return GetEntityQueryHandler{reader: reader}
}

func (h GetEntityQueryHandler) Handle(ctx context.Context, query GetEntityQuery) (EntityResponse, error) {
	if err := query.Validate(); err != nil {
		return EntityResponse{}, err
	}

	e, err := h.reader.Entity(ctx, query.EntityID())
	if err != nil {
		return EntityResponse{}, err
	}

	return newEntityResponse(e), nil
}
