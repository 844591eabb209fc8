package queries

import (
	"context"
)

type GetEventsQueryHandler struct {
	reader EventReader
}

func NewGetEventsQueryHandler(reader EventReader) GetEventsQueryHandler {
	return GetEventsQueryHandler{reader: reader}
}

// Handle returns events in scheduling order.
func (h GetEventsQueryHandler) Handle(ctx context.Context, query GetEventsQuery) ([]EventResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	events, err := h.reader.Events(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]EventResponse, 0, len(events))
	for _, e := range events {
		result = append(result, NewEventResponse(e))
	}
	return result, nil
}
