package queries

import (
	"context"

	"foodjourney/internal/core/domain/model/journey"
)

// GetJourneysQueryHandler returns every journey ever simulated, completed ones included.
type GetJourneysQueryHandler struct {
	reader JourneyReader
}

func NewGetJourneysQueryHandler(reader JourneyReader) GetJourneysQueryHandler {
	return GetJourneysQueryHandler{reader: reader}
}

func (h GetJourneysQueryHandler) Handle(ctx context.Context, query GetJourneysQuery) (GetJourneysQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetJourneysQueryResponse{}, err
	}

	journeys, err := h.reader.Journeys(ctx)
	if err != nil {
		return GetJourneysQueryResponse{}, err
	}

	resp := GetJourneysQueryResponse{Journeys: make([]JourneyResponse, 0, len(journeys))}
	for _, j := range journeys {
		jr := NewJourneyResponse(j)
		resp.Journeys = append(resp.Journeys, jr)
		switch jr.Status {
		case journey.InProgress:
			resp.InProgress++
		case journey.Completed:
			resp.Completed++
		case journey.Unknown:
		}
	}
	return resp, nil
}
