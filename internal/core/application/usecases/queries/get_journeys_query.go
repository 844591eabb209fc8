package queries

import (
	"errors"
	"time"

	"foodjourney/internal/core/domain/model/journey"
	"foodjourney/internal/core/domain/model/kernel"
	"foodjourney/internal/pkg/guard"
)

var (
	ErrGetJourneysQueryIsNotConstructed = errors.New(
		"GetJourneysQuery must be created via NewGetJourneysQuery constructor",
	)
)

// GetJourneysQuery reads the whole journey log.
type GetJourneysQuery struct {
	guard guard.ConstructorGuard
}

func NewGetJourneysQuery() GetJourneysQuery {
	return GetJourneysQuery{guard: guard.NewConstructorGuard()}
}

func (q GetJourneysQuery) Validate() error {
	return q.guard.Validate(ErrGetJourneysQueryIsNotConstructed)
}

// JourneyResponse is the read model of one journey.
type JourneyResponse struct {
	ID               kernel.UUID
	FoodID           kernel.UUID
	Donor            EntityResponse
	Picker           EntityResponse
	DeliveryLocation EntityResponse
	Status           journey.Status
	Route            []kernel.Location
	CreatedAt        time.Time
	CompletedAt      *time.Time
}

// NewJourneyResponse builds the read model of j. Notifiers use it as well as queries.
func NewJourneyResponse(j *journey.Journey) JourneyResponse {
	status, completedAt := j.State()
	return JourneyResponse{
		ID:               j.ID(),
		FoodID:           j.FoodID(),
		Donor:            newEntityResponse(j.Donor()),
		Picker:           newEntityResponse(j.Picker()),
		DeliveryLocation: newEntityResponse(j.DeliveryLocation()),
		Status:           status,
		Route:            j.Route(),
		CreatedAt:        j.CreatedAt(),
		CompletedAt:      completedAt,
	}
}

// GetJourneysQueryResponse is the log in creation order plus status counts.
type GetJourneysQueryResponse struct {
	Journeys   []JourneyResponse
	InProgress int
	Completed  int
}
