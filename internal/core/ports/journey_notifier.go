package ports

import (
	"context"

	"foodjourney/internal/core/domain/model/journey"
)

// JourneyNotifier is told about every journey state change: once on creation and once on completion.
// Implementations must not block the caller for long and must not mutate the journey.
type JourneyNotifier interface {
	JourneyChanged(ctx context.Context, j *journey.Journey)
}
