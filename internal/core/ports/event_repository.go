package ports

import (
	"context"

	"foodjourney/internal/core/domain/model/event"
)

// EventRepository stores scheduled community events.
type EventRepository interface {
	Add(ctx context.Context, e *event.Event) error
	GetAll(ctx context.Context) ([]*event.Event, error)
}
