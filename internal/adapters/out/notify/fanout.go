// Package notify delivers journey changes to in-process observers: the structured
// journey log and live subscribers such as the server-sent event stream.
package notify

import (
	"context"

	"foodjourney/internal/core/domain/model/journey"
	"foodjourney/internal/core/ports"
)

// Fanout forwards every change to each notifier in order.
type Fanout []ports.JourneyNotifier

func (f Fanout) JourneyChanged(ctx context.Context, j *journey.Journey) {
	for _, n := range f {
		if n != nil {
			n.JourneyChanged(ctx, j)
		}
	}
}
