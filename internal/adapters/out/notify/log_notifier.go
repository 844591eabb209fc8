package notify

import (
	"context"
	"log/slog"
	"sync"

	"foodjourney/internal/core/domain/model/journey"
)

// LogNotifier writes one structured line per journey change, with running
// counts of journeys in flight and delivered.
type LogNotifier struct {
	logger *slog.Logger

	mu        sync.Mutex
	inFlight  int
	completed int
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "JourneyLog")}
}

func (n *LogNotifier) JourneyChanged(ctx context.Context, j *journey.Journey) {
	status := j.Status()
	n.mu.Lock()
	switch status {
	case journey.InProgress:
		n.inFlight++
	case journey.Completed:
		n.inFlight--
		n.completed++
	case journey.Unknown:
	}
	inFlight, completed := n.inFlight, n.completed
	n.mu.Unlock()

	n.logger.InfoContext(ctx, "journey changed",
		"journey_id", j.ID().String(),
		"food_id", j.FoodID().String(),
		"status", status.String(),
		"donor", j.Donor().Name(),
		"picker", j.Picker().Name(),
		"delivery_location", j.DeliveryLocation().Name(),
		"in_flight", inFlight,
		"completed", completed,
	)
}

// Counts returns the journeys in flight and completed since start.
func (n *LogNotifier) Counts() (inFlight, completed int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.inFlight, n.completed
}
