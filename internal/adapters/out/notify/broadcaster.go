package notify

import (
	"context"
	"log/slog"
	"sync"

	"foodjourney/internal/core/application/usecases/queries"
	"foodjourney/internal/core/domain/model/journey"
)

const defaultSubscriberBuffer = 64

// Broadcaster hands each journey change to every live subscriber.
// A subscriber that does not keep up loses changes instead of blocking the sender.
type Broadcaster struct {
	logger *slog.Logger
	buffer int

	mu          sync.Mutex
	subscribers map[int]chan queries.JourneyResponse
	nextID      int
	closed      bool
}

// NewBroadcaster creates a broadcaster whose subscribers buffer up to buffer changes.
func NewBroadcaster(logger *slog.Logger, buffer int) *Broadcaster {
	if buffer <= 0 {
		buffer = defaultSubscriberBuffer
	}
	return &Broadcaster{
		logger:      logger.With("component", "JourneyBroadcaster"),
		buffer:      buffer,
		subscribers: make(map[int]chan queries.JourneyResponse),
	}
}

// Subscribe returns a channel of changes and a function that ends the subscription
// and closes the channel. After Close the channel is returned already closed.
func (b *Broadcaster) Subscribe() (<-chan queries.JourneyResponse, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan queries.JourneyResponse, b.buffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subscribers[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subscribers[id]; ok {
				delete(b.subscribers, id)
				close(sub)
			}
		})
	}
}

func (b *Broadcaster) JourneyChanged(ctx context.Context, j *journey.Journey) {
	resp := queries.NewJourneyResponse(j)

	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subscribers {
		select {
		case ch <- resp:
		default:
			b.logger.WarnContext(ctx, "subscriber is full, dropping journey change",
				"subscriber", id, "journey_id", j.ID().String())
		}
	}
}

// Subscribers returns the number of live subscriptions.
func (b *Broadcaster) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subscribers)
}

// Close ends every subscription.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	for id, ch := range b.subscribers {
		delete(b.subscribers, id)
		close(ch)
	}
}
