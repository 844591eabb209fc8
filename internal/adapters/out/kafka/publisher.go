// Package kafka publishes journey changes to a Kafka topic for consumers outside the process.
package kafka

import (
	"context"
	"log/slog"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	sdk "github.com/segmentio/kafka-go"

	"foodjourney/internal/core/domain/model/entity"
	"foodjourney/internal/core/domain/model/journey"
)

const defaultBufferSize = 1024

// MessageWriter is the part of *kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...sdk.Message) error
	Close() error
}

// Params configures a publisher.
type Params struct {
	// Required
	Brokers []string
	Topic   string

	// Optional
	BufferSize int
}

// NewWriter creates a writer that waits for all in-sync replicas.
func NewWriter(params Params) *sdk.Writer {
	return &sdk.Writer{
		Addr:         sdk.TCP(params.Brokers...),
		Topic:        params.Topic,
		RequiredAcks: sdk.RequireAll,
		Balancer:     &sdk.LeastBytes{},
	}
}

// JourneyPublisher implements ports.JourneyNotifier. JourneyChanged only queues the
// message; a background producer writes it, so a slow broker never delays a journey.
// When the queue is full the change is dropped and logged.
type JourneyPublisher struct {
	writer MessageWriter
	logger *slog.Logger
	bucket chan sdk.Message

	wg       sync.WaitGroup
	stopOnce sync.Once
	mu       sync.RWMutex
	stopped  bool
}

func NewJourneyPublisher(writer MessageWriter, logger *slog.Logger, bufferSize int) *JourneyPublisher {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	return &JourneyPublisher{
		writer: writer,
		logger: logger.With("component", "JourneyPublisher"),
		bucket: make(chan sdk.Message, bufferSize),
	}
}

// Start runs the producer until Stop is called. ctx bounds each write.
func (p *JourneyPublisher) Start(ctx context.Context) {
	p.wg.Add(1)
	go p.produce(ctx)
}

// Stop flushes queued messages and closes the writer.
func (p *JourneyPublisher) Stop() error {
	var err error
	p.stopOnce.Do(func() {
		p.mu.Lock()
		p.stopped = true
		close(p.bucket)
		p.mu.Unlock()

		p.wg.Wait()
		err = p.writer.Close()
	})
	return err
}

func (p *JourneyPublisher) JourneyChanged(ctx context.Context, j *journey.Journey) {
	msg, err := toMessage(j)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to encode journey change", "journey_id", j.ID().String(), "error", err)
		return
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return
	}

	select {
	case p.bucket <- msg:
	default:
		p.logger.WarnContext(ctx, "publish queue is full, dropping journey change", "journey_id", j.ID().String())
	}
}

func (p *JourneyPublisher) produce(ctx context.Context) {
	defer p.wg.Done()

	for msg := range p.bucket {
		if err := p.writer.WriteMessages(ctx, msg); err != nil {
			p.logger.ErrorContext(ctx, "failed to publish journey change", "key", string(msg.Key), "error", err)
		}
	}
}

// JourneyChangedMessage is the payload written to the topic.
type JourneyChangedMessage struct {
	JourneyID        string        `json:"journeyId"`
	FoodID           string        `json:"foodId"`
	Status           string        `json:"status"`
	Donor            EntityMessage `json:"donor"`
	Picker           EntityMessage `json:"picker"`
	DeliveryLocation EntityMessage `json:"deliveryLocation"`
	CreatedAt        time.Time     `json:"createdAt"`
	CompletedAt      *time.Time    `json:"completedAt,omitempty"`
}

type EntityMessage struct {
	ID        string  `json:"id"`
	Role      string  `json:"role"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func toMessage(j *journey.Journey) (sdk.Message, error) {
	status, completedAt := j.State()
	payload := JourneyChangedMessage{
		JourneyID:        j.ID().String(),
		FoodID:           j.FoodID().String(),
		Status:           status.String(),
		Donor:            toEntityMessage(j.Donor()),
		Picker:           toEntityMessage(j.Picker()),
		DeliveryLocation: toEntityMessage(j.DeliveryLocation()),
		CreatedAt:        j.CreatedAt(),
		CompletedAt:      completedAt,
	}

	serialized, err := json.Marshal(payload)
	if err != nil {
		return sdk.Message{}, err
	}

	return sdk.Message{
		Key:   []byte(payload.JourneyID),
		Value: serialized,
		Headers: []sdk.Header{
			{Key: "status", Value: []byte(payload.Status)},
		},
	}, nil
}

func toEntityMessage(e *entity.Entity) EntityMessage {
	return EntityMessage{
		ID:        e.ID().String(),
		Role:      e.Role().String(),
		Name:      e.Name(),
		Latitude:  e.Location().Latitude(),
		Longitude: e.Location().Longitude(),
	}
}
