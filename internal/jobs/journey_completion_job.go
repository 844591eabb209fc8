package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"foodjourney/internal/core/application/usecases/commands"
	"foodjourney/internal/core/domain/model/journey"
	"foodjourney/internal/core/domain/model/kernel"
	"foodjourney/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// ErrSchedulerStopped is returned when a completion is prepared after Stop.
var ErrSchedulerStopped = errors.New("completion scheduler is stopped")

// CompleteJourneyHandler is the command handler the job runs.
type CompleteJourneyHandler interface {
	Handle(ctx context.Context, cmd commands.CompleteJourneyCommand) error
}

// oneShot fires once at a fixed time. cron asks for Next when the entry is
// added (or the scheduler starts) and again after each run; a zero time
// parks the entry for good.
type oneShot struct {
	at    time.Time
	fired atomic.Bool
}

func (s *oneShot) Next(time.Time) time.Time {
	if s.fired.Swap(true) {
		return time.Time{}
	}
	return s.at
}

// JourneyCompletionJob completes each simulated journey once, after a delay.
// Every journey gets its own cron entry keyed by journey id; timers are independent
// and an entry removes itself after it ran.
type JourneyCompletionJob struct {
	handler CompleteJourneyHandler
	cron    *cron.Cron
	logger  *slog.Logger

	mu      sync.Mutex
	stopped bool
	pending map[kernel.UUID]cron.EntryID
}

func NewJourneyCompletionJob(handler CompleteJourneyHandler, logger *slog.Logger) *JourneyCompletionJob {
	return &JourneyCompletionJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "journey_completion_job"),
		pending: make(map[kernel.UUID]cron.EntryID),
	}
}

func (j *JourneyCompletionJob) Start() error {
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Journey completion job started")
	return nil
}

// Stop prevents new completions and waits for running ones. Completions not yet due are dropped.
func (j *JourneyCompletionJob) Stop() {
	j.mu.Lock()
	j.stopped = true
	j.mu.Unlock()

	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Journey completion job stopped")
}

// PrepareCompletion implements ports.CompletionScheduler. The delay counts from
// the call to start. A start called after Stop does nothing.
func (j *JourneyCompletionJob) PrepareCompletion(journeyID kernel.UUID, delay time.Duration) (func(), error) {
	cmd, err := commands.NewCompleteJourneyCommand(journeyID)
	if err != nil {
		return nil, err
	}

	j.mu.Lock()
	stopped := j.stopped
	j.mu.Unlock()
	if stopped {
		return nil, ErrSchedulerStopped
	}

	var once sync.Once
	return func() {
		once.Do(func() { j.schedule(cmd, delay) })
	}, nil
}

func (j *JourneyCompletionJob) schedule(cmd commands.CompleteJourneyCommand, delay time.Duration) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.stopped {
		j.logger.WarnContext(context.Background(), "Journey completion dropped, job is stopped",
			"journey_id", cmd.JourneyID().String())
		return
	}

	schedule := &oneShot{at: time.Now().Add(delay)}
	id := j.cron.Schedule(schedule, cron.FuncJob(func() {
		j.complete(cmd)
	}))
	j.pending[cmd.JourneyID()] = id
}

// Pending returns the number of completions not run yet.
func (j *JourneyCompletionJob) Pending() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.pending)
}

func (j *JourneyCompletionJob) complete(cmd commands.CompleteJourneyCommand) {
	ctx := context.Background()

	j.mu.Lock()
	id, ok := j.pending[cmd.JourneyID()]
	delete(j.pending, cmd.JourneyID())
	j.mu.Unlock()
	if ok {
		j.cron.Remove(id)
	}

	err := j.handler.Handle(ctx, cmd)
	switch {
	case err == nil:
	case errors.Is(err, errs.ErrObjectNotFound), errors.Is(err, journey.ErrAlreadyCompleted):
		j.logger.WarnContext(ctx, "Journey completion skipped",
			"journey_id", cmd.JourneyID().String(), "error", err)
	default:
		j.logger.ErrorContext(ctx, "Journey completion failed",
			"journey_id", cmd.JourneyID().String(), "error", err)
	}
}
