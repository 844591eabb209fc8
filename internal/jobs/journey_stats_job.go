package jobs

import (
	"context"
	"log/slog"

	"foodjourney/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultStatsSpec runs the summary every 30 seconds.
const DefaultStatsSpec = "*/30 * * * * *"

// GetJourneysHandler is the query handler the stats job reads from.
type GetJourneysHandler interface {
	Handle(ctx context.Context, query queries.GetJourneysQuery) (queries.GetJourneysQueryResponse, error)
}

// JourneyStatsJob periodically logs how many journeys are in flight and completed.
type JourneyStatsJob struct {
	handler GetJourneysHandler
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewJourneyStatsJob creates the job. spec is a six-field cron expression (with seconds);
// an empty spec uses DefaultStatsSpec.
func NewJourneyStatsJob(handler GetJourneysHandler, spec string, logger *slog.Logger) *JourneyStatsJob {
	if spec == "" {
		spec = DefaultStatsSpec
	}
	return &JourneyStatsJob{
		handler: handler,
		spec:    spec,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "journey_stats_job"),
	}
}

func (j *JourneyStatsJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Journey stats job started", "spec", j.spec)
	return nil
}

func (j *JourneyStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Journey stats job stopped")
}

func (j *JourneyStatsJob) run() {
	ctx := context.Background()

	resp, err := j.handler.Handle(ctx, queries.NewGetJourneysQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Journey stats job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Journey stats",
		"total", len(resp.Journeys),
		"in_flight", resp.InProgress,
		"completed", resp.Completed,
	)
}
