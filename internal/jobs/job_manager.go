package jobs

import (
	"fmt"
)

// JobManager starts and stops all background jobs together.
type JobManager struct {
	journeyCompletionJob *JourneyCompletionJob
	journeyStatsJob      *JourneyStatsJob
}

func NewJobManager(completionJob *JourneyCompletionJob, statsJob *JourneyStatsJob) *JobManager {
	return &JobManager{
		journeyCompletionJob: completionJob,
		journeyStatsJob:      statsJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.journeyCompletionJob.Start(); err != nil {
		return fmt.Errorf("failed to start journey completion job: %w", err)
	}

	if err := jm.journeyStatsJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.journeyCompletionJob.Stop()
		return fmt.Errorf("failed to start journey stats job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.journeyStatsJob.Stop()
	jm.journeyCompletionJob.Stop()
}
