// Package jobs provides the background tasks of the food journey service.
//
// Jobs run on github.com/robfig/cron/v3 schedulers:
//
//  1. JourneyCompletionJob - one-shot entries, one per simulated journey, that complete
//     the journey after the configured delay. It implements ports.CompletionScheduler.
//  2. JourneyStatsJob - a recurring summary of the journey log (in flight / completed).
//
// # Usage
//
//	completionJob := jobs.NewJourneyCompletionJob(completeJourneyHandler, logger)
//	statsJob := jobs.NewJourneyStatsJob(getJourneysHandler, "*/30 * * * * *", logger)
//	jobManager := jobs.NewJobManager(completionJob, statsJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A completion that finds no journey, or a journey that is already completed, is logged
// as a warning and never retried. Other failures are logged as errors.
package jobs
