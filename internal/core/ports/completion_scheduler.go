package ports

import (
	"time"

	"foodjourney/internal/core/domain/model/kernel"
)

// CompletionScheduler arranges for a journey to be completed once after a delay.
//
// PrepareCompletion only checks that the completion can be scheduled; nothing runs
// until start is called. Callers prepare before committing the journey and call start
// after the commit, so a journey is never logged without a completion to follow it.
type CompletionScheduler interface {
	PrepareCompletion(journeyID kernel.UUID, delay time.Duration) (start func(), err error)
}
