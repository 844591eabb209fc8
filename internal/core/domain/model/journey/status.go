package journey

import (
	"fmt"

	"foodjourney/internal/pkg/errs"
)

// Status represents the lifecycle state of a journey.
//
// State transitions:
//
//	InProgress ──> Completed
//
// Completed is final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// InProgress is the status of every newly created journey.
	InProgress

	// Completed is set once the delivery delay has elapsed.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		InProgress: "InProgress",
		Completed:  "Completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		InProgress: "InProgress",
		Completed:  "Completed",
	}
}

// Validate checks that the status is InProgress or Completed.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status name, or "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether no transition leaves this status.
func (s Status) IsFinal() bool {
	return s == Completed
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - InProgress -> Completed
//
// Invalid transitions:
//   - Completed -> Completed (a journey completes once)
//   - Unknown -> Completed
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}
