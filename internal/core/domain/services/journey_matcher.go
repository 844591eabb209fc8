package services

import (
	"errors"
	"math/rand/v2"
	"sync"

	"foodjourney/internal/core/domain/model/entity"
)

// ErrInsufficientEntities is returned when any of the three pools is empty.
var ErrInsufficientEntities = errors.New("not enough entities to simulate a food journey")

// Pool role sets used to build the candidate lists of a journey.
var (
	DonorRoles            = []entity.Role{entity.FoodDonor}
	DeliveryLocationRoles = []entity.Role{entity.DeliveryLocation, entity.Institution}
	PickerRoles           = []entity.Role{entity.Picker}
)

// Match is the triple chosen for a journey.
type Match struct {
	Donor            *entity.Entity
	Picker           *entity.Entity
	DeliveryLocation *entity.Entity
}

// JourneyMatcher draws one entity from each pool, uniformly and independently.
// The pools never share an entity because their role sets are disjoint, so no
// de-duplication is needed.
//
// Example usage:
//
//	matcher := services.NewJourneyMatcher(nil)
//	match, err := matcher.Match(donors, pickers, deliveryLocations)
//	if errors.Is(err, services.ErrInsufficientEntities) {
//	    // nothing to simulate yet
//	}
type JourneyMatcher struct {
	mu  *sync.Mutex
	rng *rand.Rand
}

// NewJourneyMatcher creates a matcher over rng; nil uses the math/rand/v2 top-level source.
func NewJourneyMatcher(rng *rand.Rand) JourneyMatcher {
	return JourneyMatcher{mu: &sync.Mutex{}, rng: rng}
}

// Match picks the journey participants.
//
// Returns ErrInsufficientEntities when any pool is empty. Candidates are not
// re-validated here; the journey constructor checks roles.
func (m JourneyMatcher) Match(donors, pickers, deliveryLocations []*entity.Entity) (Match, error) {
	if len(donors) == 0 || len(pickers) == 0 || len(deliveryLocations) == 0 {
		return Match{}, ErrInsufficientEntities
	}

	return Match{
		Donor:            donors[m.intN(len(donors))],
		Picker:           pickers[m.intN(len(pickers))],
		DeliveryLocation: deliveryLocations[m.intN(len(deliveryLocations))],
	}, nil
}

func (m JourneyMatcher) intN(n int) int {
	if m.rng == nil {
		return rand.IntN(n) //nolint:gosec // demo selection
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rng.IntN(n)
}
