package kernel

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"foodjourney/internal/pkg/errs"
)

// Sampler scatters points around a center. It draws independent, uniform
// latitude and longitude offsets in [-radiusKm, +radiusKm], so the result lies in
// a bounding box around the center rather than in a disk of radius radiusKm.
//
// The longitude offset is divided by cos(latitude) to keep the spread roughly
// circular away from the equator. That correction diverges at the poles; callers
// must not sample around polar centers.
//
// A Sampler is safe for concurrent use.
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSampler creates a sampler over rng. A nil rng uses the math/rand/v2
// top-level source.
func NewSampler(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// Sample returns a random location near center.
//
// Returns:
//   - Location: a point within the radiusKm bounding box (longitude wrapped into [-180, 180])
//   - error: ValueIsOutOfRangeError if radiusKm is not positive, or a validation error for center
func (s *Sampler) Sample(center Location, radiusKm float64) (Location, error) {
	if err := center.Validate(); err != nil {
		return Location{}, err
	}
	if math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) || radiusKm <= 0 {
		return Location{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"radiusKm", radiusKm, 0, math.Inf(1), fmt.Errorf("%v is not greater than 0", radiusKm))
	}

	maxLatOffset, maxLonOffset := MaxOffsetDegrees(center, radiusKm)

	latitude := center.Latitude() + s.symmetric()*maxLatOffset
	longitude := wrapLongitude(center.Longitude() + s.symmetric()*maxLonOffset)

	return NewLocation(latitude, longitude)
}

// MaxOffsetDegrees converts radiusKm into the largest latitude and longitude
// offsets, in degrees, that Sample can produce around center.
func MaxOffsetDegrees(center Location, radiusKm float64) (float64, float64) {
	latOffset := radiansToDegrees(radiusKm / EarthRadiusKm)
	lonOffset := latOffset / math.Cos(degreesToRadians(center.Latitude()))
	return latOffset, lonOffset
}

// RandomLocationAround samples with the top-level random source.
func RandomLocationAround(center Location, radiusKm float64) (Location, error) {
	return defaultSampler.Sample(center, radiusKm)
}

var defaultSampler = NewSampler(nil)

// symmetric returns a uniform value in [-1, 1).
func (s *Sampler) symmetric() float64 {
	if s.rng == nil {
		return rand.Float64()*2 - 1 //nolint:gosec // demo coordinates
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()*2 - 1
}

func wrapLongitude(longitude float64) float64 {
	if longitude >= MinLongitude && longitude <= MaxLongitude {
		return longitude
	}
	return math.Mod(math.Mod(longitude+180, 360)+360, 360) - 180
}
