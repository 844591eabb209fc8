package services

import (
	"strings"

	"foodjourney/internal/core/domain/model/entity"
	"foodjourney/internal/core/domain/model/kernel"
	"foodjourney/internal/pkg/errs"

	"golang.org/x/text/cases"
)

// ErrEntityNotFound is returned when the resolver has nothing to return.
var ErrEntityNotFound = errs.NewObjectNotFoundError("location", "no registered entity")

// LocationResolver maps a free-text query to a registered entity.
//
// Resolution policy, first rule that yields a result wins:
//  1. the first entity, in registration order, whose name contains the query
//     (Unicode case-insensitive); later hits are not ranked against it
//  2. otherwise the entity nearest to the reference point, by great-circle distance;
//     ties keep the earlier entity
//  3. otherwise ErrEntityNotFound (no entities at all)
//
// The reference point is fixed (the region center). The query carries no
// coordinates, so rule 2 does not depend on the query text at all.
type LocationResolver struct {
	reference kernel.Location
}

// NewLocationResolver creates a resolver that falls back to the entity nearest to reference.
func NewLocationResolver(reference kernel.Location) (LocationResolver, error) {
	if err := reference.Validate(); err != nil {
		return LocationResolver{}, err
	}
	return LocationResolver{reference: reference}, nil
}

// Reference returns the fallback reference point.
func (r LocationResolver) Reference() kernel.Location {
	return r.reference
}

// Resolve applies the resolution policy to entities, which must be in registration order.
func (r LocationResolver) Resolve(query string, entities []*entity.Entity) (*entity.Entity, error) {
	if len(entities) == 0 {
		return nil, ErrEntityNotFound
	}

	if e := r.firstNameMatch(query, entities); e != nil {
		return e, nil
	}

	return Nearest(r.reference, entities)
}

func (r LocationResolver) firstNameMatch(query string, entities []*entity.Entity) *entity.Entity {
	// A Caser is stateful and must not be shared between goroutines.
	fold := cases.Fold()
	needle := fold.String(query)
	for _, e := range entities {
		if strings.Contains(fold.String(e.Name()), needle) {
			return e
		}
	}
	return nil
}

// Nearest returns the entity closest to point; ties keep the earlier entity.
func Nearest(point kernel.Location, entities []*entity.Entity) (*entity.Entity, error) {
	var (
		best     *entity.Entity
		bestDist float64
	)

	for _, e := range entities {
		d, err := point.DistanceKm(e.Location())
		if err != nil {
			return nil, err
		}
		if best == nil || d < bestDist {
			best, bestDist = e, d
		}
	}

	if best == nil {
		return nil, ErrEntityNotFound
	}
	return best, nil
}
