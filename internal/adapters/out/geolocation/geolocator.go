// Package geolocation answers "where is the caller?" for the core. The HTTP adapter
// stores the position reported by the browser in the request context; there is no
// server-side device access.
package geolocation

import (
	"context"

	"foodjourney/internal/core/domain/model/kernel"
	"foodjourney/internal/core/ports"
)

type positionKey struct{}

// WithPosition returns a context carrying the caller's position.
func WithPosition(ctx context.Context, position kernel.Location) context.Context {
	return context.WithValue(ctx, positionKey{}, position)
}

// ContextGeolocator implements ports.Geolocator over the request context.
type ContextGeolocator struct{}

func NewContextGeolocator() ContextGeolocator {
	return ContextGeolocator{}
}

// CurrentPosition returns ports.ErrLocationUnavailable when the context carries no valid position.
func (ContextGeolocator) CurrentPosition(ctx context.Context) (kernel.Location, error) {
	position, ok := ctx.Value(positionKey{}).(kernel.Location)
	if !ok || position.Validate() != nil {
		return kernel.Location{}, ports.ErrLocationUnavailable
	}
	return position, nil
}
