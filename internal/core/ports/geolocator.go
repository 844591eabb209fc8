package ports

import (
	"context"
	"errors"

	"foodjourney/internal/core/domain/model/kernel"
)

// ErrLocationUnavailable is returned when the caller's position cannot be determined.
var ErrLocationUnavailable = errors.New("current location is unavailable")

// Geolocator reports the current position of the device issuing a request.
type Geolocator interface {
	CurrentPosition(ctx context.Context) (kernel.Location, error)
}
