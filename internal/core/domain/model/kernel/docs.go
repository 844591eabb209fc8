// Package kernel provides the shared domain primitives of the food journey service.
//
// The package includes:
//   - UUID: A time-ordered identifier used for entities, food parcels and journeys
//   - Location: A latitude/longitude value object in decimal degrees
//   - Sampler: The coordinate sampler that scatters entities around a region center
//
// All values are immutable after construction. Zero values are invalid and fail
// their Validate method, which keeps half-initialized data out of the aggregates.
package kernel
