// Package services provides domain services that work across several aggregates.
//
// The package includes:
//   - JourneyMatcher: picks the donor, picker and delivery location of a new journey
//   - LocationResolver: maps a free-text query to a registered entity
//
// Both services are pure: they receive the candidate entities from the caller and
// never touch storage.
package services
