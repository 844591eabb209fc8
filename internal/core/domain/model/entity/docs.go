// Package entity provides the registry aggregate of the food journey service:
// the donors, delivery locations, NGOs, volunteers, hosts, pickers and
// institutions placed on the map.
//
// The package includes:
//   - Entity: An immutable record with identity, role, name and location
//   - Role: The closed enumeration of entity roles
//
// Key business rules:
//   - Every entity has a valid identifier, a known role, a non-empty name and a valid location
//   - A FoodDonor carries exactly one food identifier, generated together with the entity
//   - No other role carries a food identifier
//   - Entities are never edited after construction
package entity
