// Package journey provides the Journey aggregate: one simulated trip of a food
// parcel from a donor, through a picker, to a delivery location.
//
// The package includes:
//   - Journey: The aggregate that references its three entities and tracks its status
//   - Status: A state machine that enforces the single InProgress -> Completed transition
//
// Key business rules:
//   - A journey references a FoodDonor, a Picker and a DeliveryLocation or Institution
//   - The food identifier is copied from the donor when the journey is created
//   - Status starts as InProgress and becomes Completed exactly once
//   - Referenced entities are shared, never copied or modified
package journey
