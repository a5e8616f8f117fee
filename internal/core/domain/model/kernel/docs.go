// Package kernel provides core domain primitives shared by every aggregate of the
// fuel delivery system.
//
// The package includes:
//   - ID: the store-assigned integer identifier of an entity
//   - Entity: identity plus creation and update timestamps, embedded by aggregates
//   - Amount: a non-negative fixed-precision decimal (18 digits, 2 fractional) used for
//     quantities, prices, totals and capacities
//   - Coordinates: a validated latitude/longitude pair
//
// Value objects are immutable and carry a constructor guard so zero values are rejected
// by Validate.
package kernel
