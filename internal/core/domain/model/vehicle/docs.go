// Package vehicle provides the Vehicle aggregate: a fuel truck with a capacity, a
// license plate and an availability status.
//
// Vehicles are occupied by order assignment and released when the order is delivered
// or cancelled. Deleting a vehicle leaves its orders in place with no vehicle.
package vehicle
