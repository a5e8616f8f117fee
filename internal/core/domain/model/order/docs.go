// Package order provides the Order aggregate of the fuel delivery system: a client's
// request for a quantity of fuel delivered to an address, together with its
// lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root holding pricing, delivery data and assignments
//   - Status: the order state machine
//   - FuelType: the closed set of fuels that can be ordered
//
// Key business rules:
//   - Quantity and price per liter must be positive; the total is their product at
//     NUMERIC(18,2) precision
//   - Status follows Pending -> Confirmed -> InTransit -> Delivered, and any
//     non-terminal status may move to Cancelled
//   - Confirmation requires both a vehicle and an operator
//   - Delivered and Cancelled are terminal
//
// Vehicle and operator availability is checked by the assignment domain service,
// which owns the cross-aggregate part of the rule.
package order
