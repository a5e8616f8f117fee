// Package operator provides the Operator aggregate: a licensed driver who takes fuel
// orders out for delivery.
package operator
