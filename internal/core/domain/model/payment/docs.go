// Package payment provides the Payment aggregate: an amount charged against an order
// with one of the owner's payment methods, and its processing state machine.
//
// A payment can be created for any order that is not cancelled. Completed payments on
// an order never add up to more than the order total; that cross-aggregate check lives
// in the payment policy of the services package.
package payment
