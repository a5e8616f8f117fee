// Package services provides domain services for the rules of the fuel delivery system
// that span more than one aggregate.
//
// The package includes:
//   - OrderDispatcher: assigns an available vehicle and operator to a pending order and
//     releases them when the order is delivered or cancelled
//   - PaymentPolicy: decides whether an order can take a payment of a given amount with
//     a given payment method
//   - Notifier: composes the notifications sent on order and payment transitions
//
// Services are stateless and never touch storage; use case handlers load the
// aggregates (with row locks where needed), call a service and persist the result.
package services
