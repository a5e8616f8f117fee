// Package user provides the User aggregate and its authorization Role.
//
// A user owns orders, payment methods and notifications. Deleting a user is refused
// while any order references it; payment methods and notifications are removed with it.
package user
