// Package notification provides the Notification aggregate: a message addressed to a
// user, optionally about one of their orders.
package notification
