// Package paymentmethod provides the PaymentMethod aggregate: a card saved by a user.
//
// Only the encrypted card number and its last four digits are kept. A payment method is
// removed together with its owner, but cannot be removed on its own while payments
// reference it.
package paymentmethod
