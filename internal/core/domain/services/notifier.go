package services

import (
	"fmt"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/notification"
	"fueltrack/internal/core/domain/model/operator"
	"fueltrack/internal/core/domain/model/order"
	"fueltrack/internal/core/domain/model/payment"
)

// Notifier composes the notifications produced by order and payment transitions.
// It only builds them; storing and publishing is left to the caller.
type Notifier struct{}

func NewNotifier() Notifier {
	return Notifier{}
}

// OrderStatusChanged builds the notification telling the owner of o about its current status.
func (n Notifier) OrderStatusChanged(o *order.Order) (*notification.Notification, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	var (
		title    string
		message  string
		kind     = notification.OrderUpdate
		orderRef = o.ID()
	)

	switch o.Status() {
	case order.Pending:
		title = "Order placed"
		message = fmt.Sprintf("Your order %s for %s liters of %s was received. Total: %s.",
			o.Number(), o.Quantity(), o.FuelType(), o.TotalAmount())
	case order.Confirmed:
		title = "Order confirmed"
		message = fmt.Sprintf("Your order %s was confirmed and a vehicle has been assigned.", o.Number())
	case order.InTransit:
		title = "Order on its way"
		message = fmt.Sprintf("Your order %s is on its way to %s.", o.Number(), o.DeliveryAddress())
	case order.Delivered:
		title = "Order delivered"
		message = fmt.Sprintf("Your order %s was delivered.", o.Number())
		kind = notification.DeliveryAlert
	case order.Cancelled:
		title = "Order cancelled"
		message = fmt.Sprintf("Your order %s was cancelled.", o.Number())
	default:
		return nil, fmt.Errorf("no notification for order status %s", o.Status())
	}

	return notification.NewNotification(o.UserID(), title, message, kind, &orderRef)
}

// PaymentStatusChanged builds the notification telling the owner of o about pay.
func (n Notifier) PaymentStatusChanged(o *order.Order, pay *payment.Payment) (*notification.Notification, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := pay.Validate(); err != nil {
		return nil, err
	}

	var title, message string
	switch pay.Status() {
	case payment.Completed:
		title = "Payment received"
		message = fmt.Sprintf("Payment of %s for order %s was completed.", pay.Amount(), o.Number())
	case payment.Failed:
		title = "Payment failed"
		message = fmt.Sprintf("Payment of %s for order %s could not be processed.", pay.Amount(), o.Number())
	case payment.Refunded:
		title = "Payment refunded"
		message = fmt.Sprintf("Payment of %s for order %s was refunded.", pay.Amount(), o.Number())
	default:
		return nil, fmt.Errorf("no notification for payment status %s", pay.Status())
	}

	orderRef := o.ID()
	return notification.NewNotification(o.UserID(), title, message, notification.PaymentConfirmation, &orderRef)
}

// OperatorLicenseExpired builds the notice sent to adminID when op is taken off duty.
func (n Notifier) OperatorLicenseExpired(adminID kernel.ID, op *operator.Operator) (*notification.Notification, error) {
	if err := op.Validate(); err != nil {
		return nil, err
	}

	return notification.NewNotification(
		adminID,
		"Operator license expired",
		fmt.Sprintf("Operator %s (license %s) was set off duty: the license expired on %s.",
			op.FullName(), op.LicenseNumber(), op.LicenseExpiryDate().Format("2006-01-02")),
		notification.SystemNotification,
		nil,
	)
}
