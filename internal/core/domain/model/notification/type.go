package notification

import (
	"fmt"

	"fueltrack/internal/pkg/errs"
)

// Type classifies a notification for display and filtering.
type Type int

const (
	UnknownType Type = iota
	OrderUpdate
	PaymentConfirmation
	DeliveryAlert
	SystemNotification
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType:         "Unknown",
		OrderUpdate:         "OrderUpdate",
		PaymentConfirmation: "PaymentConfirmation",
		DeliveryAlert:       "DeliveryAlert",
		SystemNotification:  "SystemNotification",
	}
}

func (t Type) Validate() error {
	if t < OrderUpdate || t > SystemNotification {
		return errs.NewValueIsInvalidErrorWithCause("notification type", fmt.Errorf("%d is not a valid notification type", t))
	}
	return nil
}

func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
