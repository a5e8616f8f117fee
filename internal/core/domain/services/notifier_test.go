package services_test

import (
	"testing"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/notification"
	"fueltrack/internal/core/domain/model/operator"
	"fueltrack/internal/core/domain/model/order"
	"fueltrack/internal/core/domain/model/payment"
	"fueltrack/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_OrderStatusChanged(t *testing.T) {
	tests := []struct {
		status order.Status
		title  string
		kind   notification.Type
	}{
		{order.Pending, "Order placed", notification.OrderUpdate},
		{order.Confirmed, "Order confirmed", notification.OrderUpdate},
		{order.InTransit, "Order on its way", notification.OrderUpdate},
		{order.Delivered, "Order delivered", notification.DeliveryAlert},
		{order.Cancelled, "Order cancelled", notification.OrderUpdate},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			o := newOrder(t, 9, "100.00", tt.status)

			n, err := services.NewNotifier().OrderStatusChanged(o)

			require.NoError(t, err)
			assert.Equal(t, tt.title, n.Title())
			assert.Equal(t, tt.kind, n.Type())
			assert.Equal(t, kernel.ID(1), n.UserID())
			assert.Equal(t, kernel.ID(9), *n.RelatedOrderID())
			assert.Contains(t, n.Message(), o.Number())
		})
	}
}

func TestNotifier_PaymentStatusChanged(t *testing.T) {
	o := newOrder(t, 9, "100.00", order.Confirmed)

	n, err := services.NewNotifier().PaymentStatusChanged(o, newPayment(t, 3, "150.00", payment.Completed))
	require.NoError(t, err)
	assert.Equal(t, notification.PaymentConfirmation, n.Type())
	assert.Contains(t, n.Message(), "150.00")

	_, err = services.NewNotifier().PaymentStatusChanged(o, newPayment(t, 3, "150.00", payment.Pending))
	require.Error(t, err)
}

func TestNotifier_OperatorLicenseExpired(t *testing.T) {
	op := newOperator(t, 4, now, operator.OffDuty)

	n, err := services.NewNotifier().OperatorLicenseExpired(1, op)

	require.NoError(t, err)
	assert.Equal(t, notification.SystemNotification, n.Type())
	assert.Nil(t, n.RelatedOrderID())
	assert.Contains(t, n.Message(), "LIC-4")
}
