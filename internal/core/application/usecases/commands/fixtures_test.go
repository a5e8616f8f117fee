package commands_test

import (
	"testing"
	"time"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/notification"
	"fueltrack/internal/core/domain/model/operator"
	"fueltrack/internal/core/domain/model/order"
	"fueltrack/internal/core/domain/model/payment"
	"fueltrack/internal/core/domain/model/paymentmethod"
	"fueltrack/internal/core/domain/model/user"
	"fueltrack/internal/core/domain/model/vehicle"
	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/clock"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	now        = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	fixedClock = clock.Fixed(now)

	adminClaims    = ports.AccessClaims{UserID: 1, Email: "admin@fueltrack.com", Role: user.Admin}
	clientClaims   = ports.AccessClaims{UserID: 2, Email: "cliente@fueltrack.com", Role: user.Client}
	providerClaims = ports.AccessClaims{UserID: 3, Email: "proveedor@fueltrack.com", Role: user.Provider}
)

func amount(t *testing.T, raw string) kernel.Amount {
	t.Helper()
	a, err := kernel.ParseAmount(raw)
	require.NoError(t, err)
	return a
}

func entity(t *testing.T, id kernel.ID) kernel.Entity {
	t.Helper()
	e, err := kernel.RestoreEntity(id, now.Add(-time.Hour), now.Add(-time.Hour))
	require.NoError(t, err)
	return e
}

// persistAs simulates the identity assignment a repository performs on Add.
func persistAs(id kernel.ID) func(mock.Arguments) {
	return func(args mock.Arguments) {
		type persistable interface {
			MarkPersisted(id kernel.ID, createdAt, updatedAt time.Time) error
		}
		if p, ok := args.Get(1).(persistable); ok {
			_ = p.MarkPersisted(id, now, now)
		}
	}
}

func restoreOrder(t *testing.T, id kernel.ID, state order.State) *order.Order {
	t.Helper()
	if state.UserID == 0 {
		state.UserID = clientClaims.UserID
	}
	if state.Number == "" {
		state.Number = "FT-20260310-" + id.String()
	}
	if state.FuelType == order.UnknownFuel {
		state.FuelType = order.Diesel
	}
	if state.Quantity.IsZero() {
		state.Quantity = amount(t, "100.00")
		state.PricePerLiter = amount(t, "1.50")
		state.TotalAmount = amount(t, "150.00")
	}
	if state.DeliveryAddress == "" {
		state.DeliveryAddress = "Calle 80 #12-30"
	}

	o, err := order.RestoreOrder(entity(t, id), state)
	require.NoError(t, err)
	return o
}

func restoreVehicle(t *testing.T, id kernel.ID, capacity string, status vehicle.Status) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.RestoreVehicle(entity(t, id), vehicle.State{
		LicensePlate: "PLT-" + id.String(),
		Brand:        "Volvo",
		Model:        "FH",
		Year:         2021,
		Capacity:     amount(t, capacity),
		Status:       status,
	})
	require.NoError(t, err)
	return v
}

func restoreOperator(t *testing.T, id kernel.ID, expiry time.Time, status operator.Status) *operator.Operator {
	t.Helper()
	op, err := operator.RestoreOperator(entity(t, id), operator.State{
		FirstName:         "Carlos",
		LastName:          "Rodríguez",
		LicenseNumber:     "LIC-" + id.String(),
		LicenseExpiryDate: expiry,
		Status:            status,
	})
	require.NoError(t, err)
	return op
}

func restoreUser(t *testing.T, id kernel.ID, role user.Role) *user.User {
	t.Helper()
	u, err := user.RestoreUser(entity(t, id), user.State{
		FirstName:    "Juan",
		LastName:     "Pérez",
		Email:        "user" + id.String() + "@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         role,
	})
	require.NoError(t, err)
	return u
}

func restorePaymentMethod(t *testing.T, id, owner kernel.ID, isDefault bool) *paymentmethod.PaymentMethod {
	t.Helper()
	pm, err := paymentmethod.RestorePaymentMethod(entity(t, id), paymentmethod.State{
		UserID:              owner,
		CardHolderName:      "JUAN PEREZ",
		LastFourDigits:      "1111",
		CardType:            "Visa",
		EncryptedCardNumber: "sealed",
		ExpiryDate:          paymentmethod.ExpiryEndOfMonth(2028, time.May),
		IsDefault:           isDefault,
	})
	require.NoError(t, err)
	return pm
}

func restorePayment(t *testing.T, id, orderID kernel.ID, raw string, status payment.Status) *payment.Payment {
	t.Helper()
	state := payment.State{
		OrderID:         orderID,
		PaymentMethodID: 30,
		Amount:          amount(t, raw),
		Status:          status,
	}
	if status != payment.Pending {
		txID := "TXN-" + id.String()
		processed := now.Add(-time.Minute)
		state.TransactionID = &txID
		state.ProcessedAt = &processed
	}

	pay, err := payment.RestorePayment(entity(t, id), state)
	require.NoError(t, err)
	return pay
}

func restoreNotification(t *testing.T, id, owner kernel.ID, read bool) *notification.Notification {
	t.Helper()
	n, err := notification.RestoreNotification(entity(t, id), notification.State{
		UserID:  owner,
		Title:   "Order update",
		Message: "Your order is on its way",
		Type:    notification.OrderUpdate,
		IsRead:  read,
	})
	require.NoError(t, err)
	return n
}

func idPtr(id kernel.ID) *kernel.ID {
	return &id
}
