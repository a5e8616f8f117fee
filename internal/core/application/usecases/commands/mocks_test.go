package commands_test

import (
	"context"
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

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of ports.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.ID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) FindByRefreshToken(ctx context.Context, token string) (*user.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) ListIDsByRole(ctx context.Context, role user.Role) ([]kernel.ID, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.ID), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id kernel.ID) error {
	return m.Called(ctx, id).Error(0)
}

// MockOrderRepository is a mock implementation of ports.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.ID) error {
	return m.Called(ctx, id).Error(0)
}

// MockPaymentRepository is a mock implementation of ports.PaymentRepository.
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockPaymentRepository) Update(ctx context.Context, aggregate *payment.Payment) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockPaymentRepository) Get(ctx context.Context, id kernel.ID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListByOrder(ctx context.Context, orderID kernel.ID) ([]*payment.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPendingCreatedBefore(
	ctx context.Context,
	cutoff time.Time,
	limit int,
) ([]*payment.Payment, error) {
	args := m.Called(ctx, cutoff, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payment.Payment), args.Error(1)
}

// MockPaymentMethodRepository is a mock implementation of ports.PaymentMethodRepository.
type MockPaymentMethodRepository struct {
	mock.Mock
}

func (m *MockPaymentMethodRepository) Add(ctx context.Context, aggregate *paymentmethod.PaymentMethod) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockPaymentMethodRepository) Update(ctx context.Context, aggregate *paymentmethod.PaymentMethod) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockPaymentMethodRepository) Get(ctx context.Context, id kernel.ID) (*paymentmethod.PaymentMethod, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymentmethod.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) ListByUser(
	ctx context.Context,
	userID kernel.ID,
) ([]*paymentmethod.PaymentMethod, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*paymentmethod.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) Delete(ctx context.Context, id kernel.ID) error {
	return m.Called(ctx, id).Error(0)
}

// MockVehicleRepository is a mock implementation of ports.VehicleRepository.
type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.ID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, id kernel.ID) error {
	return m.Called(ctx, id).Error(0)
}

// MockOperatorRepository is a mock implementation of ports.OperatorRepository.
type MockOperatorRepository struct {
	mock.Mock
}

func (m *MockOperatorRepository) Add(ctx context.Context, aggregate *operator.Operator) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockOperatorRepository) Update(ctx context.Context, aggregate *operator.Operator) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockOperatorRepository) Get(ctx context.Context, id kernel.ID) (*operator.Operator, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*operator.Operator), args.Error(1)
}

func (m *MockOperatorRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*operator.Operator, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*operator.Operator), args.Error(1)
}

func (m *MockOperatorRepository) ListAvailableWithExpiredLicense(
	ctx context.Context,
	now time.Time,
) ([]*operator.Operator, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*operator.Operator), args.Error(1)
}

func (m *MockOperatorRepository) Delete(ctx context.Context, id kernel.ID) error {
	return m.Called(ctx, id).Error(0)
}

// MockNotificationRepository is a mock implementation of ports.NotificationRepository.
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Add(ctx context.Context, aggregate *notification.Notification) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, aggregate *notification.Notification) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.ID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

// MockUoW implements every unit of work interface of the commands package. Repository
// getters hand out the embedded mocks; only the transaction calls are recorded.
type MockUoW struct {
	mock.Mock
	users          *MockUserRepository
	orders         *MockOrderRepository
	payments       *MockPaymentRepository
	paymentMethods *MockPaymentMethodRepository
	vehicles       *MockVehicleRepository
	operators      *MockOperatorRepository
	notifications  *MockNotificationRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		users:          new(MockUserRepository),
		orders:         new(MockOrderRepository),
		payments:       new(MockPaymentRepository),
		paymentMethods: new(MockPaymentMethodRepository),
		vehicles:       new(MockVehicleRepository),
		operators:      new(MockOperatorRepository),
		notifications:  new(MockNotificationRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.users
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.orders
}

func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	return m.payments
}

func (m *MockUoW) PaymentMethodRepository() ports.PaymentMethodRepository {
	return m.paymentMethods
}

func (m *MockUoW) VehicleRepository() ports.VehicleRepository {
	return m.vehicles
}

func (m *MockUoW) OperatorRepository() ports.OperatorRepository {
	return m.operators
}

func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	return m.notifications
}

// AssertRepositories asserts the expectations of every repository mock.
func (m *MockUoW) AssertRepositories(t mock.TestingT) {
	m.users.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.payments.AssertExpectations(t)
	m.paymentMethods.AssertExpectations(t)
	m.vehicles.AssertExpectations(t)
	m.operators.AssertExpectations(t)
	m.notifications.AssertExpectations(t)
}

// MockUoWFactory creates units of work of type U, which is one of the narrow unit of
// work interfaces of the commands package.
type MockUoWFactory[U any] struct {
	mock.Mock
}

func (m *MockUoWFactory[U]) Create() U {
	return m.Called().Get(0).(U)
}

// MockPasswordHasher is a mock implementation of ports.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, password string) error {
	return m.Called(hash, password).Error(0)
}

// MockTokenIssuer is a mock implementation of ports.TokenIssuer.
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) IssueAccessToken(claims ports.AccessClaims, now time.Time) (ports.IssuedToken, error) {
	args := m.Called(claims, now)
	return args.Get(0).(ports.IssuedToken), args.Error(1)
}

func (m *MockTokenIssuer) ParseAccessToken(token string) (ports.AccessClaims, error) {
	args := m.Called(token)
	return args.Get(0).(ports.AccessClaims), args.Error(1)
}

func (m *MockTokenIssuer) NewRefreshToken(now time.Time) (ports.IssuedToken, error) {
	args := m.Called(now)
	return args.Get(0).(ports.IssuedToken), args.Error(1)
}

// MockCardCipher is a mock implementation of ports.CardCipher.
type MockCardCipher struct {
	mock.Mock
}

func (m *MockCardCipher) Encrypt(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}

func (m *MockCardCipher) Decrypt(encoded string) (string, error) {
	args := m.Called(encoded)
	return args.String(0), args.Error(1)
}
