package queries

import (
	"time"

	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/core/domain/model/notification"
	"fueltrack/internal/core/domain/model/operator"
	"fueltrack/internal/core/domain/model/order"
	"fueltrack/internal/core/domain/model/payment"
	"fueltrack/internal/core/domain/model/user"
	"fueltrack/internal/core/domain/model/vehicle"

	"github.com/shopspring/decimal"
)

// money renders a NUMERIC(18,2) column with both fractional digits.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type UserResponse struct {
	ID        kernel.ID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type userRow struct {
	ID        int64     `gorm:"column:id"`
	FirstName string    `gorm:"column:first_name"`
	LastName  string    `gorm:"column:last_name"`
	Email     string    `gorm:"column:email"`
	Phone     *string   `gorm:"column:phone"`
	Role      user.Role `gorm:"column:role"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (r userRow) response() UserResponse {
	return UserResponse{
		ID:        kernel.ID(r.ID),
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Role:      r.Role.String(),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type OrderResponse struct {
	ID                    kernel.ID  `json:"id"`
	UserID                kernel.ID  `json:"userId"`
	OrderNumber           string     `json:"orderNumber"`
	FuelType              string     `json:"fuelType"`
	Quantity              string     `json:"quantity"`
	PricePerLiter         string     `json:"pricePerLiter"`
	TotalAmount           string     `json:"totalAmount"`
	Status                string     `json:"status"`
	DeliveryAddress       string     `json:"deliveryAddress"`
	DeliveryLatitude      *float64   `json:"deliveryLatitude,omitempty"`
	DeliveryLongitude     *float64   `json:"deliveryLongitude,omitempty"`
	EstimatedDeliveryTime *time.Time `json:"estimatedDeliveryTime,omitempty"`
	ActualDeliveryTime    *time.Time `json:"actualDeliveryTime,omitempty"`
	VehicleID             *kernel.ID `json:"vehicleId,omitempty"`
	OperatorID            *kernel.ID `json:"operatorId,omitempty"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

const orderColumns = `id, user_id, order_number, fuel_type, quantity, price_per_liter, total_amount,
	status, delivery_address, delivery_latitude, delivery_longitude, estimated_delivery_time,
	actual_delivery_time, vehicle_id, operator_id, created_at, updated_at`

type orderRow struct {
	ID                    int64           `gorm:"column:id"`
	UserID                int64           `gorm:"column:user_id"`
	OrderNumber           string          `gorm:"column:order_number"`
	FuelType              order.FuelType  `gorm:"column:fuel_type"`
	Quantity              decimal.Decimal `gorm:"column:quantity"`
	PricePerLiter         decimal.Decimal `gorm:"column:price_per_liter"`
	TotalAmount           decimal.Decimal `gorm:"column:total_amount"`
	Status                order.Status    `gorm:"column:status"`
	DeliveryAddress       string          `gorm:"column:delivery_address"`
	DeliveryLatitude      *float64        `gorm:"column:delivery_latitude"`
	DeliveryLongitude     *float64        `gorm:"column:delivery_longitude"`
	EstimatedDeliveryTime *time.Time      `gorm:"column:estimated_delivery_time"`
	ActualDeliveryTime    *time.Time      `gorm:"column:actual_delivery_time"`
	VehicleID             *int64          `gorm:"column:vehicle_id"`
	OperatorID            *int64          `gorm:"column:operator_id"`
	CreatedAt             time.Time       `gorm:"column:created_at"`
	UpdatedAt             time.Time       `gorm:"column:updated_at"`
}

func (r orderRow) response() OrderResponse {
	return OrderResponse{
		ID:                    kernel.ID(r.ID),
		UserID:                kernel.ID(r.UserID),
		OrderNumber:           r.OrderNumber,
		FuelType:              r.FuelType.String(),
		Quantity:              money(r.Quantity),
		PricePerLiter:         money(r.PricePerLiter),
		TotalAmount:           money(r.TotalAmount),
		Status:                r.Status.String(),
		DeliveryAddress:       r.DeliveryAddress,
		DeliveryLatitude:      r.DeliveryLatitude,
		DeliveryLongitude:     r.DeliveryLongitude,
		EstimatedDeliveryTime: r.EstimatedDeliveryTime,
		ActualDeliveryTime:    r.ActualDeliveryTime,
		VehicleID:             kernel.OptionalID(r.VehicleID),
		OperatorID:            kernel.OptionalID(r.OperatorID),
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
	}
}

type PaymentResponse struct {
	ID              kernel.ID  `json:"id"`
	OrderID         kernel.ID  `json:"orderId"`
	PaymentMethodID kernel.ID  `json:"paymentMethodId"`
	Amount          string     `json:"amount"`
	Status          string     `json:"status"`
	TransactionID   *string    `json:"transactionId,omitempty"`
	ProcessedAt     *time.Time `json:"processedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type paymentRow struct {
	ID              int64           `gorm:"column:id"`
	OrderID         int64           `gorm:"column:order_id"`
	PaymentMethodID int64           `gorm:"column:payment_method_id"`
	Amount          decimal.Decimal `gorm:"column:amount"`
	Status          payment.Status  `gorm:"column:status"`
	TransactionID   *string         `gorm:"column:transaction_id"`
	ProcessedAt     *time.Time      `gorm:"column:processed_at"`
	CreatedAt       time.Time       `gorm:"column:created_at"`
}

func (r paymentRow) response() PaymentResponse {
	return PaymentResponse{
		ID:              kernel.ID(r.ID),
		OrderID:         kernel.ID(r.OrderID),
		PaymentMethodID: kernel.ID(r.PaymentMethodID),
		Amount:          money(r.Amount),
		Status:          r.Status.String(),
		TransactionID:   r.TransactionID,
		ProcessedAt:     r.ProcessedAt,
		CreatedAt:       r.CreatedAt,
	}
}

// PaymentMethodResponse never carries the card number, encrypted or not.
type PaymentMethodResponse struct {
	ID             kernel.ID `json:"id"`
	CardHolderName string    `json:"cardHolderName"`
	LastFourDigits string    `json:"lastFourDigits"`
	CardType       string    `json:"cardType"`
	ExpiryDate     time.Time `json:"expiryDate"`
	IsDefault      bool      `json:"isDefault"`
	CreatedAt      time.Time `json:"createdAt"`
}

type VehicleResponse struct {
	ID               kernel.ID `json:"id"`
	LicensePlate     string    `json:"licensePlate"`
	Brand            string    `json:"brand"`
	Model            string    `json:"model"`
	Year             int       `json:"year"`
	Capacity         string    `json:"capacity"`
	Status           string    `json:"status"`
	CurrentLatitude  *float64  `json:"currentLatitude,omitempty"`
	CurrentLongitude *float64  `json:"currentLongitude,omitempty"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type vehicleRow struct {
	ID               int64           `gorm:"column:id"`
	LicensePlate     string          `gorm:"column:license_plate"`
	Brand            string          `gorm:"column:brand"`
	Model            string          `gorm:"column:model"`
	Year             int             `gorm:"column:year"`
	Capacity         decimal.Decimal `gorm:"column:capacity"`
	Status           vehicle.Status  `gorm:"column:status"`
	CurrentLatitude  *float64        `gorm:"column:current_latitude"`
	CurrentLongitude *float64        `gorm:"column:current_longitude"`
	UpdatedAt        time.Time       `gorm:"column:updated_at"`
}

func (r vehicleRow) response() VehicleResponse {
	return VehicleResponse{
		ID:               kernel.ID(r.ID),
		LicensePlate:     r.LicensePlate,
		Brand:            r.Brand,
		Model:            r.Model,
		Year:             r.Year,
		Capacity:         money(r.Capacity),
		Status:           r.Status.String(),
		CurrentLatitude:  r.CurrentLatitude,
		CurrentLongitude: r.CurrentLongitude,
		UpdatedAt:        r.UpdatedAt,
	}
}

type OperatorResponse struct {
	ID                kernel.ID `json:"id"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	LicenseNumber     string    `json:"licenseNumber"`
	LicenseExpiryDate time.Time `json:"licenseExpiryDate"`
	Phone             *string   `json:"phone,omitempty"`
	Status            string    `json:"status"`
}

type operatorRow struct {
	ID                int64           `gorm:"column:id"`
	FirstName         string          `gorm:"column:first_name"`
	LastName          string          `gorm:"column:last_name"`
	LicenseNumber     string          `gorm:"column:license_number"`
	LicenseExpiryDate time.Time       `gorm:"column:license_expiry_date"`
	Phone             *string         `gorm:"column:phone"`
	Status            operator.Status `gorm:"column:status"`
}

func (r operatorRow) response() OperatorResponse {
	return OperatorResponse{
		ID:                kernel.ID(r.ID),
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		LicenseNumber:     r.LicenseNumber,
		LicenseExpiryDate: r.LicenseExpiryDate,
		Phone:             r.Phone,
		Status:            r.Status.String(),
	}
}

type NotificationResponse struct {
	ID             kernel.ID  `json:"id"`
	Title          string     `json:"title"`
	Message        string     `json:"message"`
	Type           string     `json:"type"`
	IsRead         bool       `json:"isRead"`
	RelatedOrderID *kernel.ID `json:"relatedOrderId,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

type notificationRow struct {
	ID             int64             `gorm:"column:id"`
	Title          string            `gorm:"column:title"`
	Message        string            `gorm:"column:message"`
	Type           notification.Type `gorm:"column:type"`
	IsRead         bool              `gorm:"column:is_read"`
	RelatedOrderID *int64            `gorm:"column:related_order_id"`
	CreatedAt      time.Time         `gorm:"column:created_at"`
}

func (r notificationRow) response() NotificationResponse {
	return NotificationResponse{
		ID:             kernel.ID(r.ID),
		Title:          r.Title,
		Message:        r.Message,
		Type:           r.Type.String(),
		IsRead:         r.IsRead,
		RelatedOrderID: kernel.OptionalID(r.RelatedOrderID),
		CreatedAt:      r.CreatedAt,
	}
}
