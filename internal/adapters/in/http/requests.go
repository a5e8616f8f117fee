package http

import (
	"time"

	"fueltrack/internal/core/application/usecases/commands"
	"fueltrack/internal/core/domain/model/kernel"
)

type RegisterRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Phone     *string `json:"phone"`
	Role      *string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type CreateOrderRequest struct {
	UserID                *int64     `json:"userId"`
	FuelType              string     `json:"fuelType"`
	Quantity              string     `json:"quantity"`
	PricePerLiter         string     `json:"pricePerLiter"`
	DeliveryAddress       string     `json:"deliveryAddress"`
	DeliveryLatitude      *float64   `json:"deliveryLatitude"`
	DeliveryLongitude     *float64   `json:"deliveryLongitude"`
	EstimatedDeliveryTime *time.Time `json:"estimatedDeliveryTime"`
}

type AssignOrderRequest struct {
	VehicleID             int64      `json:"vehicleId"`
	OperatorID            int64      `json:"operatorId"`
	EstimatedDeliveryTime *time.Time `json:"estimatedDeliveryTime"`
}

type CreatePaymentRequest struct {
	PaymentMethodID int64  `json:"paymentMethodId"`
	Amount          string `json:"amount"`
}

type CompletePaymentRequest struct {
	TransactionID string `json:"transactionId"`
}

type AddPaymentMethodRequest struct {
	CardHolderName string `json:"cardHolderName"`
	CardNumber     string `json:"cardNumber"`
	CardType       string `json:"cardType"`
	ExpiryYear     int    `json:"expiryYear"`
	ExpiryMonth    int    `json:"expiryMonth"`
	IsDefault      bool   `json:"isDefault"`
}

type CreateVehicleRequest struct {
	LicensePlate     string   `json:"licensePlate"`
	Brand            string   `json:"brand"`
	Model            string   `json:"model"`
	Year             int      `json:"year"`
	Capacity         string   `json:"capacity"`
	CurrentLatitude  *float64 `json:"currentLatitude"`
	CurrentLongitude *float64 `json:"currentLongitude"`
}

type StatusRequest struct {
	Status string `json:"status"`
}

type LocationRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type CreateOperatorRequest struct {
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	LicenseNumber     string    `json:"licenseNumber"`
	LicenseExpiryDate time.Time `json:"licenseExpiryDate"`
	Phone             *string   `json:"phone"`
}

type RenewLicenseRequest struct {
	LicenseExpiryDate time.Time `json:"licenseExpiryDate"`
}

type CreatedResponse struct {
	ID kernel.ID `json:"id"`
}

type AuthResponse struct {
	UserID                kernel.ID `json:"userId"`
	Email                 string    `json:"email"`
	Role                  string    `json:"role"`
	AccessToken           string    `json:"accessToken"`
	AccessTokenExpiresAt  time.Time `json:"accessTokenExpiresAt"`
	RefreshToken          string    `json:"refreshToken"`
	RefreshTokenExpiresAt time.Time `json:"refreshTokenExpiresAt"`
}

func newAuthResponse(tokens commands.AuthTokens) AuthResponse {
	return AuthResponse{
		UserID:                tokens.UserID,
		Email:                 tokens.Email,
		Role:                  tokens.Role.String(),
		AccessToken:           tokens.AccessToken,
		AccessTokenExpiresAt:  tokens.AccessTokenExpiresAt,
		RefreshToken:          tokens.RefreshToken,
		RefreshTokenExpiresAt: tokens.RefreshTokenExpiresAt,
	}
}

type HealthResponse struct {
	Status string `json:"status"`
}
