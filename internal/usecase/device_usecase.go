package usecase

import (
	"context"

	"tablenow/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterDeviceInput defines the data required to register a push target.
type RegisterDeviceInput struct {
	CustomerID uuid.UUID `json:"-"`
	FCMToken   string    `json:"fcm_token"`
	Platform   string    `json:"platform"`
}

// SendPushInput defines a push message addressed to one customer's devices.
type SendPushInput struct {
	CustomerID uuid.UUID         `json:"customer_id"`
	Title      string            `json:"title"`
	Body       string            `json:"body"`
	Data       map[string]string `json:"data,omitempty"`
}

// SendPushOutput reports per-token dispatch results.
type SendPushOutput struct {
	SuccessCount int      `json:"success_count"`
	FailureCount int      `json:"failure_count"`
	Deactivated  []string `json:"deactivated,omitempty"`
}

// DeviceUsecase defines the interface for device registration and push dispatch.
type DeviceUsecase interface {
	// RegisterDevice registers a device token or refreshes an existing one.
	RegisterDevice(ctx context.Context, input *RegisterDeviceInput) (*entity.CustomerDevice, error)

	// ListDevices retrieves all active devices for a customer.
	ListDevices(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerDevice, error)

	// SendToCustomer dispatches a push message to every active device of the
	// customer, deactivating tokens the provider reports invalid.
	SendToCustomer(ctx context.Context, input *SendPushInput) (*SendPushOutput, error)
}
