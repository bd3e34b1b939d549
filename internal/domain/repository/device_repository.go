// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"tablenow/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDeviceNotFound is returned when a device registration is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines persistence operations for push-notification
// device registrations.
type DeviceRepository interface {
	// Upsert registers a device token for a customer, reactivating and
	// updating the platform if the (customer, token) pair already exists.
	Upsert(ctx context.Context, device *entity.CustomerDevice) error

	// FindActiveByCustomerID retrieves all active devices for a customer.
	FindActiveByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerDevice, error)

	// DeactivateByTokens marks the given FCM tokens inactive, e.g. after FCM
	// reports them unregistered.
	DeactivateByTokens(ctx context.Context, tokens []string) error

	// DeleteByCustomerID removes all device registrations for a customer.
	DeleteByCustomerID(ctx context.Context, customerID uuid.UUID) error
}
