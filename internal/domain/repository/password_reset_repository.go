// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"tablenow/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrResetNotFound is returned when no password-reset record matches a lookup.
var ErrResetNotFound = errors.New("password reset record not found")

// PasswordResetRepository defines persistence operations for the single-use
// password-reset verification records.
type PasswordResetRepository interface {
	// Create persists a freshly issued reset record.
	Create(ctx context.Context, reset *entity.PasswordReset) error

	// FindByToken retrieves the record matching the (token, customer) pair.
	// The pair is the capability: a token alone never resolves to a record
	// owned by another customer.
	FindByToken(ctx context.Context, customerID uuid.UUID, token string) (*entity.PasswordReset, error)

	// MarkVerified flips the record's verified flag. It is a one-way transition.
	MarkVerified(ctx context.Context, id uuid.UUID) error

	// Delete removes a reset record, consuming it.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteLiveByCustomerID removes every live (unverified, unexpired as of
	// now) record for the customer. Used to enforce at-most-one-in-flight.
	DeleteLiveByCustomerID(ctx context.Context, customerID uuid.UUID, now time.Time) error

	// DeleteByCustomerID removes every record for the customer regardless of
	// state. Used when the customer row itself is removed.
	DeleteByCustomerID(ctx context.Context, customerID uuid.UUID) error
}
