// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"tablenow/internal/domain/entity"
)

// PaymentRepository defines the standard operations for payment line items.
type PaymentRepository interface {
	// List retrieves all payment line items ordered by creation time.
	List(ctx context.Context) ([]*entity.PaymentItem, error)

	// ListByReservation retrieves the line items belonging to one reservation.
	ListByReservation(ctx context.Context, reservationID int64) ([]*entity.PaymentItem, error)

	// Create persists a single payment line item.
	Create(ctx context.Context, item *entity.PaymentItem) error
}
