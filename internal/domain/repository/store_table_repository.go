// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"tablenow/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTableNotFound is returned when a store table is not found.
var ErrTableNotFound = errors.New("store table not found")

// StoreTableRepository defines the standard operations for seating-table persistence.
type StoreTableRepository interface {
	// List retrieves all tables ordered by creation time.
	List(ctx context.Context) ([]*entity.StoreTable, error)

	// FindByID retrieves a single table by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.StoreTable, error)

	// Create persists a new table record.
	Create(ctx context.Context, table *entity.StoreTable) error

	// Update modifies an existing table record.
	Update(ctx context.Context, table *entity.StoreTable) error

	// Delete removes a table record.
	Delete(ctx context.Context, id uuid.UUID) error
}
