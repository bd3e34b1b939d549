package usecase

import (
	"context"

	"tablenow/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTableInput defines the data required to register a seating table.
type CreateTableInput struct {
	StoreID  int64  `json:"store_id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// UpdateTableInput defines the mutable fields of a seating table.
// Nil pointers leave the stored value untouched.
type UpdateTableInput struct {
	TableID  uuid.UUID `json:"-"`
	Name     *string   `json:"name,omitempty"`
	Capacity *int      `json:"capacity,omitempty"`
	InUse    *bool     `json:"in_use,omitempty"`
}

// TableUsecase defines the interface for store seating-table management.
type TableUsecase interface {
	ListTables(ctx context.Context, storeID int64) ([]*entity.StoreTable, error)
	GetTable(ctx context.Context, tableID uuid.UUID) (*entity.StoreTable, error)
	CreateTable(ctx context.Context, input *CreateTableInput) (*entity.StoreTable, error)
	UpdateTable(ctx context.Context, input *UpdateTableInput) (*entity.StoreTable, error)
	DeleteTable(ctx context.Context, tableID uuid.UUID) error

	// CheckInQR renders a PNG QR code encoding the table's check-in payload.
	CheckInQR(ctx context.Context, tableID uuid.UUID) ([]byte, error)
}
