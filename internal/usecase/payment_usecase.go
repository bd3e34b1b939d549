package usecase

import (
	"context"

	"tablenow/internal/domain/entity"
)

// PaymentLineInput is a single line item inside a batch insert.
type PaymentLineInput struct {
	StoreID  int64 `json:"store_id"`
	MenuID   int64 `json:"menu_id"`
	OptionID int64 `json:"option_id"`
	Quantity int   `json:"quantity"`
	Amount   int64 `json:"amount"`
}

// InsertPaymentsInput defines a batch of line items for one reservation.
type InsertPaymentsInput struct {
	ReservationID int64              `json:"reservation_id"`
	Lines         []PaymentLineInput `json:"lines"`
}

// PaymentUsecase defines the interface for payment line-item bookkeeping.
type PaymentUsecase interface {
	ListPayments(ctx context.Context) ([]*entity.PaymentItem, error)
	ListByReservation(ctx context.Context, reservationID int64) ([]*entity.PaymentItem, error)
	InsertPayments(ctx context.Context, input *InsertPaymentsInput) ([]*entity.PaymentItem, error)
}
