package usecase

import (
	"context"

	"tablenow/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateCustomerInput defines the mutable fields of a customer record.
// Nil pointers leave the stored value untouched.
type UpdateCustomerInput struct {
	CustomerID uuid.UUID `json:"-"`
	Name       *string   `json:"name,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	Email      *string   `json:"email,omitempty"`
	Password   *string   `json:"password,omitempty"`
}

// CustomerUsecase defines the interface for customer account management.
type CustomerUsecase interface {
	ListCustomers(ctx context.Context) ([]*entity.Customer, error)
	GetCustomer(ctx context.Context, customerID uuid.UUID) (*entity.Customer, error)
	UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error)
	DeleteCustomer(ctx context.Context, customerID uuid.UUID) error
}
