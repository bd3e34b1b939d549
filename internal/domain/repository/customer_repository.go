// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and
// the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"tablenow/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCustomerNotFound is a domain-specific error returned when a customer is not found.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines the standard operations for customer persistence.
// The application layer depends on this interface, not the concrete implementation.
type CustomerRepository interface {
	// FindByID retrieves a single customer by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindByEmail retrieves a single customer by their email address,
	// regardless of provider.
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)

	// FindBySubject retrieves the customer holding the given federated
	// provider subject, if any.
	FindBySubject(ctx context.Context, provider entity.Provider, subject string) (*entity.Customer, error)

	// List retrieves all customers ordered by creation time.
	List(ctx context.Context) ([]*entity.Customer, error)

	// Create persists a new customer record.
	Create(ctx context.Context, customer *entity.Customer) error

	// Update modifies an existing customer record.
	Update(ctx context.Context, customer *entity.Customer) error

	// Delete removes a customer record. It is a hard delete.
	Delete(ctx context.Context, id uuid.UUID) error

	// AcquireUpdateLock takes a row-level lock on the customer, serializing
	// concurrent multi-statement flows (e.g. password-reset issuance) for the
	// same customer within the surrounding transaction.
	AcquireUpdateLock(ctx context.Context, id uuid.UUID) error
}
