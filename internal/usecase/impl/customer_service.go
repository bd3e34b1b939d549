package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "tablenow/internal/delivery/context"
	"tablenow/internal/domain/entity"
	domainerrors "tablenow/internal/domain/errors"
	"tablenow/internal/domain/repository"
	"tablenow/internal/domain/service"
	"tablenow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// customerService implements the CustomerUsecase interface.
type customerService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCustomers retrieves every customer record.
func (srv *customerService) ListCustomers(ctx context.Context) ([]*entity.Customer, error) {
	var customers []*entity.Customer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		customers, err = repoFactory.CustomerRepo().List(ctx)

		return errors.WithStack(err)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return customers, nil
}

// GetCustomer retrieves a single customer by ID.
func (srv *customerService) GetCustomer(ctx context.Context, customerID uuid.UUID) (*entity.Customer, error) {
	var customer *entity.Customer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		customer, err = repoFactory.CustomerRepo().FindByID(ctx, customerID)
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return domainerrors.ErrCustomerNotFound.WrapMessage("customer lookup failed")
		}

		return errors.WithStack(err)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get customer")
	}

	return customer, nil
}

// UpdateCustomer applies the non-nil fields of the input to the stored record.
func (srv *customerService) UpdateCustomer(ctx context.Context, input *usecase.UpdateCustomerInput) (*entity.Customer, error) {
	srv.log(ctx).Info("Updating customer", slog.String("customerID", input.CustomerID.String()))

	var hashedPassword string
	if input.Password != nil {
		if err := srv.hasher.ValidatePasswordStrength(*input.Password); err != nil {
			return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
		}
		var err error
		hashedPassword, err = srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during update")
		}
	}

	var updated *entity.Customer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.CustomerRepo()

		customer, err := customerRepo.FindByID(ctx, input.CustomerID)
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return domainerrors.ErrCustomerNotFound.WrapMessage("customer update failed")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find customer by id")
		}

		if input.Email != nil && *input.Email != customer.Email {
			other, err := customerRepo.FindByEmail(ctx, *input.Email)
			if err == nil && other.ID != customer.ID {
				return domainerrors.ErrDuplicateEmail.WrapMessage("customer update failed")
			}
			if err != nil && !errors.Is(err, repository.ErrCustomerNotFound) {
				return errors.Wrap(err, "failed to find customer by email")
			}
			customer.Email = *input.Email
		}
		if input.Name != nil {
			customer.Name = *input.Name
		}
		if input.Phone != nil {
			// Blank or whitespace-only phone normalizes to absent.
			customer.Phone = strings.TrimSpace(*input.Phone)
		}
		if input.Password != nil {
			if customer.IsSocial() {
				return domainerrors.ErrSocialAccountImmutable.WrapMessage("social accounts have no local password")
			}
			customer.PasswordHash = hashedPassword
		}

		if err := customerRepo.Update(ctx, customer); err != nil {
			return errors.WithStack(err)
		}
		updated = customer

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Customer update failed", slog.String("customerID", input.CustomerID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute customer update transaction")
	}

	return updated, nil
}

// DeleteCustomer hard-deletes a customer together with their device
// registrations and any pending password resets.
func (srv *customerService) DeleteCustomer(ctx context.Context, customerID uuid.UUID) error {
	srv.log(ctx).Info("Deleting customer", slog.String("customerID", customerID.String()))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.CustomerRepo()

		if _, err := customerRepo.FindByID(ctx, customerID); err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return domainerrors.ErrCustomerNotFound.WrapMessage("customer delete failed")
			}

			return errors.Wrap(err, "failed to find customer by id")
		}

		if err := repoFactory.DeviceRepo().DeleteByCustomerID(ctx, customerID); err != nil {
			return errors.Wrap(err, "failed to delete customer devices")
		}

		// Pending password resets would otherwise survive the row removal.
		if err := repoFactory.ResetRepo().DeleteByCustomerID(ctx, customerID); err != nil {
			return errors.Wrap(err, "failed to delete customer reset records")
		}

		return errors.WithStack(customerRepo.Delete(ctx, customerID))
	})

	if err != nil {
		srv.log(ctx).Warn("Customer delete failed", slog.String("customerID", customerID.String()), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute customer delete transaction")
	}

	return nil
}
