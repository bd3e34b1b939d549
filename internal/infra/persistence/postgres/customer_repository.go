package postgres

import (
	"context"
	"strings"

	"tablenow/internal/domain/entity"
	domainerrors "tablenow/internal/domain/errors"
	"tablenow/internal/domain/repository"
	"tablenow/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// customerRepository implements the repository.CustomerRepository interface using GORM.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
// It returns the repository as a repository.CustomerRepository interface, adhering to dependency inversion.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

// FindByID retrieves a single customer by their unique ID.
func (repo *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerM model.CustomerModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&customerM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toCustomerDomain(&customerM), nil
}

// FindByEmail retrieves a single customer by their email address, regardless of provider.
func (repo *customerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	var customerM model.CustomerModel
	err := repo.db.WithContext(ctx).Where("email = ?", email).First(&customerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by email")
	}

	return toCustomerDomain(&customerM), nil
}

// FindBySubject retrieves the customer holding the given federated provider subject.
func (repo *customerRepository) FindBySubject(ctx context.Context, provider entity.Provider, subject string) (*entity.Customer, error) {
	var customerM model.CustomerModel
	err := repo.db.WithContext(ctx).
		Where("provider = ? AND provider_subject = ?", provider.String(), subject).
		First(&customerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by subject")
	}

	return toCustomerDomain(&customerM), nil
}

// List retrieves all customers ordered by creation time.
func (repo *customerRepository) List(ctx context.Context) ([]*entity.Customer, error) {
	var models []model.CustomerModel
	if err := repo.db.WithContext(ctx).Order("created_at").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	customers := make([]*entity.Customer, 0, len(models))
	for i := range models {
		customers = append(customers, toCustomerDomain(&models[i]))
	}

	return customers, nil
}

// Create persists a new customer record.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateEmail.WrapMessage("email or subject already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required customer information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	// Update the entity with the generated ID and timestamp.
	customer.ID = customerM.ID
	customer.CreatedAt = customerM.CreatedAt

	return nil
}

// Update modifies an existing customer record. Nullable columns are written
// explicitly so clearing a credential actually lands as NULL.
func (repo *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	err := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", customer.ID).
		Select("name", "phone", "email", "password_hash", "provider", "provider_subject").
		Updates(customerM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateEmail.WrapMessage("email or subject already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required customer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update customer")
	}

	return nil
}

// Delete removes a customer record. It is a hard delete.
func (repo *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CustomerModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete customer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// AcquireUpdateLock takes a SELECT ... FOR UPDATE lock on the customer row.
// It only makes sense inside a transaction.
func (repo *customerRepository) AcquireUpdateLock(ctx context.Context, id uuid.UUID) error {
	var customerM model.CustomerModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&customerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrCustomerNotFound
		}

		return errors.Wrap(err, "failed to lock customer row")
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toCustomerDomain converts a GORM CustomerModel to a domain Customer entity.
func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	customer := &entity.Customer{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Provider:  entity.Provider(data.Provider),
		CreatedAt: data.CreatedAt,
	}
	if data.Phone != nil {
		customer.Phone = *data.Phone
	}
	if data.PasswordHash != nil {
		customer.PasswordHash = *data.PasswordHash
	}
	if data.ProviderSubject != nil {
		customer.ProviderSubject = *data.ProviderSubject
	}

	return customer
}

// fromCustomerDomain converts a domain Customer entity to a GORM CustomerModel.
// Blank optional fields normalize to NULL.
func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	customerM := &model.CustomerModel{
		ID:       data.ID,
		Name:     data.Name,
		Email:    data.Email,
		Provider: data.Provider.String(),
	}
	if phone := strings.TrimSpace(data.Phone); phone != "" {
		customerM.Phone = &phone
	}
	if data.PasswordHash != "" {
		customerM.PasswordHash = &data.PasswordHash
	}
	if data.ProviderSubject != "" {
		customerM.ProviderSubject = &data.ProviderSubject
	}

	return customerM
}
