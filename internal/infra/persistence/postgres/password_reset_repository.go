package postgres

import (
	"context"
	"time"

	"tablenow/internal/domain/entity"
	domainerrors "tablenow/internal/domain/errors"
	"tablenow/internal/domain/repository"
	"tablenow/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// passwordResetRepository implements repository.PasswordResetRepository using GORM.
type passwordResetRepository struct {
	db *gorm.DB
}

// NewPasswordResetRepository is the constructor for passwordResetRepository.
func NewPasswordResetRepository(db *gorm.DB) repository.PasswordResetRepository {
	return &passwordResetRepository{db: db}
}

// Create persists a freshly issued reset record.
func (repo *passwordResetRepository) Create(ctx context.Context, reset *entity.PasswordReset) error {
	resetM := fromPasswordResetDomain(reset)

	if err := repo.db.WithContext(ctx).Create(resetM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCustomerNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create password reset record")
	}

	reset.ID = resetM.ID
	reset.CreatedAt = resetM.CreatedAt

	return nil
}

// FindByToken retrieves the record matching the (token, customer) pair.
func (repo *passwordResetRepository) FindByToken(ctx context.Context, customerID uuid.UUID, token string) (*entity.PasswordReset, error) {
	var resetM model.PasswordResetModel
	err := repo.db.WithContext(ctx).
		Where("customer_id = ? AND token = ?", customerID, token).
		First(&resetM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResetNotFound
		}

		return nil, errors.Wrap(err, "failed to find password reset record")
	}

	return toPasswordResetDomain(&resetM), nil
}

// MarkVerified flips the record's verified flag.
func (repo *passwordResetRepository) MarkVerified(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PasswordResetModel{}).
		Where("id = ?", id).
		Update("verified", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark reset record verified")
	}
	if result.RowsAffected == 0 {
		return repository.ErrResetNotFound
	}

	return nil
}

// Delete removes a reset record, consuming it.
func (repo *passwordResetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PasswordResetModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete reset record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrResetNotFound
	}

	return nil
}

// DeleteLiveByCustomerID removes every live (unverified, unexpired) record
// for the customer. Expired and verified rows are left for the regular
// lifecycle to surface their own errors.
func (repo *passwordResetRepository) DeleteLiveByCustomerID(ctx context.Context, customerID uuid.UUID, now time.Time) error {
	err := repo.db.WithContext(ctx).
		Where("customer_id = ? AND verified = ? AND expires_at >= ?", customerID, false, now).
		Delete(&model.PasswordResetModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete live reset records")
	}

	return nil
}

// DeleteByCustomerID removes every reset record for the customer regardless
// of state. Zero affected rows is fine; most customers never requested one.
func (repo *passwordResetRepository) DeleteByCustomerID(ctx context.Context, customerID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Delete(&model.PasswordResetModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete customer reset records")
	}

	return nil
}

// --- Mapper Functions ---

func toPasswordResetDomain(data *model.PasswordResetModel) *entity.PasswordReset {
	if data == nil {
		return nil
	}

	return &entity.PasswordReset{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		Token:      data.Token,
		Code:       data.Code,
		ExpiresAt:  data.ExpiresAt,
		Verified:   data.Verified,
		CreatedAt:  data.CreatedAt,
	}
}

func fromPasswordResetDomain(data *entity.PasswordReset) *model.PasswordResetModel {
	if data == nil {
		return nil
	}

	return &model.PasswordResetModel{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		Token:      data.Token,
		Code:       data.Code,
		ExpiresAt:  data.ExpiresAt,
		Verified:   data.Verified,
	}
}
