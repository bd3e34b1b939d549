package postgres

import (
	"context"

	"tablenow/internal/domain/entity"
	domainerrors "tablenow/internal/domain/errors"
	"tablenow/internal/domain/repository"
	"tablenow/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements repository.DeviceRepository using GORM.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

// Upsert registers a device token for a customer, reactivating and updating
// the platform if the (customer, token) pair already exists.
func (repo *deviceRepository) Upsert(ctx context.Context, device *entity.CustomerDevice) error {
	deviceM := fromCustomerDeviceDomain(device)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "customer_id"}, {Name: "fcm_token"}},
			DoUpdates: clause.AssignmentColumns([]string{"platform", "is_active", "updated_at"}),
		}).
		Create(deviceM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCustomerNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindActiveByCustomerID retrieves all active devices for a customer.
func (repo *deviceRepository) FindActiveByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerDevice, error) {
	var models []model.CustomerDeviceModel
	err := repo.db.WithContext(ctx).
		Where("customer_id = ? AND is_active = ?", customerID, true).
		Order("created_at").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices")
	}

	devices := make([]*entity.CustomerDevice, 0, len(models))
	for i := range models {
		devices = append(devices, toCustomerDeviceDomain(&models[i]))
	}

	return devices, nil
}

// DeactivateByTokens marks the given FCM tokens inactive.
func (repo *deviceRepository) DeactivateByTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	err := repo.db.WithContext(ctx).
		Model(&model.CustomerDeviceModel{}).
		Where("fcm_token IN ?", tokens).
		Update("is_active", false).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to deactivate devices")
	}

	return nil
}

// DeleteByCustomerID removes all device registrations for a customer.
func (repo *deviceRepository) DeleteByCustomerID(ctx context.Context, customerID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Delete(&model.CustomerDeviceModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete customer devices")
	}

	return nil
}

// --- Mapper Functions ---

func toCustomerDeviceDomain(data *model.CustomerDeviceModel) *entity.CustomerDevice {
	if data == nil {
		return nil
	}

	return &entity.CustomerDevice{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		FCMToken:   data.FCMToken,
		Platform:   data.Platform,
		IsActive:   data.IsActive,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromCustomerDeviceDomain(data *entity.CustomerDevice) *model.CustomerDeviceModel {
	if data == nil {
		return nil
	}

	return &model.CustomerDeviceModel{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		FCMToken:   data.FCMToken,
		Platform:   data.Platform,
		IsActive:   data.IsActive,
	}
}
