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
)

// storeTableRepository implements repository.StoreTableRepository using GORM.
type storeTableRepository struct {
	db *gorm.DB
}

// NewStoreTableRepository is the constructor for storeTableRepository.
func NewStoreTableRepository(db *gorm.DB) repository.StoreTableRepository {
	return &storeTableRepository{db: db}
}

// List retrieves all tables ordered by creation time.
func (repo *storeTableRepository) List(ctx context.Context) ([]*entity.StoreTable, error) {
	var models []model.StoreTableModel
	if err := repo.db.WithContext(ctx).Order("created_at").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list store tables")
	}

	tables := make([]*entity.StoreTable, 0, len(models))
	for i := range models {
		tables = append(tables, toStoreTableDomain(&models[i]))
	}

	return tables, nil
}

// FindByID retrieves a single table by its unique ID.
func (repo *storeTableRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.StoreTable, error) {
	var tableM model.StoreTableModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&tableM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTableNotFound
		}

		return nil, errors.Wrap(err, "failed to find store table by id")
	}

	return toStoreTableDomain(&tableM), nil
}

// Create persists a new table record.
func (repo *storeTableRepository) Create(ctx context.Context, table *entity.StoreTable) error {
	tableM := fromStoreTableDomain(table)

	if err := repo.db.WithContext(ctx).Create(tableM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required table information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create store table")
	}

	table.ID = tableM.ID
	table.CreatedAt = tableM.CreatedAt

	return nil
}

// Update modifies an existing table record.
func (repo *storeTableRepository) Update(ctx context.Context, table *entity.StoreTable) error {
	tableM := fromStoreTableDomain(table)

	err := repo.db.WithContext(ctx).
		Model(&model.StoreTableModel{}).
		Where("id = ?", table.ID).
		Select("name", "capacity", "in_use").
		Updates(tableM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update store table")
	}

	return nil
}

// Delete removes a table record.
func (repo *storeTableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.StoreTableModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete store table")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTableNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toStoreTableDomain(data *model.StoreTableModel) *entity.StoreTable {
	if data == nil {
		return nil
	}

	return &entity.StoreTable{
		ID:        data.ID,
		StoreID:   data.StoreID,
		Name:      data.Name,
		Capacity:  data.Capacity,
		InUse:     data.InUse,
		CreatedAt: data.CreatedAt,
	}
}

func fromStoreTableDomain(data *entity.StoreTable) *model.StoreTableModel {
	if data == nil {
		return nil
	}

	return &model.StoreTableModel{
		ID:       data.ID,
		StoreID:  data.StoreID,
		Name:     data.Name,
		Capacity: data.Capacity,
		InUse:    data.InUse,
	}
}
