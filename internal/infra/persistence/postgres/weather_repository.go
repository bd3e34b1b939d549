package postgres

import (
	"context"
	"time"

	"tablenow/internal/domain/entity"
	domainerrors "tablenow/internal/domain/errors"
	"tablenow/internal/domain/repository"
	"tablenow/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// weatherRepository implements repository.WeatherRepository using GORM.
type weatherRepository struct {
	db *gorm.DB
}

// NewWeatherRepository is the constructor for weatherRepository.
func NewWeatherRepository(db *gorm.DB) repository.WeatherRepository {
	return &weatherRepository{db: db}
}

// List retrieves cached forecasts ordered by date, optionally range-bounded.
func (repo *weatherRepository) List(ctx context.Context, from, to time.Time) ([]*entity.WeatherRecord, error) {
	query := repo.db.WithContext(ctx).Order("forecast_date")
	if !from.IsZero() {
		query = query.Where("forecast_date >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("forecast_date <= ?", to)
	}

	var models []model.WeatherRecordModel
	if err := query.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list weather records")
	}

	records := make([]*entity.WeatherRecord, 0, len(models))
	for i := range models {
		records = append(records, toWeatherRecordDomain(&models[i]))
	}

	return records, nil
}

// FindByDate retrieves the forecast for a single day.
func (repo *weatherRepository) FindByDate(ctx context.Context, date time.Time) (*entity.WeatherRecord, error) {
	var recordM model.WeatherRecordModel
	err := repo.db.WithContext(ctx).Where("forecast_date = ?", date).First(&recordM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrForecastNotFound
		}

		return nil, errors.Wrap(err, "failed to find weather record by date")
	}

	return toWeatherRecordDomain(&recordM), nil
}

// Create persists a new forecast entry.
func (repo *weatherRepository) Create(ctx context.Context, record *entity.WeatherRecord) error {
	recordM := fromWeatherRecordDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateForecast.WrapMessage("forecast already recorded for this date")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create weather record")
	}

	record.CreatedAt = recordM.CreatedAt
	record.UpdatedAt = recordM.UpdatedAt

	return nil
}

// Update modifies the forecast for an existing date.
func (repo *weatherRepository) Update(ctx context.Context, record *entity.WeatherRecord) error {
	recordM := fromWeatherRecordDomain(record)

	result := repo.db.WithContext(ctx).
		Model(&model.WeatherRecordModel{}).
		Where("forecast_date = ?", record.ForecastDate).
		Select("condition", "low", "high").
		Updates(recordM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update weather record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrForecastNotFound
	}

	return nil
}

// Delete removes the forecast for a date.
func (repo *weatherRepository) Delete(ctx context.Context, date time.Time) error {
	result := repo.db.WithContext(ctx).Where("forecast_date = ?", date).Delete(&model.WeatherRecordModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete weather record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrForecastNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toWeatherRecordDomain(data *model.WeatherRecordModel) *entity.WeatherRecord {
	if data == nil {
		return nil
	}

	return &entity.WeatherRecord{
		ForecastDate: data.ForecastDate,
		Condition:    data.Condition,
		Low:          data.Low,
		High:         data.High,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromWeatherRecordDomain(data *entity.WeatherRecord) *model.WeatherRecordModel {
	if data == nil {
		return nil
	}

	return &model.WeatherRecordModel{
		ForecastDate: data.ForecastDate,
		Condition:    data.Condition,
		Low:          data.Low,
		High:         data.High,
	}
}
