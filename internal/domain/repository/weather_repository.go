// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"tablenow/internal/domain/entity"
)

// ErrForecastNotFound is returned when no forecast is recorded for a date.
var ErrForecastNotFound = errors.New("forecast not found")

// WeatherRepository defines the standard operations for the forecast cache.
type WeatherRepository interface {
	// List retrieves all cached forecasts ordered by date. When from/to are
	// non-zero the result is limited to that inclusive range.
	List(ctx context.Context, from, to time.Time) ([]*entity.WeatherRecord, error)

	// FindByDate retrieves the forecast for a single day.
	FindByDate(ctx context.Context, date time.Time) (*entity.WeatherRecord, error)

	// Create persists a new forecast entry.
	Create(ctx context.Context, record *entity.WeatherRecord) error

	// Update modifies the forecast for an existing date.
	Update(ctx context.Context, record *entity.WeatherRecord) error

	// Delete removes the forecast for a date.
	Delete(ctx context.Context, date time.Time) error
}
