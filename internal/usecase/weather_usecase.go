package usecase

import (
	"context"
	"time"

	"tablenow/internal/domain/entity"
)

// CreateForecastInput defines the data required to store a daily forecast.
type CreateForecastInput struct {
	ForecastDate time.Time
	Condition    string
	Low          float64
	High         float64
}

// UpdateForecastInput defines the mutable fields of a stored forecast.
// Nil pointers leave the stored value untouched.
type UpdateForecastInput struct {
	ForecastDate time.Time
	Condition    *string
	Low          *float64
	High         *float64
}

// FetchForecastsInput controls a pull from the upstream weather API.
// Lat/Lon default to the configured city when blank.
type FetchForecastsInput struct {
	Lat       string `json:"lat"`
	Lon       string `json:"lon"`
	Overwrite bool   `json:"overwrite"`
}

// FetchForecastsOutput reports the outcome of an upstream pull.
type FetchForecastsOutput struct {
	Inserted int      `json:"inserted"`
	Updated  int      `json:"updated"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// WeatherUsecase defines the interface for the daily-forecast cache.
type WeatherUsecase interface {
	ListForecasts(ctx context.Context, from, to *time.Time) ([]*entity.WeatherRecord, error)
	GetForecast(ctx context.Context, date time.Time) (*entity.WeatherRecord, error)
	CreateForecast(ctx context.Context, input *CreateForecastInput) (*entity.WeatherRecord, error)
	UpdateForecast(ctx context.Context, input *UpdateForecastInput) (*entity.WeatherRecord, error)
	DeleteForecast(ctx context.Context, date time.Time) error

	// FetchFromAPI pulls daily forecasts from the upstream provider and
	// upserts them into the cache.
	FetchFromAPI(ctx context.Context, input *FetchForecastsInput) (*FetchForecastsOutput, error)
}
