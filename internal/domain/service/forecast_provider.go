package service

import (
	"context"

	"tablenow/internal/domain/entity"
)

// ForecastProvider fetches daily forecasts from an upstream weather API.
type ForecastProvider interface {
	// FetchDaily returns the daily forecasts for the given coordinates,
	// today included, in chronological order.
	FetchDaily(ctx context.Context, lat, lon string) ([]*entity.Forecast, error)
}
