package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tablenow/config"
	deliverycontext "tablenow/internal/delivery/context"
	"tablenow/internal/domain/entity"
	domainerrors "tablenow/internal/domain/errors"
	"tablenow/internal/domain/repository"
	"tablenow/internal/domain/service"
	"tablenow/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Seoul city hall. Used when a fetch request names no coordinates.
const (
	defaultLat = "37.5665"
	defaultLon = "126.9780"
)

// weatherService implements the WeatherUsecase interface.
type weatherService struct {
	txManager repository.TransactionManager
	provider  service.ForecastProvider
	lat, lon  string
	logger    *slog.Logger
}

// WeatherServiceParams holds dependencies for WeatherService, injected by Fx.
type WeatherServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Provider  service.ForecastProvider
	Config    *config.Config
	Logger    *slog.Logger
}

// NewWeatherService is the constructor for weatherService.
func NewWeatherService(params WeatherServiceParams) usecase.WeatherUsecase {
	lat, lon := defaultLat, defaultLon
	if params.Config != nil && params.Config.Weather != nil {
		if params.Config.Weather.DefaultLat != "" {
			lat = params.Config.Weather.DefaultLat
		}
		if params.Config.Weather.DefaultLon != "" {
			lon = params.Config.Weather.DefaultLon
		}
	}

	return &weatherService{
		txManager: params.TxManager,
		provider:  params.Provider,
		lat:       lat,
		lon:       lon,
		logger:    params.Logger,
	}
}

func (srv *weatherService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListForecasts retrieves cached forecasts, optionally within a date range.
func (srv *weatherService) ListForecasts(ctx context.Context, from, to *time.Time) ([]*entity.WeatherRecord, error) {
	var fromDate, toDate time.Time
	if from != nil {
		fromDate = *from
	}
	if to != nil {
		toDate = *to
	}

	var records []*entity.WeatherRecord
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		records, err = repoFactory.WeatherRepo().List(ctx, fromDate, toDate)

		return errors.WithStack(err)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list forecasts")
	}

	return records, nil
}

// GetForecast retrieves the cached forecast for a single day.
func (srv *weatherService) GetForecast(ctx context.Context, date time.Time) (*entity.WeatherRecord, error) {
	var record *entity.WeatherRecord

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		record, err = repoFactory.WeatherRepo().FindByDate(ctx, date)
		if errors.Is(err, repository.ErrForecastNotFound) {
			return domainerrors.ErrForecastNotFound.WrapMessage("forecast lookup failed")
		}

		return errors.WithStack(err)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get forecast")
	}

	return record, nil
}

// CreateForecast stores a forecast for a date that has none yet.
func (srv *weatherService) CreateForecast(ctx context.Context, input *usecase.CreateForecastInput) (*entity.WeatherRecord, error) {
	record := &entity.WeatherRecord{
		ForecastDate: input.ForecastDate,
		Condition:    input.Condition,
		Low:          input.Low,
		High:         input.High,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		weatherRepo := repoFactory.WeatherRepo()

		_, err := weatherRepo.FindByDate(ctx, input.ForecastDate)
		if err == nil {
			return domainerrors.ErrDuplicateForecast.WrapMessage("forecast creation failed")
		}
		if !errors.Is(err, repository.ErrForecastNotFound) {
			return errors.Wrap(err, "failed to find forecast by date")
		}

		return errors.WithStack(weatherRepo.Create(ctx, record))
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute forecast creation transaction")
	}

	return record, nil
}

// UpdateForecast applies the non-nil fields of the input to the stored record.
func (srv *weatherService) UpdateForecast(ctx context.Context, input *usecase.UpdateForecastInput) (*entity.WeatherRecord, error) {
	var updated *entity.WeatherRecord

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		weatherRepo := repoFactory.WeatherRepo()

		record, err := weatherRepo.FindByDate(ctx, input.ForecastDate)
		if errors.Is(err, repository.ErrForecastNotFound) {
			return domainerrors.ErrForecastNotFound.WrapMessage("forecast update failed")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find forecast by date")
		}

		if input.Condition != nil {
			record.Condition = *input.Condition
		}
		if input.Low != nil {
			record.Low = *input.Low
		}
		if input.High != nil {
			record.High = *input.High
		}

		if err := weatherRepo.Update(ctx, record); err != nil {
			return errors.WithStack(err)
		}
		updated = record

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute forecast update transaction")
	}

	return updated, nil
}

// DeleteForecast removes the cached forecast for a date.
func (srv *weatherService) DeleteForecast(ctx context.Context, date time.Time) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		weatherRepo := repoFactory.WeatherRepo()

		if _, err := weatherRepo.FindByDate(ctx, date); err != nil {
			if errors.Is(err, repository.ErrForecastNotFound) {
				return domainerrors.ErrForecastNotFound.WrapMessage("forecast delete failed")
			}

			return errors.Wrap(err, "failed to find forecast by date")
		}

		return errors.WithStack(weatherRepo.Delete(ctx, date))
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute forecast delete transaction")
	}

	return nil
}

// FetchFromAPI pulls daily forecasts from the upstream provider and upserts
// them into the cache. Per-day failures are collected, not fatal.
func (srv *weatherService) FetchFromAPI(ctx context.Context, input *usecase.FetchForecastsInput) (*usecase.FetchForecastsOutput, error) {
	lat, lon := input.Lat, input.Lon
	if lat == "" {
		lat = srv.lat
	}
	if lon == "" {
		lon = srv.lon
	}
	srv.log(ctx).Info("Fetching forecasts from upstream",
		slog.String("lat", lat), slog.String("lon", lon), slog.Bool("overwrite", input.Overwrite))

	forecasts, err := srv.provider.FetchDaily(ctx, lat, lon)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch daily forecasts")
	}

	out := &usecase.FetchForecastsOutput{}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		weatherRepo := repoFactory.WeatherRepo()

		for _, fc := range forecasts {
			existing, err := weatherRepo.FindByDate(ctx, fc.Date)
			switch {
			case errors.Is(err, repository.ErrForecastNotFound):
				record := &entity.WeatherRecord{
					ForecastDate: fc.Date,
					Condition:    fc.Condition,
					Low:          fc.Low,
					High:         fc.High,
				}
				if err := weatherRepo.Create(ctx, record); err != nil {
					out.Errors = append(out.Errors, fmt.Sprintf("%s: %v", fc.Date.Format(time.DateOnly), err))

					continue
				}
				out.Inserted++
			case err != nil:
				out.Errors = append(out.Errors, fmt.Sprintf("%s: %v", fc.Date.Format(time.DateOnly), err))
			case input.Overwrite:
				existing.Condition = fc.Condition
				existing.Low = fc.Low
				existing.High = fc.High
				if err := weatherRepo.Update(ctx, existing); err != nil {
					out.Errors = append(out.Errors, fmt.Sprintf("%s: %v", fc.Date.Format(time.DateOnly), err))

					continue
				}
				out.Updated++
			default:
				out.Skipped++
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute forecast upsert transaction")
	}
	srv.log(ctx).Info("Forecast fetch finished",
		slog.Int("inserted", out.Inserted), slog.Int("updated", out.Updated),
		slog.Int("skipped", out.Skipped), slog.Int("errors", len(out.Errors)))

	return out, nil
}
