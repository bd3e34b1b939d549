// Package weather implements the forecast provider against the
// OpenWeatherMap One Call API.
package weather

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"tablenow/config"
	"tablenow/internal/domain/entity"
	"tablenow/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultBaseURL = "https://api.openweathermap.org/data/3.0/onecall"
	defaultTimeout = 10 * time.Second

	// The One Call API returns 8 daily entries; we never store more.
	maxDailyEntries = 8
)

// oneCallResponse mirrors the parts of the One Call payload we consume.
type oneCallResponse struct {
	Daily []oneCallDaily `json:"daily"`
}

type oneCallDaily struct {
	Dt   int64 `json:"dt"`
	Temp struct {
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	} `json:"temp"`
	Weather []oneCallWeather `json:"weather"`
}

type oneCallWeather struct {
	Main string `json:"main"`
	Icon string `json:"icon"`
}

type openWeatherProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewOpenWeatherProvider creates a ForecastProvider backed by OpenWeatherMap.
func NewOpenWeatherProvider(cfg *config.Config, logger *slog.Logger) (service.ForecastProvider, error) {
	if cfg.Weather == nil || cfg.Weather.APIKey == "" {
		return nil, errors.New("weather api key must be provided")
	}

	baseURL := defaultBaseURL
	if cfg.Weather.BaseURL != "" {
		baseURL = cfg.Weather.BaseURL
	}
	timeout := defaultTimeout
	if cfg.Weather.Timeout > 0 {
		timeout = cfg.Weather.Timeout
	}

	return &openWeatherProvider{
		apiKey:  cfg.Weather.APIKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}, nil
}

// FetchDaily pulls the daily forecasts for the given coordinates.
func (p *openWeatherProvider) FetchDaily(ctx context.Context, lat, lon string) ([]*entity.Forecast, error) {
	query := url.Values{}
	query.Set("lat", lat)
	query.Set("lon", lon)
	query.Set("exclude", "current,minutely,hourly,alerts")
	query.Set("units", "metric")
	query.Set("appid", p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build forecast request")
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to call weather api")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("weather api returned status %d", resp.StatusCode)
	}

	var payload oneCallResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode weather api response")
	}

	forecasts := mapDailyForecasts(&payload)
	p.logger.Debug("Fetched daily forecasts",
		slog.String("lat", lat), slog.String("lon", lon), slog.Int("days", len(forecasts)))

	return forecasts, nil
}

// mapDailyForecasts converts the wire payload into domain forecasts,
// truncating the date to UTC midnight.
func mapDailyForecasts(payload *oneCallResponse) []*entity.Forecast {
	limit := len(payload.Daily)
	if limit > maxDailyEntries {
		limit = maxDailyEntries
	}

	forecasts := make([]*entity.Forecast, 0, limit)
	for _, day := range payload.Daily[:limit] {
		fc := &entity.Forecast{
			Date: time.Unix(day.Dt, 0).UTC().Truncate(24 * time.Hour),
			Low:  day.Temp.Min,
			High: day.Temp.Max,
		}
		if len(day.Weather) > 0 {
			fc.Condition = day.Weather[0].Main
			fc.IconCode = day.Weather[0].Icon
		}
		forecasts = append(forecasts, fc)
	}

	return forecasts
}
