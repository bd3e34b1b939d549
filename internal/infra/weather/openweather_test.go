package weather

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablenow/config"
)

func newTestProvider(t *testing.T, baseURL string) *openWeatherProvider {
	t.Helper()

	cfg := &config.Config{
		Weather: &config.WeatherConfig{
			APIKey:  "test_api_key",
			BaseURL: baseURL,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	provider, err := NewOpenWeatherProvider(cfg, logger)
	require.NoError(t, err)

	return provider.(*openWeatherProvider)
}

func TestNewOpenWeatherProvider_MissingAPIKey(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	provider, err := NewOpenWeatherProvider(&config.Config{}, logger)
	assert.Error(t, err)
	assert.Nil(t, provider)
	assert.Contains(t, err.Error(), "weather api key must be provided")
}

func TestOpenWeatherProvider_FetchDaily(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"lat":   r.URL.Query().Get("lat"),
			"lon":   r.URL.Query().Get("lon"),
			"appid": r.URL.Query().Get("appid"),
			"units": r.URL.Query().Get("units"),
		}
		w.Header().Set("Content-Type", "application/json")
		// 2026-08-31T12:00:00Z and 2026-09-01T12:00:00Z
		_, _ = w.Write([]byte(`{
			"daily": [
				{"dt": 1788177600, "temp": {"min": 24.1, "max": 31.6}, "weather": [{"main": "Rain", "icon": "10d"}]},
				{"dt": 1788264000, "temp": {"min": 23.4, "max": 30.2}, "weather": [{"main": "Clouds", "icon": "03d"}]}
			]
		}`))
	}))
	defer server.Close()

	provider := newTestProvider(t, server.URL)

	forecasts, err := provider.FetchDaily(context.Background(), "25.0330", "121.5654")
	require.NoError(t, err)
	require.Len(t, forecasts, 2)

	assert.Equal(t, "25.0330", gotQuery["lat"])
	assert.Equal(t, "121.5654", gotQuery["lon"])
	assert.Equal(t, "test_api_key", gotQuery["appid"])
	assert.Equal(t, "metric", gotQuery["units"])

	first := forecasts[0]
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), first.Date)
	assert.InDelta(t, 24.1, first.Low, 0.001)
	assert.InDelta(t, 31.6, first.High, 0.001)
	assert.Equal(t, "Rain", first.Condition)
	assert.Equal(t, "10d", first.IconCode)

	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), forecasts[1].Date)
	assert.Equal(t, "Clouds", forecasts[1].Condition)
}

func TestOpenWeatherProvider_FetchDaily_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	provider := newTestProvider(t, server.URL)

	forecasts, err := provider.FetchDaily(context.Background(), "25.0330", "121.5654")
	assert.Error(t, err)
	assert.Nil(t, forecasts)
	assert.Contains(t, err.Error(), "weather api returned status 401")
}

func TestOpenWeatherProvider_FetchDaily_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	provider := newTestProvider(t, server.URL)

	forecasts, err := provider.FetchDaily(context.Background(), "25.0330", "121.5654")
	assert.Error(t, err)
	assert.Nil(t, forecasts)
	assert.Contains(t, err.Error(), "failed to decode weather api response")
}

func TestMapDailyForecasts_CapsEntries(t *testing.T) {
	payload := &oneCallResponse{}
	base := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		payload.Daily = append(payload.Daily, dailyEntry(base.AddDate(0, 0, i).Unix(), 20, 30))
	}

	forecasts := mapDailyForecasts(payload)
	assert.Len(t, forecasts, maxDailyEntries)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), forecasts[0].Date)
}

func TestMapDailyForecasts_NoWeatherBlock(t *testing.T) {
	payload := &oneCallResponse{Daily: []oneCallDaily{dailyEntry(1788177600, 24, 30)}}
	payload.Daily[0].Weather = nil

	forecasts := mapDailyForecasts(payload)
	require.Len(t, forecasts, 1)
	assert.Empty(t, forecasts[0].Condition)
	assert.Empty(t, forecasts[0].IconCode)
}

func dailyEntry(dt int64, low, high float64) oneCallDaily {
	var day oneCallDaily
	day.Dt = dt
	day.Temp.Min = low
	day.Temp.Max = high
	day.Weather = []oneCallWeather{{Main: "Clear", Icon: "01d"}}

	return day
}
