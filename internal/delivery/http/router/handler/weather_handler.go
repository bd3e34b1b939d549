package handler

import (
	"log/slog"
	"net/http"
	"time"

	"tablenow/internal/delivery/http/response"
	"tablenow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Forecast dates travel as "2006-01-02" strings on the wire.
type createForecastRequest struct {
	ForecastDate string  `json:"forecast_date"`
	Condition    string  `json:"condition"`
	Low          float64 `json:"low"`
	High         float64 `json:"high"`
}

type updateForecastRequest struct {
	Condition *string  `json:"condition,omitempty"`
	Low       *float64 `json:"low,omitempty"`
	High      *float64 `json:"high,omitempty"`
}

// WeatherHandler holds dependencies for forecast-cache handlers.
type WeatherHandler struct {
	uc     usecase.WeatherUsecase
	logger *slog.Logger
}

// NewWeatherHandler is the constructor for WeatherHandler, injected by Fx.
func NewWeatherHandler(uc usecase.WeatherUsecase, logger *slog.Logger) *WeatherHandler {
	return &WeatherHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListForecasts returns cached forecasts, optionally bounded by ?from= and ?to=.
func (h *WeatherHandler) ListForecasts(c echo.Context) error {
	var from, to *time.Time
	if raw := c.QueryParam("from"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid from date, expected YYYY-MM-DD")
		}
		from = &parsed
	}
	if raw := c.QueryParam("to"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid to date, expected YYYY-MM-DD")
		}
		to = &parsed
	}

	records, err := h.uc.ListForecasts(c.Request().Context(), from, to)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "Forecasts retrieved successfully")
}

// GetForecast returns the cached forecast for one date.
func (h *WeatherHandler) GetForecast(c echo.Context) error {
	date, err := time.Parse(time.DateOnly, c.Param("date"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid date, expected YYYY-MM-DD")
	}

	record, err := h.uc.GetForecast(c.Request().Context(), date)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, record, "Forecast retrieved successfully")
}

// CreateForecast stores a forecast entry by hand.
func (h *WeatherHandler) CreateForecast(c echo.Context) error {
	var req *createForecastRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid forecast input")
	}
	if req == nil {
		return response.BadRequest(c, "INVALID_INPUT", "Request body is required")
	}

	date, err := time.Parse(time.DateOnly, req.ForecastDate)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid forecast_date, expected YYYY-MM-DD")
	}

	record, err := h.uc.CreateForecast(c.Request().Context(), &usecase.CreateForecastInput{
		ForecastDate: date,
		Condition:    req.Condition,
		Low:          req.Low,
		High:         req.High,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, record, "Forecast created successfully")
}

// UpdateForecast applies a partial update to a stored forecast.
func (h *WeatherHandler) UpdateForecast(c echo.Context) error {
	date, err := time.Parse(time.DateOnly, c.Param("date"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid date, expected YYYY-MM-DD")
	}

	var req *updateForecastRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if req == nil {
		req = &updateForecastRequest{}
	}

	record, err := h.uc.UpdateForecast(c.Request().Context(), &usecase.UpdateForecastInput{
		ForecastDate: date,
		Condition:    req.Condition,
		Low:          req.Low,
		High:         req.High,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, record, "Forecast updated successfully")
}

// DeleteForecast removes a stored forecast.
func (h *WeatherHandler) DeleteForecast(c echo.Context) error {
	date, err := time.Parse(time.DateOnly, c.Param("date"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid date, expected YYYY-MM-DD")
	}

	if err := h.uc.DeleteForecast(c.Request().Context(), date); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "deleted"}, "Forecast deleted successfully")
}

// FetchForecasts pulls daily forecasts from the upstream provider into the cache.
func (h *WeatherHandler) FetchForecasts(c echo.Context) error {
	var input *usecase.FetchForecastsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid fetch input")
	}
	if input == nil {
		input = &usecase.FetchForecastsInput{}
	}

	output, err := h.uc.FetchFromAPI(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Forecasts fetched successfully")
}
