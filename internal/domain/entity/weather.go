// Package entity contains the core business objects of the project.
package entity

import "time"

// WeatherRecord is a cached daily forecast entry shown alongside reservation
// dates. One record exists per forecast date; refreshes from the upstream
// provider either skip or overwrite existing dates.
type WeatherRecord struct {
	ForecastDate time.Time `json:"forecast_date"` // The day this forecast applies to, truncated to midnight.
	Condition    string    `json:"condition"`     // Human-readable condition, e.g. "Clear", "Rain".
	Low          float64   `json:"low"`           // Minimum temperature in degrees Celsius.
	High         float64   `json:"high"`          // Maximum temperature in degrees Celsius.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Forecast is a single daily entry fetched from the upstream weather provider,
// before it is persisted as a WeatherRecord.
type Forecast struct {
	Date      time.Time // Forecast day, truncated to midnight.
	Condition string    // Condition group reported by the provider.
	IconCode  string    // Provider icon code, e.g. "01d".
	Low       float64
	High      float64
}
