package model

import "time"

// WeatherRecordModel mirrors the 'weather_records' table. The forecast date
// is the natural key; one row per calendar day.
type WeatherRecordModel struct {
	ForecastDate time.Time `gorm:"type:date;primary_key"`
	Condition    string    `gorm:"type:varchar(50);not null"`
	Low          float64   `gorm:"not null"`
	High         float64   `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (WeatherRecordModel) TableName() string {
	return "weather_records"
}
