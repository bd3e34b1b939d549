package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentItemModel mirrors the 'payment_items' table. One row per menu line
// of a reservation's bill.
type PaymentItemModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ReservationID int64     `gorm:"not null;index"`
	StoreID       int64     `gorm:"not null"`
	MenuID        int64     `gorm:"not null"`
	OptionID      int64     `gorm:"not null;default:0"`
	Quantity      int       `gorm:"not null;default:1"`
	Amount        int64     `gorm:"not null"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentItemModel) TableName() string {
	return "payment_items"
}
