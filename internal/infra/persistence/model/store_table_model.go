package model

import (
	"time"

	"github.com/google/uuid"
)

// StoreTableModel mirrors the 'store_tables' table.
type StoreTableModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreID   int64     `gorm:"not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Capacity  int       `gorm:"not null"`
	InUse     bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreTableModel) TableName() string {
	return "store_tables"
}
