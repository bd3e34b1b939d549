package model

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetModel mirrors the 'password_resets' table. Rows are consumed
// by deletion; there is no soft delete.
type PasswordResetModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Token      string    `gorm:"type:varchar(64);not null;index"`
	Code       string    `gorm:"type:varchar(10);not null"`
	ExpiresAt  time.Time `gorm:"not null"`
	Verified   bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (PasswordResetModel) TableName() string {
	return "password_resets"
}
