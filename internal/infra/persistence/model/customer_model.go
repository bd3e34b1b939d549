// Package model contains the GORM persistence structs mirroring the database
// schema. The domain layer never sees these types; repositories map them to
// entities at the boundary.
package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerModel mirrors the 'customers' table. PostgreSQL generates UUIDs via
// uuid_generate_v7(). A row either carries a password hash (local provider) or
// a provider subject (google), never both.
type CustomerModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name            string    `gorm:"type:varchar(100);not null"`
	Phone           *string   `gorm:"type:varchar(30)"`
	Email           string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash    *string   `gorm:"type:varchar(255)"`
	Provider        string    `gorm:"type:varchar(20);not null;default:local"`
	ProviderSubject *string   `gorm:"type:varchar(255);uniqueIndex:idx_customers_provider_subject"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
