// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CustomerDevice represents a customer's device registered for push
// notifications. A customer may have several active devices; dispatching a
// notification fans out to all of them.
type CustomerDevice struct {
	ID         uuid.UUID `json:"id"`          // The unique identifier for the device record.
	CustomerID uuid.UUID `json:"customer_id"` // The customer who owns this device.
	FCMToken   string    `json:"fcm_token"`   // Firebase Cloud Messaging registration token.
	Platform   string    `json:"platform"`    // Device platform (ios, android).
	IsActive   bool      `json:"is_active"`   // Cleared when FCM reports the token invalid.
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
