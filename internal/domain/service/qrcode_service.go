package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateCheckInQR generates a QR code for table check-in
	GenerateCheckInQR(tableID uuid.UUID) ([]byte, error)

	// ParseCheckInQR parses QR code data and returns the table ID
	ParseCheckInQR(qrData string) (uuid.UUID, error)
}
