package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for generating property share codes.
type QRCodeService interface {
	// GeneratePropertyShareQR generates a PNG QR code identifying a set of
	// exported properties.
	GeneratePropertyShareQR(propertyIDs []uuid.UUID) ([]byte, error)

	// ParsePropertyShareQR parses share-code data back into property IDs.
	ParsePropertyShareQR(qrData string) ([]uuid.UUID, error)
}
