// Package qrcode generates the share codes embedded in exported documents.
package qrcode

import (
	"encoding/json"
	"fmt"

	"github.com/shipeast-beep/upkeep-guardian-home/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	PropertyIDs []string `json:"property_ids"`
	Type        string   `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePropertyShareQR generates a PNG QR code identifying a set of
// exported properties.
func (s *qrcodeService) GeneratePropertyShareQR(propertyIDs []uuid.UUID) ([]byte, error) {
	ids := make([]string, 0, len(propertyIDs))
	for _, id := range propertyIDs {
		ids = append(ids, id.String())
	}

	data := QRCodeData{
		PropertyIDs: ids,
		Type:        "property_share",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParsePropertyShareQR parses share-code data back into property IDs.
func (s *qrcodeService) ParsePropertyShareQR(qrData string) ([]uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != "property_share" {
		return nil, fmt.Errorf("unexpected QR code type: %s", data.Type)
	}

	ids := make([]uuid.UUID, 0, len(data.PropertyIDs))
	for _, raw := range data.PropertyIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid property ID in QR code: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
