package service

import (
	"context"

	"github.com/shipeast-beep/upkeep-guardian-home/internal/domain/entity"
)

// ExportSection groups the maintenance events of one property for export.
type ExportSection struct {
	Property *entity.Property
	Events   []*entity.MaintenanceEvent
}

// ExportOptions controls the rendering of an export document.
type ExportOptions struct {
	// IncludeImages adds a placeholder block per event carrying a photo.
	IncludeImages bool
	// ShareCode is an optional PNG image embedded on the title page,
	// typically a QR code identifying the exported properties.
	ShareCode []byte
}

// DocumentService defines the interface for rendering maintenance history
// into a downloadable document. A failed render returns no partial output.
type DocumentService interface {
	// RenderHistory renders one table of maintenance events per section,
	// grouped under the property's name, and returns the document bytes.
	RenderHistory(ctx context.Context, sections []ExportSection, opts ExportOptions) ([]byte, error)
}
