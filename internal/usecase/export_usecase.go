package usecase

import (
	"context"

	"github.com/google/uuid"
)

// ExportHistoryInput selects the content of a maintenance history export.
// An empty PropertyIDs slice exports every property.
type ExportHistoryInput struct {
	PropertyIDs   []uuid.UUID
	IncludeImages bool
}

// ExportUsecase defines the interface for document export use cases
type ExportUsecase interface {
	// ExportHistory renders the maintenance history of the selected
	// properties as a PDF document
	ExportHistory(ctx context.Context, input ExportHistoryInput) ([]byte, error)
}
