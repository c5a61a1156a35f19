package impl

import (
	"context"
	"fmt"
	"log/slog"

	domainerrors "github.com/shipeast-beep/upkeep-guardian-home/internal/domain/errors"

	"github.com/shipeast-beep/upkeep-guardian-home/internal/domain/entity"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/domain/repository"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/domain/service"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/usecase"

	"github.com/google/uuid"
)

type exportService struct {
	logger    *slog.Logger
	store     repository.Store
	documents service.DocumentService
	qrcodes   service.QRCodeService
}

// NewExportService creates a new export service instance. The QR code service
// is optional; when absent, exports carry no share code.
func NewExportService(logger *slog.Logger, store repository.Store, documents service.DocumentService, qrcodes service.QRCodeService) usecase.ExportUsecase {
	return &exportService{
		logger:    logger,
		store:     store,
		documents: documents,
		qrcodes:   qrcodes,
	}
}

// ExportHistory renders the maintenance history of the selected properties as
// a PDF document. Unknown property ids are skipped; an export matching no
// property at all fails.
func (s *exportService) ExportHistory(ctx context.Context, input usecase.ExportHistoryInput) ([]byte, error) {
	sections, err := s.collectSections(ctx, input.PropertyIDs)
	if err != nil {
		return nil, err
	}
	if len(sections) == 0 {
		return nil, domainerrors.ErrNothingToExport
	}

	opts := service.ExportOptions{IncludeImages: input.IncludeImages}
	if s.qrcodes != nil {
		exported := make([]uuid.UUID, 0, len(sections))
		for _, section := range sections {
			exported = append(exported, section.Property.ID)
		}
		shareCode, err := s.qrcodes.GeneratePropertyShareQR(exported)
		if err != nil {
			s.logger.Warn("Failed to generate share code, exporting without it", slog.Any("error", err))
		} else {
			opts.ShareCode = shareCode
		}
	}

	document, err := s.documents.RenderHistory(ctx, sections, opts)
	if err != nil {
		s.logger.Error("Failed to render export document", slog.Any("error", err))

		return nil, domainerrors.ErrExportFailed
	}

	return document, nil
}

// collectSections resolves the requested property ids into export sections.
// An empty id list selects every property.
func (s *exportService) collectSections(ctx context.Context, propertyIDs []uuid.UUID) ([]service.ExportSection, error) {
	var sections []service.ExportSection

	if len(propertyIDs) == 0 {
		properties, err := s.store.ListProperties(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list properties: %w", err)
		}
		for _, property := range properties {
			section, err := s.buildSection(ctx, property)
			if err != nil {
				return nil, err
			}
			sections = append(sections, *section)
		}

		return sections, nil
	}

	for _, id := range propertyIDs {
		property, err := s.store.GetProperty(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get property: %w", err)
		}
		if property == nil {
			continue
		}
		section, err := s.buildSection(ctx, property)
		if err != nil {
			return nil, err
		}
		sections = append(sections, *section)
	}

	return sections, nil
}

func (s *exportService) buildSection(ctx context.Context, property *entity.Property) (*service.ExportSection, error) {
	events, err := s.store.EventsForProperty(ctx, property.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list property events: %w", err)
	}

	return &service.ExportSection{
		Property: property,
		Events:   events,
	}, nil
}
