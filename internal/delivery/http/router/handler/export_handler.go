package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/shipeast-beep/upkeep-guardian-home/internal/delivery/http/response"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ExportHandler holds dependencies for document export handlers.
type ExportHandler struct {
	uc     usecase.ExportUsecase
	logger *slog.Logger
}

// NewExportHandler is the constructor for ExportHandler, injected by Fx.
func NewExportHandler(uc usecase.ExportUsecase, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		uc:     uc,
		logger: logger,
	}
}

// ExportPDF handles the maintenance history download. The property_ids query
// parameter is a comma-separated id list; empty means every property.
func (h *ExportHandler) ExportPDF(c echo.Context) error {
	input := usecase.ExportHistoryInput{
		IncludeImages: c.QueryParam("include_images") == "true",
	}

	if raw := strings.TrimSpace(c.QueryParam("property_ids")); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := uuid.Parse(strings.TrimSpace(part))
			if err != nil {
				return response.BadRequest(c, "INVALID_INPUT", "Invalid property id in property_ids")
			}
			input.PropertyIDs = append(input.PropertyIDs, id)
		}
	}

	document, err := h.uc.ExportHistory(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="historie-udrzby.pdf"`)

	return c.Blob(http.StatusOK, "application/pdf", document)
}
