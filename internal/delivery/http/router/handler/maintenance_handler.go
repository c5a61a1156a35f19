package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/shipeast-beep/upkeep-guardian-home/internal/delivery/http/response"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MaintenanceHandler holds dependencies for maintenance-event handlers.
type MaintenanceHandler struct {
	uc     usecase.MaintenanceUsecase
	logger *slog.Logger
}

// NewMaintenanceHandler is the constructor for MaintenanceHandler, injected by Fx.
func NewMaintenanceHandler(uc usecase.MaintenanceUsecase, logger *slog.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the request to list maintenance events. Search, category and
// sort query parameters narrow and order the listing.
func (h *MaintenanceHandler) List(c echo.Context) error {
	events, err := h.uc.ListEvents(c.Request().Context(), usecase.ListMaintenanceEventsInput{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		Sort:     c.QueryParam("sort"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, events, "Maintenance events retrieved successfully")
}

// Create handles the maintenance event creation request.
func (h *MaintenanceHandler) Create(c echo.Context) error {
	var input usecase.CreateMaintenanceEventInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid maintenance event input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	event, err := h.uc.AddEvent(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, event, "Maintenance event created successfully")
}

// Get handles the request to fetch a single maintenance event.
func (h *MaintenanceHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid maintenance event id")
	}

	event, err := h.uc.GetEvent(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, event, "Maintenance event retrieved successfully")
}

// Update handles a partial maintenance event update.
func (h *MaintenanceHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid maintenance event id")
	}

	var input usecase.UpdateMaintenanceEventInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid maintenance event input")
	}

	event, err := h.uc.UpdateEvent(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, event, "Maintenance event updated successfully")
}

// Delete handles the maintenance event deletion request.
func (h *MaintenanceHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid maintenance event id")
	}

	if err := h.uc.DeleteEvent(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Overview handles the dashboard request bundling upcoming and recent events.
func (h *MaintenanceHandler) Overview(c echo.Context) error {
	overview, err := h.uc.Overview(c.Request().Context(), time.Now())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, overview, "Overview retrieved successfully")
}
