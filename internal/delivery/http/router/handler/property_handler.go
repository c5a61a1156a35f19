// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/shipeast-beep/upkeep-guardian-home/internal/delivery/http/response"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PropertyHandler holds dependencies for property-related handlers.
type PropertyHandler struct {
	uc     usecase.PropertyUsecase
	logger *slog.Logger
}

// NewPropertyHandler is the constructor for PropertyHandler, injected by Fx.
func NewPropertyHandler(uc usecase.PropertyUsecase, logger *slog.Logger) *PropertyHandler {
	return &PropertyHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the request to list all properties.
func (h *PropertyHandler) List(c echo.Context) error {
	properties, err := h.uc.ListProperties(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, properties, "Properties retrieved successfully")
}

// Create handles the property creation request.
func (h *PropertyHandler) Create(c echo.Context) error {
	var input usecase.CreatePropertyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid property input")
	}

	property, err := h.uc.CreateProperty(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, property, "Property created successfully")
}

// Update handles a partial property update.
func (h *PropertyHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid property id")
	}

	var input usecase.UpdatePropertyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid property input")
	}

	property, err := h.uc.UpdateProperty(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, property, "Property updated successfully")
}

// Delete handles the property deletion request, cascading to the property's
// events and notifications.
func (h *PropertyHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid property id")
	}

	if err := h.uc.DeleteProperty(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// selectionBody is the wire shape of the active-property selection.
type selectionBody struct {
	SelectedPropertyID *uuid.UUID `json:"selectedPropertyId"`
}

// SetSelection handles the request to set or clear the active property.
func (h *PropertyHandler) SetSelection(c echo.Context) error {
	var input selectionBody
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid selection input")
	}

	if err := h.uc.SelectProperty(c.Request().Context(), input.SelectedPropertyID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, selectionBody{SelectedPropertyID: input.SelectedPropertyID}, "Selection updated successfully")
}

// GetSelection handles the request to read the active property.
func (h *PropertyHandler) GetSelection(c echo.Context) error {
	id, err := h.uc.SelectedPropertyID(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, selectionBody{SelectedPropertyID: id}, "Selection retrieved successfully")
}
