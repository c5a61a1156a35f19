package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	domainerrors "github.com/shipeast-beep/upkeep-guardian-home/internal/domain/errors"

	"github.com/shipeast-beep/upkeep-guardian-home/config"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/delivery/http/validator"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/domain/repository"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/infra/pdf"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/infra/persistence/localstore"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/infra/qrcode"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type handlerFixture struct {
	echo         *echo.Echo
	store        repository.Store
	property     *PropertyHandler
	maintenance  *MaintenanceHandler
	notification *NotificationHandler
	export       *ExportHandler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Storage.BucketURL = "mem://"
	cfg.Storage.Key = "test-state.json"

	snapshots, err := localstore.NewSnapshotStore(ctx, localstore.SnapshotParams{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    cfg,
	})
	require.NoError(t, err)
	store, err := localstore.New(ctx, logger, snapshots)
	require.NoError(t, err)

	properties := impl.NewPropertyService(store)
	maintenance := impl.NewMaintenanceService(logger, store, nil, cfg)
	notifications := impl.NewNotificationService(store)
	export := impl.NewExportService(logger, store, pdf.NewDocumentService(logger), qrcode.NewQRCodeService(256, "M"))

	e := echo.New()
	e.Validator = validator.New()

	return &handlerFixture{
		echo:         e,
		store:        store,
		property:     NewPropertyHandler(properties, logger),
		maintenance:  NewMaintenanceHandler(maintenance, logger),
		notification: NewNotificationHandler(notifications, logger),
		export:       NewExportHandler(export, logger),
	}
}

func (f *handlerFixture) jsonRequest(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return f.echo.NewContext(req, rec), rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Data
}

func TestPropertyHandler_CreateAndList_Integration(t *testing.T) {
	fixture := newHandlerFixture(t)

	c, rec := fixture.jsonRequest(http.MethodPost, "/api/properties", `{"name":"Rodinný dům","address":"Květná 12","type":"house"}`)
	require.NoError(t, fixture.property.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	data := decodeData(t, rec)
	assert.Equal(t, "Rodinný dům", data["name"])
	assert.NotEmpty(t, data["id"])

	c, rec = fixture.jsonRequest(http.MethodGet, "/api/properties", "")
	require.NoError(t, fixture.property.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Rodinný dům")
}

func TestPropertyHandler_Update_UnknownID_Integration(t *testing.T) {
	fixture := newHandlerFixture(t)

	c, _ := fixture.jsonRequest(http.MethodPatch, "/api/properties/"+uuid.NewString(), `{"name":"Nový"}`)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	err := fixture.property.Update(c)
	assert.ErrorIs(t, err, domainerrors.ErrPropertyNotFound)
}

func TestPropertyHandler_Selection_Integration(t *testing.T) {
	fixture := newHandlerFixture(t)

	created, err := fixture.store.AddProperty(context.Background(), repository.CreateProperty{Name: "Byt"})
	require.NoError(t, err)

	c, rec := fixture.jsonRequest(http.MethodPut, "/api/selection", `{"selectedPropertyId":"`+created.ID.String()+`"}`)
	require.NoError(t, fixture.property.SetSelection(c))
	require.Equal(t, http.StatusOK, rec.Code)

	c, rec = fixture.jsonRequest(http.MethodGet, "/api/selection", "")
	require.NoError(t, fixture.property.GetSelection(c))
	assert.Contains(t, rec.Body.String(), created.ID.String())
}

func TestMaintenanceHandler_Create_ValidationFails_Integration(t *testing.T) {
	fixture := newHandlerFixture(t)

	// Title is required; binding succeeds but validation rejects the input.
	c, _ := fixture.jsonRequest(http.MethodPost, "/api/maintenance", `{"propertyId":"`+uuid.NewString()+`","category":"gas","date":"2024-01-15T00:00:00Z"}`)

	err := fixture.maintenance.Create(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestMaintenanceHandler_CreateAndOverview_Integration(t *testing.T) {
	fixture := newHandlerFixture(t)

	property, err := fixture.store.AddProperty(context.Background(), repository.CreateProperty{Name: "Dům"})
	require.NoError(t, err)

	payload := `{"propertyId":"` + property.ID.String() + `","title":"Servis kotle","category":"heating","date":"` +
		time.Now().AddDate(0, -1, 0).Format(time.RFC3339) + `","recurringPeriod":"annually"}`
	c, rec := fixture.jsonRequest(http.MethodPost, "/api/maintenance", payload)
	require.NoError(t, fixture.maintenance.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	data := decodeData(t, rec)
	assert.NotEmpty(t, data["nextDueDate"])

	c, rec = fixture.jsonRequest(http.MethodGet, "/api/maintenance/overview", "")
	require.NoError(t, fixture.maintenance.Overview(c))
	require.Equal(t, http.StatusOK, rec.Code)
	data = decodeData(t, rec)
	assert.NotEmpty(t, data["upcoming"])
	assert.NotEmpty(t, data["recent"])
}

func TestNotificationHandler_UnreadCountAndMarkRead_Integration(t *testing.T) {
	fixture := newHandlerFixture(t)
	ctx := context.Background()

	property, err := fixture.store.AddProperty(ctx, repository.CreateProperty{Name: "Dům"})
	require.NoError(t, err)
	_, err = fixture.store.AddMaintenanceEvent(ctx, repository.CreateMaintenanceEvent{
		PropertyID:      property.ID,
		Title:           "Revize",
		Category:        "gas",
		Date:            time.Now(),
		RecurringPeriod: "monthly",
	})
	require.NoError(t, err)

	c, rec := fixture.jsonRequest(http.MethodGet, "/api/notifications/unread-count", "")
	require.NoError(t, fixture.notification.UnreadCount(c))
	data := decodeData(t, rec)
	assert.Equal(t, float64(1), data["count"])

	c, _ = fixture.jsonRequest(http.MethodPost, "/api/notifications/"+uuid.NewString()+"/read", "")
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())
	err = fixture.notification.MarkRead(c)
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestExportHandler_ExportPDF_Integration(t *testing.T) {
	fixture := newHandlerFixture(t)
	ctx := context.Background()

	property, err := fixture.store.AddProperty(ctx, repository.CreateProperty{Name: "Dům"})
	require.NoError(t, err)
	_, err = fixture.store.AddMaintenanceEvent(ctx, repository.CreateMaintenanceEvent{
		PropertyID: property.ID,
		Title:      "Revize",
		Category:   "gas",
		Date:       time.Now(),
	})
	require.NoError(t, err)

	c, rec := fixture.jsonRequest(http.MethodGet, "/api/export/pdf", "")
	require.NoError(t, fixture.export.ExportPDF(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))
}

func TestExportHandler_ExportPDF_BadIDs_Integration(t *testing.T) {
	fixture := newHandlerFixture(t)

	c, rec := fixture.jsonRequest(http.MethodGet, "/api/export/pdf?property_ids=not-a-uuid", "")
	require.NoError(t, fixture.export.ExportPDF(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
