package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/shipeast-beep/upkeep-guardian-home/config"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/delivery"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/delivery/http"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/delivery/http/middleware"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/delivery/http/router/handler"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/domain/service"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/infra/auth"
	logs "github.com/shipeast-beep/upkeep-guardian-home/internal/infra/log"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/infra/pdf"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/infra/persistence/localstore"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/infra/push"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/infra/qrcode"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		localstore.NewSnapshotStore,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			localstore.New,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newTokenService,
			pdf.NewDocumentService,
			newPushService,
			newQRCodeService,
		),
	)
}

// newTokenService creates the access-token validator. With no secret
// configured the API runs open and no validator is needed.
func newTokenService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, nil
	}

	return auth.NewJWTService(cfg)
}

// newPushService creates a Firebase push service with dependency injection
func newPushService(ctx context.Context, cfg *config.Config) (service.PushService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := push.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPropertyService,
			impl.NewMaintenanceService,
			impl.NewNotificationService,
			impl.NewExportService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPropertyHandler,
			handler.NewMaintenanceHandler,
			handler.NewNotificationHandler,
			handler.NewExportHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
