package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"github.com/ahmedabdelhady55/cafe-ordering-system/config"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/delivery"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/delivery/http"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/delivery/http/middleware"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/delivery/http/router/handler"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/delivery/worker"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/service"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/infra/auth"
	logs "github.com/ahmedabdelhady55/cafe-ordering-system/internal/infra/log"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/infra/persistence/firestore"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/infra/pubsub"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/infra/qrcode"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/usecase/impl"
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
		firestore.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewOrderRepository,
			firestore.NewCustomerRepository,
			firestore.NewStaffRepository,
			firestore.NewBannerRepository,
			firestore.NewCatalogRepository,
			firestore.NewLoyaltyRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newQRCodeService,
		),
		pubsub.Module,
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "https://menu.example.com/")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewOrderService,
			impl.NewCustomerService,
			impl.NewStaffService,
			impl.NewMenuService,
			impl.NewBannerService,
			impl.NewLoyaltyService,
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
			handler.NewOrderHandler,
			handler.NewCustomerHandler,
			handler.NewStaffHandler,
			handler.NewMenuHandler,
			handler.NewBannerHandler,
			handler.NewLoyaltyHandler,
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
			fx.Annotate(
				worker.NewBannerSweeper,
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
