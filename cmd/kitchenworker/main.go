// The kitchen worker consumes order events pushed by Pub/Sub and turns
// them into kitchen tickets. It runs as a separate deployment from the
// customer-facing API.
package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"github.com/ahmedabdelhady55/cafe-ordering-system/config"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/delivery"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/delivery/worker"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/delivery/worker/handler"
	logs "github.com/ahmedabdelhady55/cafe-ordering-system/internal/infra/log"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/infra/persistence/firestore"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/infra/pubsub"
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
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			firestore.NewClient,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewOrderRepository,
			firestore.NewCustomerRepository,
			firestore.NewLoyaltyRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewOrderService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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
