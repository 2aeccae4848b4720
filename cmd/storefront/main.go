package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	deliveryhttp "storefront/internal/delivery/http"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/service"
	"storefront/internal/infra/identity"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/firestore"
	"storefront/internal/infra/pubsub"
	"storefront/internal/infra/qrcode"
	"storefront/internal/infra/storage"
	"storefront/internal/usecase/impl"

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
		firestore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewProductRepository,
			firestore.NewCategoryRepository,
			firestore.NewOrderRepository,
			firestore.NewUserRepository,
			firestore.NewDiscountRepository,
			firestore.NewPromotionRepository,
			firestore.NewInventoryRepository,
			firestore.NewStoreRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			identity.NewFirebaseService,
			pubsub.NewEventPublisher,
			storage.New,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProductService,
			impl.NewCategoryService,
			impl.NewOrderService,
			impl.NewUserService,
			impl.NewDiscountService,
			impl.NewPromotionService,
			impl.NewInventoryService,
			impl.NewStoreService,
			impl.NewAuthService,
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
			handler.NewProductHandler,
			handler.NewCategoryHandler,
			handler.NewOrderHandler,
			handler.NewUserHandler,
			handler.NewDiscountHandler,
			handler.NewPromotionHandler,
			handler.NewInventoryHandler,
			handler.NewStoreHandler,
			handler.NewAuthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				deliveryhttp.NewServer,
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
