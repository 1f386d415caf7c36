package main

import (
	"context"
	"log/slog"
	"os"

	"petmart/config"
	"petmart/internal/delivery"
	"petmart/internal/delivery/http"
	"petmart/internal/delivery/http/middleware"
	"petmart/internal/delivery/http/router/handler"
	"petmart/internal/infra/auth"
	logs "petmart/internal/infra/log"
	"petmart/internal/infra/persistence/postgres"
	"petmart/internal/usecase/impl"

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
		postgres.New,
	)
}

// injectRepo binds each repository to its store. Cart, favorite, order,
// product, user and VIP data live in the storefront store; shipments, admin
// accounts, categories and banners live in the operations store. The
// transaction manager covers the storefront store only.
func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(postgres.NewCartRepository, fx.ParamTags(`name:"storefront"`)),
			fx.Annotate(postgres.NewFavoriteRepository, fx.ParamTags(`name:"storefront"`)),
			fx.Annotate(postgres.NewOrderRepository, fx.ParamTags(`name:"storefront"`)),
			fx.Annotate(postgres.NewProductRepository, fx.ParamTags(`name:"storefront"`)),
			fx.Annotate(postgres.NewUserRepository, fx.ParamTags(`name:"storefront"`)),
			fx.Annotate(postgres.NewVIPLevelRepository, fx.ParamTags(`name:"storefront"`)),
			fx.Annotate(postgres.NewTransactionManager, fx.ParamTags(`name:"storefront"`)),
			fx.Annotate(postgres.NewShipmentRepository, fx.ParamTags(`name:"operations"`)),
			fx.Annotate(postgres.NewAdminUserRepository, fx.ParamTags(`name:"operations"`)),
			fx.Annotate(postgres.NewCategoryRepository, fx.ParamTags(`name:"operations"`)),
			fx.Annotate(postgres.NewBannerRepository, fx.ParamTags(`name:"operations"`)),
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProductService,
			impl.NewCartService,
			impl.NewFavoriteService,
			impl.NewUserService,
			impl.NewOrderService,
			impl.NewShipmentService,
			impl.NewDashboardService,
			impl.NewVIPService,
			impl.NewAdminService,
			impl.NewCategoryService,
			impl.NewBannerService,
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
			handler.NewCartHandler,
			handler.NewFavoriteHandler,
			handler.NewUserHandler,
			handler.NewOrderHandler,
			handler.NewShipmentHandler,
			handler.NewDashboardHandler,
			handler.NewVIPHandler,
			handler.NewAdminHandler,
			handler.NewCategoryHandler,
			handler.NewBannerHandler,
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
