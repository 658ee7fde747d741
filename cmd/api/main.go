package main

import (
	"context"

	"github.com/Cheruiyot/mpesa-services/stkgateway/internal/api"
	"github.com/Cheruiyot/mpesa-services/stkgateway/internal/api/middleware"
	apivalidator "github.com/Cheruiyot/mpesa-services/stkgateway/internal/api/validator"
	v1 "github.com/Cheruiyot/mpesa-services/stkgateway/internal/api/v1"
	"github.com/Cheruiyot/mpesa-services/stkgateway/internal/config"
	"github.com/Cheruiyot/mpesa-services/stkgateway/internal/database"
	"github.com/Cheruiyot/mpesa-services/stkgateway/internal/metrics"
	"github.com/Cheruiyot/mpesa-services/stkgateway/internal/repository"
	"github.com/Cheruiyot/mpesa-services/stkgateway/internal/service"
	"github.com/Cheruiyot/mpesa-services/stkgateway/pkg/daraja"
	"github.com/Cheruiyot/mpesa-services/stkgateway/pkg/httpclient"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			database.NewConnection,
			metrics.NewMetrics,
			NewFiberApp,
			NewXValidator,
			NewTokenProvider,
			NewGateway,

			repository.NewTransactionRepository,
			service.NewPaymentWorkflowService,

			v1.NewHandler,
		),
		fx.Invoke(startServer),
	).Run()
}

func startServer(app *fiber.App, handler *v1.Handler, cfg *config.Config, m *metrics.Metrics,
	logger *zap.Logger, lc fx.Lifecycle) {

	app.Use(metrics.HTTPMetricsMiddleware(m, logger))
	api.SetupRoutes(app, handler)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go app.Listen(cfg.API.Port)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}

func NewFiberApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
}

func NewXValidator(m *metrics.Metrics) apivalidator.XValidator {
	return apivalidator.NewXValidator(validator.New(), m)
}

func NewTokenProvider(cfg *config.Config) daraja.TokenProvider {
	client := httpclient.NewHTTPClient(cfg.Daraja.Timeout)
	return daraja.NewTokenProvider(cfg.Daraja, client)
}

func NewGateway(cfg *config.Config) daraja.Gateway {
	client := httpclient.NewHTTPClient(cfg.Daraja.Timeout)
	return daraja.NewGateway(cfg.Daraja, client)
}
