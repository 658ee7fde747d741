package api

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	v1 "github.com/Cheruiyot/mpesa-services/stkgateway/internal/api/v1"
)

func SetupRoutes(app *fiber.App, handler *v1.Handler) {
	app.Get("/ping", handler.Pong)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Post("/stk-push", handler.StkPush)
	app.Post("/callback", handler.Callback)
	app.Get("/transactions", handler.Transactions)
}
