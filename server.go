package main

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "videothingy/caption-board/docs"
	"videothingy/caption-board/handlers"
	"videothingy/caption-board/middleware"
	"videothingy/caption-board/utils"
)

// newApp wires middleware and routes. rl may be nil, in which case nothing is rate limited.
func newApp(h *handlers.ApplicationHandler, rl middleware.Limiter, gatherer prometheus.Gatherer, logger logrus.FieldLogger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "caption-board",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.RequestLogger(logger))

	app.Get("/health", h.Health)
	app.Get("/health/ready", h.Ready)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Every route below costs one Supabase request.
	limited := func(handler fiber.Handler) []fiber.Handler {
		if rl == nil {
			return []fiber.Handler{handler}
		}
		return []fiber.Handler{middleware.RateLimit(rl, h.Metrics), handler}
	}

	app.Get("/", limited(h.Home)...)
	app.Get("/hello", h.Hello)

	apiV1 := app.Group("/api/v1")
	apiV1.Get("/captions", limited(h.ListCaptions)...)

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return utils.RespondWithError(c, code, err.Error())
}
