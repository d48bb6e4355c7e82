package main

import (
	"strings"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"querydrills/docs"
	"querydrills/internal/config"
	handlers "querydrills/internal/http/handler"
	"querydrills/internal/http/middleware"
	"querydrills/internal/metrics"
	"querydrills/internal/service"
)

// newApp wires the Fiber app: middleware chain, drill routes, metrics and docs.
// reg may be nil when metrics are disabled.
func newApp(cfg *config.AppConfig, log *zap.Logger, reg *prometheus.Registry, drawer service.Drawer) (*fiber.App, error) {
	// Forwarded host/proto headers only count when sent by a listed proxy.
	app := fiber.New(fiber.Config{
		AppName:                 cfg.AppName,
		DisableStartupMessage:   true,
		ErrorHandler:            handlers.ErrorHandler(log),
		EnableTrustedProxyCheck: true,
		TrustedProxies:          cfg.TrustedProxies,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))

	var opts []service.Option
	if cfg.MetricsEnabled && reg != nil {
		promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
		if err != nil {
			return nil, err
		}
		lottoMetrics, err := metrics.NewLottoMetrics(reg)
		if err != nil {
			return nil, err
		}
		app.Use(promMiddleware.Handler())
		app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
		opts = append(opts, service.WithPrizeRecorder(lottoMetrics))
	}

	if cfg.TracingEnabled {
		app.Use(otelfiber.Middleware())
	}

	handlers.RegisterRoutes(app, cfg.BasePath, service.NewDrillService(drawer, opts...), log)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.BasePath = cfg.BasePath + "/"
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	return app, nil
}
