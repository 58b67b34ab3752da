package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/contrib/otelfiber"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"htmxcontacts/internal/config"
	handlers "htmxcontacts/internal/http/handler"
	"htmxcontacts/internal/http/middleware"
	"htmxcontacts/internal/logging"
	apiotel "htmxcontacts/internal/otel"
	"htmxcontacts/internal/service"
	"htmxcontacts/internal/view"
)

// @title Contacts API
// @version 1.0
// @description Contact card pages and fragments, plus a user creation endpoint.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := cfg.Location()
	log := logging.Stdout(loc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, tracing, err := apiotel.Init(ctx, cfg.Tracing, log)
	if err != nil {
		fatal(log, "tracing_init_failed", err)
	}

	// Parse templates up front so a broken template fails start-up, not a request.
	// The Load that fiber.New makes afterwards is then a no-op.
	views := view.Embedded()
	if err := views.Load(); err != nil {
		fatal(log, "template_load_failed", err)
	}

	app := handlers.NewApp(views)

	// RequestID runs first so every later middleware can see the id
	app.Use(middleware.RequestID())
	if tracing {
		app.Use(otelfiber.Middleware())
	}
	app.Use(middleware.Logger(loc))

	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics, err := middleware.NewPrometheusMiddleware(reg)
		if err != nil {
			fatal(log, "metrics_init_failed", err)
		}
		app.Use(metrics.Handler())
		handlers.RegisterMetrics(app, reg)
	}

	if cfg.SwaggerEnabled {
		handlers.RegisterSwagger(app)
	}

	handlers.RegisterRoutes(app, handlers.Deps{
		Contacts:  service.NewContactService(),
		Users:     service.NewUserService(),
		Log:       log,
		StaticDir: cfg.StaticDir,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server_listening", map[string]any{"addr": cfg.Addr()})
		return app.Listen(cfg.Addr())
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("server_shutting_down", nil)
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
		defer cancel()
		return app.ShutdownWithContext(sctx)
	})

	serveErr := g.Wait()

	tctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()
	if err := shutdownTracing(tctx); err != nil {
		log.Error("tracing_shutdown_failed", err, nil)
	}

	if serveErr != nil {
		fatal(log, "server_failed", serveErr)
	}
	log.Info("server_stopped", nil)
}

func fatal(log *logging.Logger, msg string, err error) {
	log.Error(msg, err, nil)
	os.Exit(1)
}
