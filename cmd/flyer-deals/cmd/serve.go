package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/kagiso-dev/flyer-deals/internal/api/handlers"
	"github.com/kagiso-dev/flyer-deals/internal/api/middleware"
	"github.com/kagiso-dev/flyer-deals/internal/catalog"
	"github.com/kagiso-dev/flyer-deals/internal/config"
	"github.com/kagiso-dev/flyer-deals/internal/engine"
	"github.com/kagiso-dev/flyer-deals/internal/flyer"
	"github.com/kagiso-dev/flyer-deals/internal/session"
	"github.com/kagiso-dev/flyer-deals/internal/store"
	"github.com/kagiso-dev/flyer-deals/internal/telemetry"
	"github.com/kagiso-dev/flyer-deals/pkg/compare"
	applogger "github.com/kagiso-dev/flyer-deals/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and catalog scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level: parseLogLevel(cfg.Logging.Level),
	})
	slogger := applogger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx := context.Background()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry, Version)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}

	st, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	fc := flyer.NewHTTPClient(cfg.Catalog.BaseURL,
		flyer.WithHTTPClient(&http.Client{Timeout: cfg.Catalog.FetchTimeout}),
		flyer.WithRateLimit(cfg.Catalog.RateLimit.PerSecond, cfg.Catalog.RateLimit.Burst),
	)

	cat := catalog.New()
	eng := engine.NewEngine(cat, fc,
		engine.WithLogger(slogger),
		engine.WithMatcher(compare.Matcher{ExtraItemsAllowed: *cfg.Compare.ExtraItemsAllowed}),
	)

	// Load the catalog before serving; a failure here is not fatal since
	// the scheduler retries.
	if err := eng.RunRefresh(ctx); err != nil {
		logger.Warn("initial catalog refresh failed", "err", err)
	}

	sched, err := engine.NewScheduler(eng,
		cfg.Catalog.RefreshInterval,
		cfg.Catalog.SyncInterval,
		slogger,
	)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	sched.Start()

	manager := session.NewManager()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestLog(slogger))
	e.Use(middleware.Recovery(slogger))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(st)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("Flyer Deals API", Version))
	handlers.RegisterDealRoutes(api, handlers.NewDealsHandler(cat))
	handlers.RegisterCompareRoutes(api, handlers.NewCompareHandler(eng))
	handlers.RegisterSessionRoutes(api, handlers.NewSessionsHandler(manager, cat))
	handlers.RegisterListRoutes(api, handlers.NewListsHandler(st, manager))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	<-sched.Stop().Done()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("shutting down telemetry", "err", err)
	}

	logger.Info("server stopped")
	return nil
}

func openStore(ctx context.Context, cfg *config.Config) (store.Store, func(), error) {
	switch cfg.Database.Backend {
	case "memory":
		return store.NewMemoryStore(), func() {}, nil
	default:
		pg, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to database: %w", err)
		}
		return pg, pg.Close, nil
	}
}

func parseLogLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
