package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/espressolab/storefront-backend/api/routes"
	"github.com/espressolab/storefront-backend/internal/invoices"
	"github.com/espressolab/storefront-backend/internal/notifications"
	"github.com/espressolab/storefront-backend/internal/orders"
	"github.com/espressolab/storefront-backend/internal/qc"
	"github.com/espressolab/storefront-backend/pkg/config"
	"github.com/espressolab/storefront-backend/pkg/db"
	"github.com/espressolab/storefront-backend/pkg/logger"
	"github.com/espressolab/storefront-backend/pkg/metrics"
	"github.com/espressolab/storefront-backend/pkg/migrate"
	"github.com/espressolab/storefront-backend/pkg/redis"
	"github.com/espressolab/storefront-backend/pkg/resend"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.Configured() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
	}

	sender, err := resend.NewClient(
		cfg.Email.ResendAPIKey,
		resend.WithBaseURL(cfg.Email.ResendBaseURL),
		resend.WithTimeout(cfg.Email.Timeout),
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create resend client", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	notificationMetrics := metrics.NewNotificationMetrics(registry)

	notifyCfg := notifications.Config{
		OrderFrom:      cfg.Email.OrderFrom,
		QCFrom:         cfg.Email.QCFrom,
		AdminRecipient: cfg.Email.AdminRecipient,
		PortalBaseURL:  cfg.Portal.BaseURL,
	}
	notificationRepo := notifications.NewRepository(dbClient.DB())

	orderService, err := notifications.NewOrderService(notifications.OrderServiceParams{
		Config:        notifyCfg,
		Orders:        orders.NewRepository(dbClient.DB()),
		Notifications: notificationRepo,
		Sender:        sender,
		Invoices:      invoices.HTMLRenderer{},
		Metrics:       notificationMetrics,
		Logger:        logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create order notification service", err)
		os.Exit(1)
	}

	qcService, err := notifications.NewQCService(notifications.QCServiceParams{
		Config:        notifyCfg,
		Reports:       qc.NewRepository(dbClient.DB()),
		Notifications: notificationRepo,
		Sender:        sender,
		Metrics:       notificationMetrics,
		Logger:        logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create qc notification service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})

	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(cfg, logg, dbClient, redisClient, registry, orderService, qcService),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logg.Info(ctx, "starting api server")
		serveErr <- server.ListenAndServe()
	}()

	exitCode := 0
	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			exitCode = 1
		}
	case <-ctx.Done():
		logg.Info(ctx, "api server shutting down gracefully")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	closeErr := multierr.Combine(
		server.Shutdown(shutdownCtx),
		redisClient.Close(),
		dbClient.Close(),
	)
	if closeErr != nil {
		logg.Error(ctx, "error during shutdown", closeErr)
		exitCode = 1
	}
	os.Exit(exitCode)
}
