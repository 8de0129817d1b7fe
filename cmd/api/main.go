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

	"github.com/qawafel/crm-backend/api/controllers"
	"github.com/qawafel/crm-backend/api/middleware"
	"github.com/qawafel/crm-backend/api/routes"
	"github.com/qawafel/crm-backend/internal/bootstrap"
	"github.com/qawafel/crm-backend/internal/gateway"
	"github.com/qawafel/crm-backend/internal/intake"
	"github.com/qawafel/crm-backend/internal/leads"
	"github.com/qawafel/crm-backend/internal/messaging"
	"github.com/qawafel/crm-backend/pkg/config"
	"github.com/qawafel/crm-backend/pkg/db"
	"github.com/qawafel/crm-backend/pkg/instance"
	"github.com/qawafel/crm-backend/pkg/logger"
	"github.com/qawafel/crm-backend/pkg/metrics"
	"github.com/qawafel/crm-backend/pkg/migrate"
	"github.com/qawafel/crm-backend/pkg/redis"
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

	if err := run(cfg, logg); err != nil {
		logg.Error(context.Background(), "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logg *logger.Logger) (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, dbClient.Close())
	}()

	if err := migrate.MaybeRunOnBoot(ctx, cfg, logg, dbClient); err != nil {
		return err
	}

	deps := routes.Deps{
		Config: cfg,
		Logger: logg,
		DB:     dbClient,
	}

	if cfg.Redis.Enabled() {
		var redisClient *redis.Client
		redisClient, err = redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			return err
		}
		defer func() {
			err = multierr.Append(err, redisClient.Close())
		}()
		deps.Redis = controllers.Pinger(redisClient)
		deps.RateLimiter = middleware.RateLimiterStore(redisClient)
	} else {
		logg.Warn(ctx, "redis not configured; intake rate limiting disabled")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	deps.Gatherer = reg

	deps.Gateway, err = gateway.NewService(gateway.ServiceParams{
		Stores:  gateway.NewStores(dbClient.DB()),
		Logger:  logg,
		Metrics: metrics.NewGatewayMetrics(reg),
	})
	if err != nil {
		return err
	}

	deps.Bootstrap, err = bootstrap.NewService(bootstrap.ServiceParams{
		Client:  dbClient,
		Logger:  logg,
		Metrics: metrics.NewBootstrapMetrics(reg),
	})
	if err != nil {
		return err
	}

	deps.Intake, err = intake.NewService(leads.NewRepository(dbClient.DB()), logg)
	if err != nil {
		return err
	}

	var gen messaging.Generator
	gemini, err := messaging.NewGeminiGenerator(ctx, cfg.Gemini)
	if err != nil {
		return err
	}
	if gemini != nil {
		gen = gemini
	} else {
		logg.Warn(ctx, "gemini api key not set; message generation disabled")
	}
	deps.Messaging, err = messaging.NewService(gen, logg)
	if err != nil {
		return err
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	server := &http.Server{
		Addr:         addr,
		Handler:      routes.NewRouter(deps),
		ReadTimeout:  cfg.App.ReadTimeout,
		WriteTimeout: cfg.App.WriteTimeout,
		IdleTimeout:  cfg.App.IdleTimeout,
	}

	logCtx := logg.WithFields(ctx, map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"dialect":  string(dbClient.Dialect()),
		"instance": instance.GetID(),
	})
	logg.Info(logCtx, "starting api server")

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logg.Info(logCtx, "shutting down api server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
