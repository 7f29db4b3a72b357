package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/kurir/internal/pkg/constants"
	"github.com/piresc/kurir/internal/pkg/database"
	"github.com/piresc/kurir/internal/pkg/health"
	"github.com/piresc/kurir/internal/pkg/logger"
	"github.com/piresc/kurir/internal/pkg/metrics"
	"github.com/piresc/kurir/internal/pkg/middleware"
	natspkg "github.com/piresc/kurir/internal/pkg/nats"
	nrpkg "github.com/piresc/kurir/internal/pkg/newrelic"
	nsqpkg "github.com/piresc/kurir/internal/pkg/nsq"
	"github.com/piresc/kurir/internal/pkg/server"
	"github.com/piresc/kurir/internal/pkg/websocket"
	activationGateway "github.com/piresc/kurir/services/activation/gateway"
	activationRepository "github.com/piresc/kurir/services/activation/repository"
	activationUsecase "github.com/piresc/kurir/services/activation/usecase"
	assignmentRepository "github.com/piresc/kurir/services/assignment/repository"
	assignmentUsecase "github.com/piresc/kurir/services/assignment/usecase"
	availabilityRepository "github.com/piresc/kurir/services/availability/repository"
	availabilityUsecase "github.com/piresc/kurir/services/availability/usecase"
	batchingGateway "github.com/piresc/kurir/services/batching/gateway"
	batchingRepository "github.com/piresc/kurir/services/batching/repository"
	batchingUsecase "github.com/piresc/kurir/services/batching/usecase"
	dispatchGateway "github.com/piresc/kurir/services/dispatch/gateway"
	"github.com/piresc/kurir/services/dispatch/handler"
	dispatchUsecase "github.com/piresc/kurir/services/dispatch/usecase"
	"github.com/piresc/kurir/services/dispatch/worker"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API, event consumers and offer expiry worker",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configs, nrApp, zapLogger, err := bootstrap()
	if err != nil {
		return err
	}
	defer zapLogger.Close()

	shutdown := server.NewShutdownManager(zapLogger)
	if nrApp != nil {
		shutdown.Register("newrelic", func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	shutdown.Register("postgres", func(context.Context) error { return postgresClient.Close() })

	if _, err := database.Migrate(ctx, postgresClient.GetDB()); err != nil {
		return err
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	shutdown.Register("redis", func(context.Context) error { return redisClient.Close() })

	// Initialize JetStream-enabled NATS client
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to NATS: %w", err)
	}
	shutdown.Register("nats", func(context.Context) error {
		natsClient.Close()
		return nil
	})
	if err := natsClient.EnsureStreams(ctx, natspkg.DispatchStreams()); err != nil {
		return err
	}

	// Initialize NSQ producer for payout and notification intents
	nsqProducer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		return fmt.Errorf("failed to connect to NSQ: %w", err)
	}
	shutdown.Register("nsq", func(context.Context) error {
		nsqProducer.Stop()
		return nil
	})

	registry := prometheus.NewRegistry()
	recorder, err := metrics.NewPromRecorder(registry)
	if err != nil {
		return err
	}

	wsManager := websocket.NewManager(configs.JWT)

	// Initialize repositories
	db := postgresClient.GetDB()
	activationRepo := activationRepository.NewActivationRepository(db)
	availabilityRepo := availabilityRepository.NewAvailabilityRepository(db)
	geoRepo := availabilityRepository.NewGeoRepository(redisClient)
	assignmentRepo := assignmentRepository.NewAssignmentRepository(db)
	expiryRepo := assignmentRepository.NewExpiryRepository(redisClient)
	batchingRepo := batchingRepository.NewBatchingRepository(db)

	// Initialize gateways
	onboardingGW := activationGateway.NewOnboardingGateway(configs)
	routingGW := batchingGateway.NewRoutingGateway(configs)
	dispatchGW := dispatchGateway.NewDispatchGW(natsClient, nsqProducer, wsManager)

	// Initialize usecases
	activationUC := activationUsecase.NewActivationUC(configs, activationRepo, onboardingGW)
	availabilityUC := availabilityUsecase.NewAvailabilityUC(configs, availabilityRepo, geoRepo)
	assignmentUC := assignmentUsecase.NewAssignmentUC(configs, assignmentRepo, expiryRepo, availabilityUC, dispatchGW, recorder)
	batchingUC := batchingUsecase.NewBatchingUC(configs, batchingRepo, routingGW, availabilityUC, recorder)
	dispatchUC := dispatchUsecase.NewDispatchUC(configs, activationUC, availabilityUC, assignmentUC, batchingUC, dispatchGW, recorder)

	// Initialize handlers
	dispatchHandler := handler.NewHandler(dispatchUC, wsManager, natsClient, configs, nrApp, recorder)
	if err := dispatchHandler.InitNATSConsumers(); err != nil {
		return fmt.Errorf("failed to initialize NATS consumers: %w", err)
	}
	shutdown.Register("nats-consumers", func(context.Context) error {
		dispatchHandler.Stop()
		return nil
	})

	expiryWorker := worker.NewExpiryWorker(dispatchUC, configs.Dispatch.ExpirySweepInterval)
	expiryWorker.Start(ctx)
	shutdown.Register("expiry-worker", func(context.Context) error {
		expiryWorker.Stop()
		return nil
	})

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// panic recovery first so it wraps everything else
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestContextMiddleware(appName))
	e.Use(nrpkg.EchoMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	healthService := health.NewService()
	healthService.AddChecker("postgres", postgresClient)
	healthService.AddChecker("redis", redisClient)
	healthService.AddChecker("nats", natsClient)
	healthService.AddChecker("nsq", health.CheckerFunc(func(context.Context) error {
		return nsqProducer.Ping()
	}))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	if configs.Metrics.Enabled {
		e.GET(configs.Metrics.Path, metrics.Handler(registry))
	}

	locationLimit := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: redisClient.GetClient(),
		Key:         constants.KeyRateLimitLocation,
		Limit:       configs.RateLimit.LocationLimit,
		Period:      configs.RateLimit.LocationPeriod,
	})
	dispatchHandler.RegisterRoutes(e, locationLimit)

	addr := fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port)
	srv := server.NewGracefulServer(e, zapLogger, addr, time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	runErr := srv.Run(ctx)
	if runErr != nil {
		logger.Error("HTTP server stopped", logger.Err(runErr))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := shutdown.Shutdown(shutdownCtx); err != nil && runErr == nil {
		runErr = err
	}

	logger.Info("Server exiting gracefully")
	return runErr
}
