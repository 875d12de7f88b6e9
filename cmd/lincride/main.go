package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Adeakim/lincride/internal/pkg/config"
	"github.com/Adeakim/lincride/internal/pkg/database"
	"github.com/Adeakim/lincride/internal/pkg/health"
	"github.com/Adeakim/lincride/internal/pkg/logger"
	"github.com/Adeakim/lincride/internal/pkg/middleware"
	natspkg "github.com/Adeakim/lincride/internal/pkg/nats"
	nrpkg "github.com/Adeakim/lincride/internal/pkg/newrelic"
	"github.com/Adeakim/lincride/internal/pkg/server"
	wspkg "github.com/Adeakim/lincride/internal/pkg/websocket"
	"github.com/Adeakim/lincride/services/location"
	locationGateway "github.com/Adeakim/lincride/services/location/gateway"
	locationHandler "github.com/Adeakim/lincride/services/location/handler"
	locationHTTP "github.com/Adeakim/lincride/services/location/handler/http"
	locationWS "github.com/Adeakim/lincride/services/location/handler/websocket"
	locationRepository "github.com/Adeakim/lincride/services/location/repository"
	locationUsecase "github.com/Adeakim/lincride/services/location/usecase"
	tripsGateway "github.com/Adeakim/lincride/services/trips/gateway"
	tripsHandler "github.com/Adeakim/lincride/services/trips/handler"
	tripsHTTP "github.com/Adeakim/lincride/services/trips/handler/http"
	tripsRepository "github.com/Adeakim/lincride/services/trips/repository"
	tripsUsecase "github.com/Adeakim/lincride/services/trips/usecase"
)

func main() {
	appName := "lincride"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:       configs.Logger.Level,
		FilePath:    configs.Logger.FilePath,
		ServiceName: appName,
	}, nrApp)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	// PostgreSQL and Redis are hard dependencies.
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// The broker is optional: without it, location updates fan out directly
	// in-process.
	var natsClient *natspkg.Client
	if configs.NATS.URL != "" {
		natsClient, err = natspkg.NewClient(configs.NATS.URL)
		if err != nil {
			zapLogger.Warn("NATS unavailable, falling back to direct fan-out", logger.Err(err))
			natsClient = nil
		} else {
			defer natsClient.Close()
		}
	}

	// Trip service wiring
	tripRepo := tripsRepository.NewTripRepo(configs, postgresClient.GetDB())
	directionsGW, err := tripsGateway.NewDirectionsGateway(configs)
	if err != nil {
		zapLogger.Fatal("Failed to create directions gateway", logger.Err(err))
	}
	tripUC := tripsUsecase.NewTripUC(tripRepo, directionsGW, configs)

	tripHTTPHandler := tripsHTTP.NewTripHandler(tripUC)
	matchHTTPHandler := tripsHTTP.NewMatchHandler(tripUC)
	tripHandlers := tripsHandler.NewHandler(tripHTTPHandler, matchHTTPHandler)

	// Location service wiring
	registry := wspkg.NewRegistry()
	locationRepo := locationRepository.NewLocationRepository(redisClient)

	var locationGW location.LocationGW
	if natsClient != nil {
		locationGW = locationGateway.NewLocationGW(natsClient)
	}
	locationUC := locationUsecase.NewLocationUC(locationRepo, locationGW, registry, configs)

	locationHTTPHandler := locationHTTP.NewLocationHandler(locationUC)
	wsGateway := locationWS.NewGateway(locationUC, tripUC, registry)

	var natsConsumer *locationHandler.NatsHandler
	if natsClient != nil {
		natsConsumer = locationHandler.NewNatsHandler(locationUC, natsClient)
		if err := natsConsumer.Start(); err != nil {
			zapLogger.Warn("Failed to start broker consumer, falling back to direct fan-out", logger.Err(err))
			natsConsumer = nil
			// Without a consumer, published updates would never reach
			// subscribers in this process.
			locationUC.DisableBroker()
		}
	}
	locationHandlers := locationHandler.NewHandler(locationHTTPHandler, wsGateway, natsConsumer)

	// The consumer loop runs for the life of the process.
	consumerCtx, cancelConsumer := context.WithCancel(context.Background())
	defer cancelConsumer()
	if natsConsumer != nil {
		go natsConsumer.Run(consumerCtx)
	}

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.LoggerMiddleware(zapLogger))

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, healthService)

	tripHandlers.RegisterRoutes(e)
	locationHandlers.RegisterRoutes(e)

	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		cancelConsumer()
		if natsConsumer != nil {
			natsConsumer.Stop()
		}
		return nil
	})

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Component shutdown failed", logger.Err(err))
	}
}
