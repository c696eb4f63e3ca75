package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	logger_adapter "oglasnik-service/internal/adapters/logger"
	postgres_adapter "oglasnik-service/internal/adapters/postgres"
	rabbitmq_adapter "oglasnik-service/internal/adapters/rabbitmq"
	"oglasnik-service/internal/adapters/rest"
	"oglasnik-service/internal/configs"
	"oglasnik-service/internal/constants"
	"oglasnik-service/internal/core/port"
	"oglasnik-service/internal/core/usecase"

	fluentlogger "oglasnik-service/pkg/fluent_logger"
	"oglasnik-service/pkg/postgres"
	"oglasnik-service/pkg/rabbitmq/rabbitmq_common"
	"oglasnik-service/pkg/rabbitmq/rabbitmq_consumer"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App wires the adapters to the core and manages their lifecycle.
type App struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	apiServer    *rest.Server
	connManager  *rabbitmq_common.ConnectionManager
	fluentClient *fluent.Fluent
	logger       port.LoggerPort

	announcementEventsListener port.EventListenerPort
}

// NewApp is the composition root: every dependency is created and wired
// here, nowhere else.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// Loggers first so every later failure is reported through them.
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// Low-level dependencies
	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{
		DatabaseURL: appConfig.Database.URL,
		MaxConns:    int32(appConfig.Database.MaxConns),
	})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	storageAdapter, err := postgres_adapter.NewPostgresStorageAdapter(dbPool)
	if err != nil {
		appLogger.Error("Failed to create postgres storage adapter", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create postgres storage adapter: %w", err)
	}

	companyAdapter, err := postgres_adapter.NewCompanyStorageAdapter(dbPool)
	if err != nil {
		appLogger.Error("Failed to create postgres company adapter", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create postgres company adapter: %w", err)
	}
	appLogger.Info("Postgres storage adapters initialized.", nil)

	connManagerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_conn_manager"})
	connManager, err := rabbitmq_common.NewManager(appConfig.RabbitMQ.URL, rabbitmq_adapter.NewPkgLoggerBridge(connManagerLogger))
	if err != nil {
		appLogger.Error("Failed to create connection manager", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create connection manager: %w", err)
	}
	appLogger.Info("RabbitMQ Connection Manager initialized.", nil)

	// Use cases
	searchAnnouncementsUC := usecase.NewSearchAnnouncementsUseCase(storageAdapter)
	searchDeletedUC := usecase.NewSearchDeletedAnnouncementsUseCase(storageAdapter)
	searchCompaniesUC := usecase.NewSearchCompaniesUseCase(companyAdapter)
	findSimilarUC := usecase.NewFindSimilarRealEstatesUseCase(storageAdapter)
	saveAnnouncementUC := usecase.NewSaveAnnouncementUseCase(storageAdapter)
	removeAnnouncementUC := usecase.NewRemoveAnnouncementUseCase(storageAdapter)
	appLogger.Info("All use cases initialized.", nil)

	// Incoming adapters
	consumerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_consumer"})
	consumerCfg := rabbitmq_consumer.ConsumerConfig{
		Config:                 rabbitmq_common.Config{URL: appConfig.RabbitMQ.URL},
		QueueName:              constants.QueueAnnouncementEvents,
		DeclareQueue:           true,
		DurableQueue:           true,
		ExchangeNameForBind:    constants.ClassifiedsExchange,
		DeclareExchangeForBind: true,
		ExchangeTypeForBind:    "direct",
		DurableExchangeForBind: true,
		RoutingKeyForBind:      constants.RoutingKeyAnnouncementEvents,
		PrefetchCount:          1,
		ConsumerTag:            "announcement-events-adapter",

		EnableRetryMechanism: true,
		RetryExchange:        constants.QueueAnnouncementEvents + "_retry_ex",
		RetryQueue:           constants.QueueAnnouncementEvents + "_retry_wait_10s",
		RetryTTL:             10000,
		FinalDLXExchange:     constants.FinalDLXExchange,
		FinalDLQ:             constants.FinalDLQ,
		FinalDLQRoutingKey:   constants.FinalDLQRoutingKey,
		MaxRetries:           3,

		Logger: rabbitmq_adapter.NewPkgLoggerBridge(consumerLogger),
	}
	announcementListener, err := rabbitmq_adapter.NewAnnouncementConsumerAdapter(consumerCfg, connManager, saveAnnouncementUC, removeAnnouncementUC, baseLogger)
	if err != nil {
		appLogger.Error("Failed to create Announcement Events listener", err, nil)
		dbPool.Close()
		_ = connManager.Close()
		return nil, err
	}
	appLogger.Info("Announcement Events Listener initialized.", nil)

	// REST API server
	searchHandler := rest.NewSearchHandler(searchAnnouncementsUC, searchDeletedUC, searchCompaniesUC)
	similarityHandler := rest.NewSimilarityHandler(findSimilarUC)

	apiServer := rest.NewServer(appConfig.Rest.PORT, searchHandler, similarityHandler, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	application := &App{
		config:                     appConfig,
		dbPool:                     dbPool,
		apiServer:                  apiServer,
		connManager:                connManager,
		announcementEventsListener: announcementListener,

		fluentClient: fluentClient,
		logger:       appLogger,
	}

	return application, nil
}

// Run starts every component and blocks until a shutdown signal or a
// critical failure.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	var wg sync.WaitGroup

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		a.logger.Info("Waiting for background processes to finish...", nil)
		wg.Wait()
		a.logger.Info("All background processes finished.", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.announcementEventsListener != nil {
			if err := a.announcementEventsListener.Close(); err != nil {
				a.logger.Error("Error closing announcement events listener", err, nil)
			}
		}

		if a.connManager != nil {
			if err := a.connManager.Close(); err != nil {
				a.logger.Error("Error closing RabbitMQ connection", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// stdout directly, fluent may already be unreachable
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)

	startListener := func(name string, listener port.EventListenerPort) {
		defer wg.Done()
		listenerLogger := a.logger.WithFields(port.Fields{"listener_name": name})
		listenerLogger.Info("Starting listener...", nil)

		if err := listener.Start(appCtx); err != nil {
			listenerLogger.Error("Listener stopped with an unexpected error", err, nil)
			errorsCh <- fmt.Errorf("%s error: %w", name, err)
		} else {
			listenerLogger.Info("Listener stopped gracefully due to context cancellation.", nil)
		}
	}

	wg.Add(1)
	go startListener("Announcement Events Listener", a.announcementEventsListener)

	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	}

	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
