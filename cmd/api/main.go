package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nsokolova/prediction-service/internal/domain/usecase/auth"
	"github.com/nsokolova/prediction-service/internal/domain/usecase/billing"
	"github.com/nsokolova/prediction-service/internal/domain/usecase/catalog"
	"github.com/nsokolova/prediction-service/internal/domain/usecase/prediction"

	"github.com/nsokolova/prediction-service/internal/infrastructure/adapter/api/handler"
	"github.com/nsokolova/prediction-service/internal/infrastructure/adapter/api/routes"
	"github.com/nsokolova/prediction-service/internal/infrastructure/adapter/database"
	"github.com/nsokolova/prediction-service/internal/infrastructure/adapter/inference"
	"github.com/nsokolova/prediction-service/internal/infrastructure/adapter/logger"
	"github.com/nsokolova/prediction-service/internal/infrastructure/adapter/repository"
	"github.com/nsokolova/prediction-service/internal/infrastructure/adapter/security"
	timeProvider "github.com/nsokolova/prediction-service/internal/infrastructure/adapter/time"
	"github.com/nsokolova/prediction-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production, cfg.Logger.Level)
	defer func() { _ = appLogger.Flush() }()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	conn, err := database.NewConnection(&database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
	})
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer conn.Close()

	// Run migrations
	if err := database.NewMigrationManager(conn.DB, appLogger).MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(conn.DB, tp, appLogger)
	modelRepo := repository.NewModelRepository(conn.DB, appLogger)
	predictionRepo := repository.NewPredictionRepository(conn.DB, appLogger)

	// Security adapters
	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens, err := security.NewJWTManager(cfg.Auth.Secret, tp)
	if err != nil {
		appLogger.Error("Failed to initialize token manager", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Classifier registry, one client per catalog model
	registry := inference.NewDefaultRegistry(
		cfg.Inference.RandomForestURL,
		cfg.Inference.SVCURL,
		cfg.Inference.CatBoostURL,
	)

	// Initialize use cases
	authService := auth.NewService(userRepo, hasher, tokens, tp, appLogger, cfg.Auth.TokenTTLMinutes)
	catalogService := catalog.NewService(modelRepo, appLogger)
	ledger := billing.NewLedger(userRepo, appLogger)
	workflow := prediction.NewWorkflow(
		catalogService,
		ledger,
		registry,
		predictionRepo,
		tp,
		appLogger,
		cfg.Inference.RequestTimeout,
	)

	// Seed the model catalog (idempotent)
	if err := catalogService.Seed(context.Background()); err != nil {
		appLogger.Error("Failed to seed model catalog", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize API handlers
	authHandler := handler.NewAuthHandler(authService, appLogger)
	predictionHandler := handler.NewPredictionHandler(catalogService, workflow, appLogger)
	balanceHandler := handler.NewBalanceHandler(ledger, appLogger)

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, authService, authHandler, predictionHandler, balanceHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		missingConfigs = append(missingConfigs, "database.host (or PS_DB_HOST environment variable)")
	}
	if cfg.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username (or PS_DB_USERNAME environment variable)")
	}
	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or PS_DB_NAME environment variable)")
	}

	if cfg.Auth.Secret == "" {
		missingConfigs = append(missingConfigs, "auth.secret (or PS_AUTH_SECRET environment variable)")
	}
	if cfg.Auth.TokenTTLMinutes == 0 {
		missingConfigs = append(missingConfigs, "auth.tokenTtlMinutes")
	}

	if cfg.Inference.RandomForestURL == "" {
		missingConfigs = append(missingConfigs, "inference.randomForestUrl")
	}
	if cfg.Inference.SVCURL == "" {
		missingConfigs = append(missingConfigs, "inference.svcUrl")
	}
	if cfg.Inference.CatBoostURL == "" {
		missingConfigs = append(missingConfigs, "inference.catboostUrl")
	}
	if cfg.Inference.RequestTimeout == 0 {
		missingConfigs = append(missingConfigs, "inference.requestTimeout")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment == config.Production {
		var warnings []string

		if cfg.Database.SSLMode == "disable" {
			warnings = append(warnings, "database.sslMode should not be 'disable' in production")
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
