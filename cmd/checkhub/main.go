// @title           Checkhub API
// @version         1.0
// @description     Check ingestion and history API for uptime monitors.

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description API Key authentication

// @host      localhost:8080
// @BasePath  /api/v1

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	_ "checkhub/docs" // Swagger docs

	apiserver "checkhub/internal/api"
	configapp "checkhub/internal/config/application"
	"checkhub/internal/infrastructure/database"
	"checkhub/internal/infrastructure/logger"
	monitoringdomain "checkhub/internal/monitoring/domain"
	monitoringinfra "checkhub/internal/monitoring/infrastructure"
	"checkhub/internal/schema"
)

const shutdownTimeout = 5 * time.Second

func newApp() *cli.App {
	return &cli.App{
		Name:  "checkhub",
		Usage: "store and query uptime check results",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "env-file", Usage: "dotenv file to load before reading the environment (default .env)"},
			&cli.StringFlag{Name: "api-key", Usage: "API key required in the X-API-Key header"},
			&cli.StringFlag{Name: "port", Usage: "HTTP listen port (default 8080)"},
			&cli.BoolFlag{Name: "dev", Usage: "serve Swagger UI under /swagger"},
			&cli.StringFlag{Name: "log-level", Usage: "DEBUG, INFO, WARN or ERROR"},
			&cli.StringFlag{Name: "log-format", Usage: "text or json"},
			&cli.StringFlag{Name: "log-output", Usage: "stdout, stderr or a file path"},
			&cli.StringFlag{Name: "store", Usage: "sqlite, mongo or memory (default sqlite)"},
			&cli.StringFlag{Name: "db-path", Usage: "SQLite database file"},
			&cli.StringFlag{Name: "mongo-uri", Usage: "MongoDB connection string"},
			&cli.StringFlag{Name: "mongo-database", Usage: "MongoDB database name"},
			&cli.StringFlag{Name: "config", Usage: "registry config file applied at startup"},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	bootLogger := logger.DefaultLogger()
	envLoaded := configapp.LoadEnvFile(bootLogger, c.String("env-file"))

	runtimeCfg := configapp.LoadRuntimeConfig(configapp.Flags{
		APIKey:        c.String("api-key"),
		Port:          c.String("port"),
		DevMode:       c.Bool("dev"),
		LogLevel:      c.String("log-level"),
		LogFormat:     c.String("log-format"),
		LogOutput:     c.String("log-output"),
		Store:         c.String("store"),
		DBPath:        c.String("db-path"),
		MongoURI:      c.String("mongo-uri"),
		MongoDatabase: c.String("mongo-database"),
		ConfigPath:    c.String("config"),
	})

	appLogger := logger.NewLogger(runtimeCfg.LogLevel, runtimeCfg.LogFormat, runtimeCfg.LogOutput)
	logger.SetDefaultLogger(appLogger)

	if err := runtimeCfg.Validate(); err != nil {
		appLogger.Error("Invalid runtime configuration", "err", err)
		return err
	}

	appLogger.Info("Starting Checkhub",
		"version", "1.0",
		"store", runtimeCfg.Store,
		"env_file_loaded", envLoaded,
	)

	sigCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	repo, err := openRepository(sigCtx, appLogger, runtimeCfg)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer closeCancel()
		if err := repo.Close(closeCtx); err != nil {
			appLogger.Error("Failed to close repository", "err", err)
		}
	}()

	// Initialize configuration loader
	configLoader := configapp.NewLoader(appLogger, repo)

	if runtimeCfg.ConfigPath != "" {
		appLogger.Debug("Reading configuration file", "path", runtimeCfg.ConfigPath)
		rawCfg, err := os.ReadFile(runtimeCfg.ConfigPath)
		if err != nil {
			appLogger.Error("Failed to read config file", "path", runtimeCfg.ConfigPath, "err", err)
			return fmt.Errorf("failed to read config file: %w", err)
		}
		if err := configLoader.LoadConfig(sigCtx, rawCfg); err != nil {
			appLogger.Error("Failed to load config", "err", err)
			return fmt.Errorf("failed to load config: %w", err)
		}
		appLogger.Info("Configuration loaded successfully")
	}

	// Initialize API server
	apiServer, err := apiserver.NewServer(appLogger, runtimeCfg, configLoader, repo)
	if err != nil {
		appLogger.Error("Failed to create API server", "err", err)
		return fmt.Errorf("failed to create API server: %w", err)
	}

	serverErrChan := make(chan error, 1)
	go func() {
		if err := apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("API server error: %w", err)
		}
	}()

	appLogger.Info("Checkhub started successfully, waiting for shutdown signal")

	select {
	case <-sigCtx.Done():
		appLogger.Info("Shutdown signal received, starting graceful shutdown")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		if err := apiServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("API server shutdown error: %w", err)
		}
		appLogger.Info("Graceful shutdown completed")
		return nil
	case err := <-serverErrChan:
		appLogger.Error("Server error received", "err", err)
		return err
	}
}

// openRepository connects the configured store and prepares its schema
func openRepository(ctx context.Context, appLogger *logger.Logger, cfg *configapp.RuntimeConfig) (monitoringdomain.Repository, error) {
	switch cfg.Store {
	case configapp.StoreMemory:
		appLogger.Warn("Using in-memory store, checks are lost on restart")
		return monitoringinfra.NewMemoryRepository(), nil

	case configapp.StoreMongo:
		appLogger.Debug("Connecting to MongoDB", "database", cfg.MongoDatabase)
		client, err := database.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			appLogger.Error("Failed to connect to MongoDB", "err", err)
			return nil, fmt.Errorf("failed to connect to mongo: %w", err)
		}
		repo := monitoringinfra.NewMongoRepository(client, cfg.MongoDatabase)
		if err := repo.EnsureIndexes(ctx); err != nil {
			_ = repo.Close(ctx)
			appLogger.Error("Failed to create indexes", "err", err)
			return nil, fmt.Errorf("failed to create mongo indexes: %w", err)
		}
		return repo, nil

	default:
		return openSQLite(ctx, appLogger, cfg.DBPath)
	}
}

// sqliteRepository closes both connection pools with the repository
type sqliteRepository struct {
	*monitoringinfra.Repository
	closers []func() error
}

func (r *sqliteRepository) Close(ctx context.Context) error {
	for _, closeFn := range r.closers {
		if err := closeFn(); err != nil {
			return err
		}
	}
	return nil
}

func openSQLite(ctx context.Context, appLogger *logger.Logger, path string) (monitoringdomain.Repository, error) {
	appLogger.Debug("Connecting to database", "file", path)
	dbRead, err := database.ConnectSQLite(path)
	if err != nil {
		appLogger.Error("Failed to connect to read database", "err", err)
		return nil, fmt.Errorf("failed to connect to read database: %w", err)
	}
	dbRead.SetMaxOpenConns(runtime.NumCPU())

	dbWrite, err := database.ConnectSQLite(path)
	if err != nil {
		dbRead.Close()
		appLogger.Error("Failed to connect to write database", "err", err)
		return nil, fmt.Errorf("failed to connect to write database: %w", err)
	}
	dbWrite.SetMaxOpenConns(1)
	appLogger.Debug("Database pools configured", "read_max_open_conns", runtime.NumCPU(), "write_max_open_conns", 1)

	if _, err := dbWrite.ExecContext(ctx, schema.DDL); err != nil {
		dbWrite.Close()
		dbRead.Close()
		appLogger.Error("Failed to initialize schema", "err", err)
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	appLogger.Debug("Database schema initialized")

	return &sqliteRepository{
		Repository: monitoringinfra.NewRepository(dbRead, dbWrite),
		closers:    []func() error{dbWrite.Close, dbRead.Close},
	}, nil
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		// Use default logger for final error message if run() failed early
		logger.DefaultLogger().Error("Application error", "err", err)
		os.Exit(1)
	}
}
