package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/viper"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"gorm.io/gorm"

	"github.com/guiate/guiate/internal/cache"
	"github.com/guiate/guiate/internal/catalog"
	"github.com/guiate/guiate/internal/config"
	"github.com/guiate/guiate/internal/database"
	"github.com/guiate/guiate/internal/influx"
	"github.com/guiate/guiate/internal/logging"
	"github.com/guiate/guiate/internal/monitor"
	intOtel "github.com/guiate/guiate/internal/otel"
	"github.com/guiate/guiate/internal/players"
	"github.com/guiate/guiate/internal/queue"
	"github.com/guiate/guiate/internal/server"
	"github.com/guiate/guiate/internal/storage"
	"github.com/guiate/guiate/internal/worker"
	"github.com/guiate/guiate/pkg/core"
)

// Version and BuildDate can be set at build time via ldflags.
var (
	Version   string = "0.0.1"
	BuildDate string = "unknown"

	ServiceName string = "guiated"
)

func main() {
	sessionStart := time.Now()

	// Console logging until the config and log file are ready.
	slogManager := logging.NewSlogManager()
	slogManager.Setup(nil, "info", nil, nil)
	logger := slogManager.Logger()

	if err := config.Load("."); err != nil {
		logger.Warn("Failed to load config, using defaults!", "error", err)
	} else {
		logger.Info("Loaded config")
	}

	logsDir := viper.GetString("logsDir")
	if _, err := os.Stat(logsDir); os.IsNotExist(err) {
		os.Mkdir(logsDir, 0755)
	}

	logFilePath := logging.LogFilePath(logsDir, ServiceName, sessionStart)
	logFile, err := os.OpenFile(logFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		logger.Error("Failed to create/open log file!", "error", err, "path", logFilePath)
	}

	// OTel provider, after the log file exists so it can export there.
	var otelProvider *intOtel.Provider
	if viper.GetBool("otel.enabled") {
		otelProvider, err = intOtel.New(intOtel.Config{
			Enabled:      true,
			ServiceName:  ServiceName,
			BatchTimeout: 5 * time.Second,
			LogWriter:    logFile,
			Endpoint:     viper.GetString("otel.endpoint"),
			Insecure:     viper.GetBool("otel.insecure"),
		})
		if err != nil {
			logger.Error("Failed to initialize OTel provider", "error", err)
			otelProvider = nil
		} else {
			logger.Info("OTel provider initialized", "endpoint", viper.GetString("otel.endpoint"))
		}
	}

	var gelfWriter io.Writer
	if viper.GetBool("graylog.enabled") {
		gelfWriter, err = logging.NewGraylogWriter(viper.GetString("graylog.address"))
		if err != nil {
			logger.Warn("Failed to connect to Graylog", "error", err)
			gelfWriter = nil
		}
	}

	// Re-setup logging with file output and the optional sinks. Every
	// record carries the UTC game date so multi-day log files stay
	// greppable per daily round.
	var otelLogProvider *sdklog.LoggerProvider
	if otelProvider != nil {
		otelLogProvider = otelProvider.LoggerProvider()
	}
	slogManager.SetContextProvider(func() []slog.Attr {
		return []slog.Attr{slog.String("gameDate", time.Now().UTC().Format("2006-01-02"))}
	})
	slogManager.Setup(logFile, viper.GetString("logLevel"), otelLogProvider, gelfWriter)
	logger = slogManager.Logger()
	logger.Info("Starting", "service", ServiceName, "version", Version, "buildDate", BuildDate, "logFile", logFilePath)

	zlog := logging.NewZerolog(logFile, viper.GetString("logLevel"))

	// Database, degrading to the in-memory backend when unreachable.
	storageType := viper.GetString("storage.type")
	var db *gorm.DB
	dbManager := database.NewManager(zlog)
	if storageType != "memory" {
		if err := dbManager.Connect(); err != nil || !dbManager.IsValid {
			logger.Warn("Database unavailable, falling back to in-memory storage", "error", err)
			storageType = "memory"
		} else {
			if err := dbManager.Setup(); err != nil {
				logger.Error("Failed to migrate database", "error", err)
				os.Exit(1)
			}
			db = dbManager.DB
		}
	}

	backend, err := storage.NewBackend(storageType, db)
	if err != nil {
		logger.Error("Failed to create storage backend", "error", err, "type", storageType)
		os.Exit(1)
	}
	if err := backend.Init(); err != nil {
		logger.Error("Failed to init storage backend", "error", err)
		os.Exit(1)
	}
	logger.Info("Storage ready", "type", storageType)

	var influxManager *influx.Manager
	var requestMetrics server.RequestRecorder
	var guessMetrics worker.MetricsWriter
	if viper.GetBool("influx.enabled") {
		influxManager = influx.NewManager(zlog, filepath.Join(logsDir, "influx_backup.lp.gz"))
		if err := influxManager.Connect(); err != nil {
			logger.Warn("InfluxDB unavailable, points go to the backup file", "error", err)
		}
		requestMetrics = influxManager
		guessMetrics = influxManager
	}

	roster, err := players.Load()
	if err != nil {
		logger.Error("Failed to load player roster", "error", err)
		os.Exit(1)
	}
	logger.Info("Player roster loaded", "players", len(roster))

	loader := catalog.NewLoader(
		viper.GetString("world.url"),
		time.Duration(viper.GetInt("world.timeoutSeconds"))*time.Second,
		logger,
	)
	handle := &catalog.Handle{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Warm the catalog so the first request doesn't pay for the fetch.
	go handle.Get(ctx, loader)

	events := queue.New[core.GuessEvent]()
	workerManager := worker.NewManager(worker.Dependencies{
		LogManager: slogManager,
		Metrics:    guessMetrics,
	}, backend, events)
	workerManager.Start(ctx)

	guesses := &cache.SafeCounter{}
	monitorService := monitor.NewService(monitor.Dependencies{
		LogManager: slogManager,
		Handle:     handle,
		Events:     events,
		Worker:     workerManager,
		Guesses:    guesses,
	})
	if err := monitorService.Start(); err != nil {
		logger.Warn("Failed to start heartbeat monitor", "error", err)
	}

	deps := &server.Deps{
		Logger:   logger,
		Backend:  backend,
		Handle:   handle,
		Loader:   loader,
		Roster:   roster,
		Players:  cache.NewPlayerCache(roster),
		Daily:    cache.NewDailyCache(),
		Sessions: cache.NewSessionCache(),
		Events:   events,
		Worker:   workerManager,
		Guesses:  guesses,
		Metrics:  requestMetrics,
		Config: server.Config{
			WinDistanceKm:     viper.GetInt("game.winDistanceKm"),
			MaxPlayerAttempts: viper.GetInt("game.maxPlayerAttempts"),
			RankingLimit:      viper.GetInt("game.rankingLimit"),
			AdminPasswordHash: viper.GetString("admin.passwordHash"),
		},
	}
	if otelProvider != nil {
		deps.Meter = otelProvider.Meter(ServiceName)
	}

	srv := server.New(viper.GetString("http.addr"), deps)
	go func() {
		if err := srv.Run(ctx); err != nil {
			logger.Error("HTTP server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown failed", "error", err)
	}
	monitorService.Stop()
	workerManager.Stop()
	if influxManager != nil {
		influxManager.Close()
	}
	if err := backend.Close(); err != nil {
		logger.Error("Storage close failed", "error", err)
	}
	if dbManager.IsValid {
		dbManager.Close()
	}
	if err := slogManager.Flush(shutdownCtx); err != nil {
		logger.Error("Log flush failed", "error", err)
	}
	if otelProvider != nil {
		if err := otelProvider.Shutdown(shutdownCtx); err != nil {
			logger.Error("OTel shutdown failed", "error", err)
		}
	}
}
