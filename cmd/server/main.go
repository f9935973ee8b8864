package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/ivoirestore/backend/internal/application/catalog"
	feedbackapp "github.com/ivoirestore/backend/internal/application/feedback"
	identityapp "github.com/ivoirestore/backend/internal/application/identity"
	"github.com/ivoirestore/backend/internal/application/media"
	reportapp "github.com/ivoirestore/backend/internal/application/report"
	tradeapp "github.com/ivoirestore/backend/internal/application/trade"
	"github.com/ivoirestore/backend/internal/infrastructure/auth"
	"github.com/ivoirestore/backend/internal/infrastructure/cache"
	"github.com/ivoirestore/backend/internal/infrastructure/config"
	"github.com/ivoirestore/backend/internal/infrastructure/logger"
	"github.com/ivoirestore/backend/internal/infrastructure/migration"
	"github.com/ivoirestore/backend/internal/infrastructure/persistence"
	"github.com/ivoirestore/backend/internal/infrastructure/storage"
	"github.com/ivoirestore/backend/internal/infrastructure/telemetry"
	"github.com/ivoirestore/backend/internal/interfaces/http/middleware"
	"github.com/ivoirestore/backend/internal/interfaces/http/router"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const meterName = "github.com/ivoirestore/backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	baseLog, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		Dir:        cfg.Log.Dir,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(baseLog)
	}()

	ctx := context.Background()

	// Telemetry providers are no-ops unless enabled in config.
	tracingCfg, metricsCfg, logsCfg := telemetry.FromSettings(cfg.Telemetry, cfg.App.Version)
	tracerProvider, err := telemetry.NewTracerProvider(ctx, tracingCfg, baseLog)
	if err != nil {
		baseLog.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer shutdown(baseLog, "tracer provider", tracerProvider.Shutdown)

	meterProvider, err := telemetry.NewMeterProvider(ctx, metricsCfg, baseLog)
	if err != nil {
		baseLog.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	defer shutdown(baseLog, "meter provider", meterProvider.Shutdown)

	loggerProvider, err := telemetry.NewLoggerProvider(ctx, logsCfg, baseLog)
	if err != nil {
		baseLog.Fatal("Failed to initialize logger provider", zap.Error(err))
	}
	defer shutdown(baseLog, "logger provider", loggerProvider.Shutdown)

	log := loggerProvider.Bridge(baseLog, zapcore.InfoLevel)

	profiler, err := telemetry.NewProfiler(telemetry.ProfilerConfig{
		Enabled:         cfg.Telemetry.ProfilingEnabled,
		ServerAddress:   cfg.Telemetry.ProfilingServer,
		ApplicationName: cfg.Telemetry.ServiceName,
	}, log)
	if err != nil {
		log.Warn("Failed to start profiler", zap.Error(err))
	} else if profiler.IsEnabled() {
		tracerProvider.EnableSpanProfiles()
		defer func() {
			if err := profiler.Stop(); err != nil {
				log.Error("Error stopping profiler", zap.Error(err))
			}
		}()
	}

	log.Info("Starting IvoireStore API",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", cfg.App.Version),
	)

	if err := runMigrations(cfg, log); err != nil {
		log.Fatal("Failed to apply migrations", zap.Error(err))
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh),
		logger.WithSQL(cfg.Telemetry.DBLogFullSQL),
	)
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfig{
		Enabled:         cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		LogFullSQL:      cfg.Telemetry.DBLogFullSQL,
		SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
		DBName:          cfg.Database.DBName,
	}, log); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	meter := meterProvider.Meter(meterName)
	marketplaceMetrics, err := telemetry.NewMarketplaceMetrics(meter)
	if err != nil {
		log.Fatal("Failed to create marketplace metrics", zap.Error(err))
	}

	objectStorage, err := newObjectStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize object storage", zap.Error(err))
	}

	rateCounter, closeCounter, err := newRateCounter(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize rate limit counter", zap.Error(err))
	}
	defer closeCounter()

	// Repositories
	adminRepo := persistence.NewGormAdminRepository(db.DB)
	boutiqueRepo := persistence.NewGormBoutiqueRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	avisRepo := persistence.NewGormAvisRepository(db.DB)
	dashboardRepo := persistence.NewGormDashboardRepository(db.DB)

	// Application services
	hasher := auth.NewPasswordHasher(auth.PasswordCost)
	jwtService := auth.NewJWTService(cfg.JWT)
	services := router.Services{
		Auth:      identityapp.NewAuthService(adminRepo, jwtService, hasher, log),
		Admins:    identityapp.NewAdminService(adminRepo, hasher, log),
		Boutiques: catalogapp.NewBoutiqueService(boutiqueRepo, log),
		Products:  catalogapp.NewProductService(productRepo, boutiqueRepo, log),
		Orders: tradeapp.NewOrderService(orderRepo, productRepo, log,
			tradeapp.WithMetrics(marketplaceMetrics)),
		Avis:  feedbackapp.NewAvisService(avisRepo, log),
		Stats: reportapp.NewStatsService(dashboardRepo, log),
		Uploads: media.NewUploadService(objectStorage, log,
			media.WithStoredHook(func(ctx context.Context, folder string, r *media.UploadResult) {
				marketplaceMetrics.RecordUpload(ctx, folder, r.ContentType, r.Size)
			})),
	}

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine, err := router.New(router.Config{
		App:  cfg.App,
		HTTP: cfg.HTTP,
		Tracing: middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     cfg.Telemetry.Enabled,
		},
		Logger:      log,
		Meter:       meter,
		RateCounter: rateCounter,
		DB:          db,
	}, services)
	if err != nil {
		log.Fatal("Failed to build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("Shutting down server...", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	log.Info("Server exited gracefully")
}

// runMigrations applies the embedded schema migrations on a dedicated connection;
// closing the migrator also closes the pool it was given.
func runMigrations(cfg *config.Config, log *zap.Logger) error {
	sqlDB, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return err
	}
	m, err := migration.New(sqlDB, log)
	if err != nil {
		_ = sqlDB.Close()
		return err
	}
	defer m.Close()
	return m.Up()
}

// newObjectStorage returns S3 storage when a bucket is configured and an in-memory
// store otherwise.
func newObjectStorage(ctx context.Context, cfg *config.Config, log *zap.Logger) (media.ObjectStorage, error) {
	if cfg.Storage.Bucket == "" {
		log.Warn("No storage bucket configured, uploads are kept in memory")
		return storage.NewMemoryObjectStorage("http://localhost:" + cfg.App.Port + "/uploads"), nil
	}

	s3Storage, err := storage.NewS3ObjectStorage(&cfg.Storage, storage.WithLogger(log))
	if err != nil {
		return nil, err
	}
	if err := s3Storage.EnsureBucket(ctx); err != nil {
		return nil, err
	}
	log.Info("Object storage ready", zap.String("bucket", s3Storage.Bucket()))
	return s3Storage, nil
}

// newRateCounter builds the rate limit backend selected in config.
func newRateCounter(ctx context.Context, cfg *config.Config, log *zap.Logger) (cache.WindowCounter, func(), error) {
	if cfg.HTTP.RateLimitBackend == config.RateLimitBackendRedis {
		client, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Rate limiting backed by Redis", zap.String("addr", cfg.Redis.Addr()))
		return cache.NewRedisWindowCounter(client, "ivoirestore:ratelimit:"), func() {
			if err := client.Close(); err != nil {
				log.Error("Error closing Redis client", zap.Error(err))
			}
		}, nil
	}

	counter := cache.NewMemoryWindowCounter(time.Minute)
	return counter, func() { _ = counter.Close() }, nil
}

func shutdown(log *zap.Logger, name string, fn func(context.Context) error) {
	if err := fn(context.Background()); err != nil {
		log.Error("Error shutting down "+name, zap.Error(err))
	}
}
