package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripfinder/cfg"
	"tripfinder/internal/catalog"
	"tripfinder/internal/filterstate"
	"tripfinder/internal/suggest"
	"tripfinder/pkg/backend"
	"tripfinder/pkg/cache"
	"tripfinder/pkg/db"
	"tripfinder/pkg/idgen"
	"tripfinder/pkg/logger"

	_ "tripfinder/cmd/tripfinder/docs" // swagger docs

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// @title           Tripfinder API
// @version         1.0
// @description     Discovery API for packages, destinations and fixed departures: suggestions, filtering, sorting and pagination.
// @BasePath        /
// @schemes         http
func main() {
	// ============
	// config
	// ============
	config, errCfg := cfg.Load()
	if errCfg != nil {
		log.Fatal(errCfg)
	}

	// ============
	// logger
	// ============
	zlogger := logger.NewZeroLog(config.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ============
	// Otel
	// ============
	if config.Observability.OTLPEndpoint != "" {
		shutdownOtel, err := initOtel(ctx, &config.Observability, zlogger)
		if err != nil {
			zlogger.Warn("failed to initialize OpenTelemetry, continuing without tracing/metrics",
				logger.Field{Key: "err", Value: err},
			)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdownOtel(ctx); err != nil {
					zlogger.Error("failed to shutdown OpenTelemetry", logger.Field{Key: "err", Value: err})
				}
			}()
		}
	}

	// ============
	// Cache
	// ============
	var store cache.Cache
	if addr := config.RedisConfig.Addr(); addr != "" {
		store = cache.NewRedisCache(addr, config.RedisConfig.Password)
	} else {
		zlogger.Warn("REDIS_HOST not set, using in-process cache")
		mem := cache.NewMemoryCache()
		defer mem.Close()
		store = mem
	}

	// ============
	// Filter state store
	// ============
	states := filterstate.CacheOpener(store, config.SessionTTL)
	if dsn := config.Postgres.DSN(); dsn != "" {
		if err := db.Migrate(config.Postgres.MigrationsPath, dsn); err != nil {
			log.Fatal(err)
		}
		sqlClient, err := db.NewSQLClient(ctx, "postgres", dsn, db.PoolConfig{
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
		})
		if err != nil {
			log.Fatal(err)
		}
		defer sqlClient.Close()
		states = filterstate.SQLOpener(sqlClient, config.SessionTTL)
		zlogger.Info("filter state stored in postgres", logger.Field{Key: "host", Value: config.Postgres.Host})
	}

	// ============
	// External Service
	// ============
	httpClient := &http.Client{
		Timeout: config.BackendConfig.Timeout,
	}
	backendClient := backend.NewClient(httpClient, config.BackendConfig.BaseURL, zlogger)

	ids, err := idgen.NewSnowflakeGenerator(config.NodeID)
	if err != nil {
		log.Fatal(err)
	}

	// ============
	// Internal Service
	// ============
	aggregator := suggest.NewAggregator(backendClient, suggest.DefaultSources, config.SuggestConfig.SourceTimeout, zlogger)
	suggestSvc := suggest.NewService(aggregator, store, config.SuggestConfig.CacheTTL, zlogger)
	suggestHandler := suggest.NewSuggestHandler(suggestSvc, config.SuggestConfig.Debounce, zlogger)

	catalogSvc := catalog.NewService(backendClient, store, config.CacheTTLMinutes, config.ListingLimit, zlogger)
	catalogHandler := catalog.NewCatalogHandler(catalogSvc, states, ids, zlogger)

	// ============
	// HTTP
	// ============
	if config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(config.Observability.ServiceName))
	r.Use(RequestIDMiddleware())
	r.Use(TraceLoggerMiddleware(zlogger))

	catalogHandler.RegisterRoutes(r)
	suggestHandler.RegisterRoutes(r)
	initSwagger(r)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.AppPort),
		Handler: r,
	}

	go func() {
		zlogger.Info("server starting", logger.Field{Key: "port", Value: config.AppPort})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	zlogger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlogger.Error("server forced to shutdown", logger.Field{Key: "err", Value: err})
	}
}

func initSwagger(r *gin.Engine) {
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		html := `<!DOCTYPE html>
<html>
<head>
    <title>Tripfinder API</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
    <script id="api-reference" data-url="/swagger/doc.json"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`
		c.String(http.StatusOK, html)
	})
}
