package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vaketracker-api/docs"
	"vaketracker-api/internal/auth"
	"vaketracker-api/internal/config"
	"vaketracker-api/internal/handler"
	"vaketracker-api/internal/metrics"
	"vaketracker-api/internal/middleware"
	"vaketracker-api/internal/repository"
	"vaketracker-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const configPath = "./configs"

// @title                       VakeTracker API
// @version                     1.0
// @description                 Field location capture, region classification and heat-map dashboards.
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	config, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	setupLogger(config)

	if err := watchLogLevel(); err != nil {
		log.Debug().Err(err).Msg("log level hot reload disabled")
	}

	ctx := context.Background()

	var (
		store    service.LocationStore
		geocoder service.Geocoder
		places   handler.GeoCodingService
	)

	switch config.LocationStore {
	case "supabase":
		client, err := repository.NewSupabaseClient(config.SupabaseURL, config.SupabaseKey)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot create supabase client")
		}
		store = repository.NewSupabaseRepository(client)
		log.Info().Msg("using supabase location store")
	default:
		// Database connection
		conn, err := pgxpool.New(ctx, config.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()

		repo := repository.NewRepository(conn)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("cannot prepare database schema")
		}

		reverseGeocodeService := service.NewReverseGeoCodeService(repo)
		store, geocoder, places = repo, reverseGeocodeService, reverseGeocodeService
		log.Info().Msg("using postgres location store")
	}

	collector := metrics.NewCollector(prometheus.DefaultRegisterer)
	authService := auth.NewService(config.JWTSecret, config.JWTExpiry)

	// Initialize layers
	locationService := service.NewLocationService(store, geocoder, collector)

	r := setupRouter(authService, collector, handler.NewLocationHandler(locationService), places)

	srv := &http.Server{
		Addr:              config.ServerAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("address", config.ServerAddress).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
}

// setupRouter wires the public and authenticated routes. places may be nil when
// the configured store has no gazetteer.
func setupRouter(validator middleware.TokenValidator, collector *metrics.Collector, locations *handler.LocationHandler, places handler.GeoCodingService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(), collector.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	docs.SwaggerInfo.BasePath = "/"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1", middleware.Authenticate(validator))
	api.GET("/countries", locations.Countries)
	api.GET("/classify", locations.Classify)
	api.POST("/locations", locations.Capture)
	api.GET("/locations", locations.List)
	api.GET("/heatmap", locations.Heatmap)
	api.GET("/summary", locations.Summary)

	if places != nil {
		api.GET("/reverse-geocode", handler.NewReverseGeocodeHandler(places).ReverseGeocode)
	}

	return r
}

func setupLogger(cfg config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if !cfg.IsProduction() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	setLogLevel(cfg.LogLevel)
}

func setLogLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		log.Warn().Str("level", level).Msg("unknown log level, using info")
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func watchLogLevel() error {
	return config.WatchLogLevel(configPath, func(level string) {
		setLogLevel(level)
		log.Info().Str("level", level).Msg("log level reloaded")
	})
}
