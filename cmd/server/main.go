package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/musictags/tagchart/internal/config"
	"github.com/musictags/tagchart/internal/dataset"
	"github.com/musictags/tagchart/internal/handlers"
	"github.com/musictags/tagchart/internal/logger"
	"github.com/musictags/tagchart/internal/middleware"
)

func main() {
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	debugMode := cfg.DebugMode || *debugFlag

	zapLogger, err := logger.NewProductionLogger(debugMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() {
		if syncErr := zapLogger.Sync(); syncErr != nil {
			// Ignore sync errors on shutdown
			_ = syncErr
		}
	}()

	zapLogger.Info("starting_server",
		zap.Bool("debug_mode", debugMode),
		zap.String("server_port", cfg.ServerPort),
		zap.String("artists_path", cfg.ArtistsPath),
		zap.String("tags_path", cfg.TagsPath),
		zap.String("tagged_artists_path", cfg.TaggedArtistsPath),
	)

	// Load the three datasets once; the process must not serve without them.
	cat, err := dataset.Load(zapLogger, dataset.Paths{
		Artists:       cfg.ArtistsPath,
		Tags:          cfg.TagsPath,
		TaggedArtists: cfg.TaggedArtistsPath,
	})
	if err != nil {
		zapLogger.Fatal("failed_to_load_datasets", zap.Error(err))
	}

	searchHandler, err := handlers.NewSearchHandler(cat, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed_to_parse_templates", zap.Error(err))
	}
	healthChecker := handlers.NewHealthChecker(cat)

	rateLimitMW, err := middleware.RateLimit(cfg.RateLimit)
	if err != nil {
		zapLogger.Fatal("failed_to_create_rate_limiter", zap.Error(err))
	}

	r := mux.NewRouter()

	// Middleware chain; gorilla/mux runs these in registration order.
	r.Use(middleware.SecurityHeaders(cfg.EnableHSTS))
	if cfg.FrontendURL != "" {
		c := cors.New(cors.Options{
			AllowedOrigins: []string{cfg.FrontendURL},
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
		})
		r.Use(c.Handler)
	}
	r.Use(middleware.MaxRequestSize(middleware.DefaultMaxRequestSize))
	r.Use(middleware.ContentType)
	r.Use(middleware.Timeout(middleware.DefaultRequestTimeout))
	r.Use(middleware.RequestID)
	r.Use(middleware.ErrorHandler(zapLogger))
	r.Use(middleware.Logging(zapLogger))
	r.Use(rateLimitMW)

	r.HandleFunc("/healthz", healthChecker.HealthCheck).Methods("GET")
	searchHandler.RegisterRoutes(r)

	srv := &http.Server{
		Addr:           ":" + cfg.ServerPort,
		Handler:        r,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		zapLogger.Info("server_starting", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("server_failed_to_start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("server_shutting_down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server_forced_to_shutdown", zap.Error(err))
	}

	zapLogger.Info("server_exited")
}
