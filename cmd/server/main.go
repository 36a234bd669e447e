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

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/jpittelkow/toddler-schedule-app/internal/config"
	"github.com/jpittelkow/toddler-schedule-app/internal/database"
	"github.com/jpittelkow/toddler-schedule-app/internal/handlers"
	"github.com/jpittelkow/toddler-schedule-app/internal/middleware"
	"github.com/jpittelkow/toddler-schedule-app/internal/schedule"
	"github.com/jpittelkow/toddler-schedule-app/internal/store"
)

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	initCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.Init(initCtx, pool); err != nil {
		cancel()
		logger.Fatal("Failed to initialize schema", zap.Error(err))
	}

	stores := store.New(pool)
	if err := stores.Activities.Seed(initCtx, schedule.DefaultCatalog()); err != nil {
		cancel()
		logger.Fatal("Failed to seed activity catalog", zap.Error(err))
	}
	cancel()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(middleware.WithLogger(logger))
	r.Use(middleware.WithStores(stores))

	r.GET("/health", handlers.Health)

	api := r.Group("/api")
	{
		api.GET("/version", handlers.GetVersion)

		api.GET("/settings", handlers.GetSettings)
		api.PUT("/settings", handlers.UpdateSettings)

		api.GET("/schedule/week", handlers.GetWeek)
		api.GET("/schedule/:date/:type", handlers.GetSchedule)
		api.DELETE("/schedule/:date/:type", handlers.DeleteSchedule)
		api.POST("/schedule/:date/:type/slots/:slot/refresh", handlers.RefreshSlot)

		api.GET("/activities", handlers.ListActivities)
		api.POST("/activities", handlers.CreateActivity)
		api.DELETE("/activities/:id", handlers.DeleteActivity)
		api.POST("/activities/:id/rate", handlers.RateActivity)
		api.GET("/ratings/:date", handlers.GetRatings)

		api.POST("/activity-log", handlers.LogActivity)
		api.GET("/activity-history", handlers.GetActivityHistory)

		api.GET("/weather", handlers.GetWeather)
		api.POST("/geocode", handlers.Geocode)

		api.POST("/home-assistant/webhook", handlers.RelayWebhook)
		api.POST("/cleanup", handlers.Cleanup)
	}

	// Nightly retention sweep; the same pruning is reachable on demand via
	// POST /api/cleanup.
	sweeper := cron.New()
	_, err = sweeper.AddFunc(cfg.CleanupSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		schedules, err := stores.Schedules.DeleteOlderThan(ctx, cfg.RetentionDays)
		if err != nil {
			logger.Warn("schedule retention sweep failed", zap.Error(err))
			return
		}
		history, err := stores.History.DeleteOlderThan(ctx, cfg.RetentionDays)
		if err != nil {
			logger.Warn("history retention sweep failed", zap.Error(err))
			return
		}
		logger.Info("retention sweep complete",
			zap.Int64("schedules_deleted", schedules),
			zap.Int64("history_deleted", history))
	})
	if err != nil {
		logger.Fatal("Invalid cleanup schedule", zap.String("schedule", cfg.CleanupSchedule), zap.Error(err))
	}
	sweeper.Start()
	defer sweeper.Stop()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
