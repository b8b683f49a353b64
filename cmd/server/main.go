package main

import (
	"alcyxob/fitness-tracker/internal/api"
	"alcyxob/fitness-tracker/internal/config"
	"alcyxob/fitness-tracker/internal/logging"
	"alcyxob/fitness-tracker/internal/repository"
	"alcyxob/fitness-tracker/internal/service"
	"alcyxob/fitness-tracker/internal/storage"
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/juju/clock"
	log "github.com/sirupsen/logrus"
)

// @title Fitness Tracker API
// @version 1.0
// @description Local API for logging workouts and the exercises performed in them.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token. Only required when auth.secret is set.
func main() {
	configDir := flag.String("config", ".", "directory containing config.yaml")
	flag.Parse()

	// --- Configuration ---
	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	logging.Setup(cfg.Log)
	log.Infof("starting fitness tracker server, storage driver: %s", cfg.Storage.Driver)

	// --- Storage ---
	openCtx, cancelOpen := context.WithTimeout(context.Background(), 30*time.Second)
	kv, err := storage.Open(openCtx, cfg.Storage)
	cancelOpen()
	if err != nil {
		log.Fatalf("could not open %s storage: %v", cfg.Storage.Driver, err)
	}
	defer func() {
		log.Debugln("closing storage...")
		if err := kv.Close(); err != nil {
			log.Errorf("failed to close storage: %v", err)
		}
	}()

	// --- Repositories ---
	exerciseStore := repository.NewExerciseStore(kv)
	workoutStore := repository.NewWorkoutStore(kv, exerciseStore)

	// --- Services ---
	workoutService := service.NewWorkoutService(workoutStore)
	exerciseService := service.NewExerciseService(workoutStore, exerciseStore)
	statsService := service.NewStatsService(workoutStore, exerciseStore, clock.WallClock, cfg.Stats.MonthlyTarget)

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	if cfg.Auth.Secret == "" {
		log.Warnln("auth.secret is empty, the API accepts unauthenticated requests")
	}
	api.SetupRoutes(router, cfg.Auth.Secret, workoutService, exerciseService, statsService)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infof("server listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Infoln("shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Errorf("server forced to shutdown: %v", err)
	}

	log.Infoln("server exiting")
}

// requestLogger routes gin's access log through logrus so it lands in the rotated file too.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(log.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Debug("request")
	}
}
