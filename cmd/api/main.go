package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/propeq/equity-dashboard/internal/api"
	"github.com/propeq/equity-dashboard/internal/calculation"
	"github.com/propeq/equity-dashboard/internal/config"
	"github.com/propeq/equity-dashboard/internal/service"
	"github.com/propeq/equity-dashboard/internal/store"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewAPIConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize record store
	var s store.Store
	switch cfg.Store {
	case config.StorePostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		pg, err := store.OpenPostgres(ctx, cfg.DBConn)
		cancel()
		if err != nil {
			logger.Fatalf("Failed to connect to database: %v", err)
		}
		defer pg.Close()
		s = pg
	default:
		fs, err := store.LoadFileStore(cfg.DataFile)
		if err != nil {
			logger.Fatalf("Failed to load dataset: %v", err)
		}
		s = fs
	}

	// Initialize layers
	engine := calculation.NewCalculationEngine()
	engine.Debug = logLevel >= logrus.DebugLevel
	engine.SetLogger(logger)
	svc := service.NewDashboardService(s, engine, logger)
	h := api.NewHandler(svc, logger, cfg.Owner)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      api.NewRouter(h),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("Starting server on %s (store: %s)", addr, cfg.Store)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Shutdown failed: %v", err)
	}
	logger.Info("Server stopped")
}
