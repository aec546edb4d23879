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

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"convoy_tracker/internal/config"
	"convoy_tracker/internal/controllers"
	"convoy_tracker/internal/logger"
	"convoy_tracker/internal/middleware"
	"convoy_tracker/internal/repository"
	"convoy_tracker/internal/routes"
	"convoy_tracker/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize structured logging
	logger.Setup(cfg.Log)
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to the database
	db, err := config.InitDB(cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("database unavailable")
	}

	navRepo := repository.NewNavigationRepository(db)
	fleetRepo := repository.NewFleetRepository(db)

	navigation := services.NewNavigationService(navRepo, services.MockSynthesizer{})
	sync := services.NewSyncService(navRepo, cfg.App.Location, config.Now)

	r := routes.SetupRouter(routes.Handlers{
		Navigation: controllers.NewNavigationController(navigation, sync),
		Fleet:      controllers.NewFleetController(fleetRepo),
		Dashboard:  controllers.NewDashboardController(navRepo, fleetRepo),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port),
		Handler:      middleware.EnableCORS(r, cfg.App.CORSAllowedOrigins),
		ReadTimeout:  cfg.App.ReadTimeout,
		WriteTimeout: cfg.App.WriteTimeout,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	err = serve(srv, quit, cfg.App.ShutdownTimeout)

	if sqlDB, dbErr := db.DB(); dbErr == nil {
		sqlDB.Close()
	}
	if err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}

// serve runs srv until a signal arrives on stop, then shuts it down. A
// listener failure is returned instead.
func serve(srv *http.Server, stop <-chan os.Signal, shutdownTimeout time.Duration) error {
	failed := make(chan error, 1)
	go func() {
		logrus.WithField("addr", srv.Addr).Info("🚀 Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			failed <- err
		}
	}()

	select {
	case err := <-failed:
		return fmt.Errorf("listen on %s: %w", srv.Addr, err)
	case sig := <-stop:
		logrus.WithField("signal", sig.String()).Info("Shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
