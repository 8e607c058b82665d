// cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zksindonesia/zprofit/internal/api"
	"github.com/zksindonesia/zprofit/internal/config"
	"github.com/zksindonesia/zprofit/internal/report"
	"github.com/zksindonesia/zprofit/internal/service"
	"github.com/zksindonesia/zprofit/internal/storage"
	"github.com/zksindonesia/zprofit/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	if cfg.Server.Mode == "debug" {
		logger.SetLevel("debug")
		gin.SetMode(gin.DebugMode)
	} else {
		logger.UseJSON()
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize report archive
	archive, err := storage.NewLocalArchive(cfg.App.ArchiveDir)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to initialize report archive")
	}

	// Initialize services
	formulaCfg := report.Config{
		AdminFeeRate:         cfg.Report.AdminFeeRate,
		DefaultReturnReserve: cfg.Report.DefaultReturnReserve,
	}
	reportService := service.NewReportService(cfg.Report.BusinessName, formulaCfg, archive)

	// Initialize HTTP server
	router := api.NewRouter(reportService, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
