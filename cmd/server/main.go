package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"airtable-relay/internal/relay/client"
	"airtable-relay/internal/relay/config"
	"airtable-relay/internal/relay/handler"
	"airtable-relay/internal/relay/logbuf"
	"airtable-relay/internal/relay/metrics"
	"airtable-relay/internal/relay/router"
	"airtable-relay/internal/relay/service"
	"airtable-relay/internal/relay/util"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	// 0. Init Logger
	util.InitLogger()
	logger := util.GetLogger()

	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if !cfg.HasToken() {
		// Degraded, not fatal: /health reports it and proxied routes fail
		// upstream on their own.
		logger.Warn("No Airtable credential configured, /health will report unhealthy")
	}

	// 2. Init Layers
	logs := logbuf.New(logbuf.DefaultCapacity)
	m := metrics.New()
	airtable := client.NewAirtableClient(client.DefaultBaseURL, cfg.Token, cfg.UpstreamTimeout)
	svc := service.NewService(airtable, logs, m)
	h := handler.NewRelayHandler(svc, cfg)

	// 3. Init Echo & Routes
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
			)
			return nil
		},
	}))

	router.RegisterRoutes(e, h, m)

	// 4. Start Server with Graceful Shutdown
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("shutting down the server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server Shutdown Failed", "error", err)
	}

	logger.Info("Server exited properly")
}
