// Package main serves truth tables, evaluation and equivalence checks of
// propositional formulas over HTTP.
package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/truthtable/internal/router"
	"github.com/DjordjeVuckovic/truthtable/internal/server"
)

func main() {
	cfg, err := server.LoadConfig("cmd/truthtable_api/.env")
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)

	s := server.New(cfg, server.NewFormulaHealthChecker()).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Truth Table API is running")
	})

	router.NewTruthTableRouter(s.Echo, router.WithMaxVariables(cfg.MaxTableVariables)).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, draining requests...")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
