package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"cfa_site/config"
	"cfa_site/handlers"
	"cfa_site/middleware"
	"cfa_site/services/logger"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServer(cfg *config.Config, site *handlers.Site) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger())
	if cfg.MetricsEnabled {
		e.Use(middleware.Metrics())
	}
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead},
	}))
	e.Use(middleware.Config(cfg))
	e.Use(middleware.CSPNonce(cfg.R2PublicURL))
	e.Use(middleware.Locale(cfg))

	handlers.RegisterRoutes(e, cfg, site)
	return e
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the HTTP server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			e := newServer(cfg, setupSite(ctx, cfg))

			go func() {
				logger.Info(ctx, "starting webserver...", zap.String("port", cfg.ServerPort), zap.String("environment", cfg.Environment))
				if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal(ctx, "could not start webserver", zap.Error(err))
				}
			}()

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			logger.Info(shutdownCtx, "stopping webserver...")
			if err := e.Shutdown(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop webserver", zap.Error(err))
			}
		},
	}

	return cmd
}
