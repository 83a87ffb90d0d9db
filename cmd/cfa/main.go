// Package main is the CFA site binary: it serves the landing page or exports it
// as static files.
package main

import (
	"context"
	"log"
	"os"

	"cfa_site/config"
	"cfa_site/content"
	"cfa_site/handlers"
	"cfa_site/middleware"
	"cfa_site/services"
	"cfa_site/services/i18n"
	"cfa_site/services/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// setupSite loads everything a render needs: translations, asset hashes,
// storage and the content tables.
func setupSite(ctx context.Context, cfg *config.Config) *handlers.Site {
	if err := i18n.Load(); err != nil {
		logger.Fatal(ctx, "could not load translations", zap.Error(err))
	}

	middleware.InitAssetVersions(ctx, cfg.StaticDir)
	services.InitializeStorage(ctx, cfg)

	tables, err := content.Load(cfg.ContentFile)
	if err != nil {
		logger.Fatal(ctx, "could not load content tables", zap.Error(err), zap.String("file", cfg.ContentFile))
	}

	assets := services.NewAssetResolver(services.Storage, services.NewVersioner(cfg.AssetVersioner))
	return handlers.NewSite(tables, assets)
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "cfa",
		Short: "CFA landing site",
	}

	log.Println("loading config ...")
	cfg := config.Load()

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		serveCommand(cfg),
		exportCommand(cfg),
		renderCommand(),
	)

	err := rootCmd.Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
