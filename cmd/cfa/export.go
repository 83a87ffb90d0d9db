package main

import (
	"fmt"

	"cfa_site/config"
	"cfa_site/services"
	"cfa_site/services/export"
	"cfa_site/services/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func exportCommand(cfg *config.Config) *cobra.Command {
	var opts export.Options

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Renders the landing page to static files",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			site := setupSite(ctx, cfg)

			opts.AppURL = cfg.AppURL
			opts.StaticDir = cfg.StaticDir
			opts.PDFOptions = services.DefaultPDFOptions()
			opts.PDFOptions.ChromePath = cfg.ChromePath

			if opts.Upload && !cfg.R2Enabled() {
				logger.Warn(ctx, "R2 is not configured, uploading to the local static directory")
			}

			result, err := export.New(site, services.Storage).Run(ctx, opts)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			logger.Info(ctx, "export finished",
				zap.Strings("files", result.Files),
				zap.Int("uploaded", len(result.Uploaded)),
				zap.Int("unchanged", len(result.Unchanged)),
				zap.Strings("pruned", result.Pruned),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.OutDir, "out", "o", "dist", "Output directory")
	cmd.Flags().StringVar(&opts.Locale, "lang", "en", "Language of the page chrome")
	cmd.Flags().BoolVar(&opts.PDF, "pdf", false, "Also print a PDF brochure with headless Chrome")
	cmd.Flags().BoolVar(&opts.Upload, "upload", false, "Upload the exported files and the static assets to storage")
	cmd.Flags().BoolVar(&opts.Check, "check", false, "Validate the content tables before rendering")

	return cmd
}
