package main

import (
	"fmt"

	"cfa_site/services/i18n"
	"cfa_site/templates/pages"

	"github.com/spf13/cobra"
)

func renderCommand() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Writes the landing page built from the embedded content to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := i18n.Load(); err != nil {
				return fmt.Errorf("could not load translations: %w", err)
			}
			if !i18n.Supported(lang) {
				return fmt.Errorf("unsupported language %q", lang)
			}

			ctx := i18n.WithLocale(cmd.Context(), lang)
			return pages.DefaultLanding().Render(ctx, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&lang, "lang", i18n.DefaultLang, "Language of the page chrome")

	return cmd
}
