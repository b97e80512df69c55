package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tesserakit/tessera/pkg/components"
)

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the stock themes with colour swatches",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, theme := range []components.Theme{
				components.DefaultTheme(),
				components.DarkTheme(),
			} {
				fmt.Fprintf(out, "%s\n", theme.Name)
				fmt.Fprintf(out, "  %s %s %s %s\n",
					swatch(theme, components.VariantPrimary),
					swatch(theme, components.VariantSuccess),
					swatch(theme, components.VariantWarning),
					swatch(theme, components.VariantDanger),
				)
			}
			return nil
		},
	}
}

func swatch(theme components.Theme, variant components.Variant) string {
	return components.NewBadge(variant.String()).WithVariant(variant).ViewWith(theme)
}
