package main

import (
	"github.com/spf13/cobra"

	"github.com/tesserakit/tessera/internal/logger"
)

type rootFlags struct {
	verbose   bool
	themePath string
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "tessera",
		Short:         "Tessera is a theme-aware component kit for terminal applications",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// With no subcommand, open the component gallery.
			return runGallery(log, flags)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.themePath, "theme", "", "Path to a YAML theme file")

	cmd.AddCommand(newGalleryCmd(log, flags))
	cmd.AddCommand(newThemesCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
