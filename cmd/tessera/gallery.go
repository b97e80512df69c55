package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tesserakit/tessera/internal/config"
	"github.com/tesserakit/tessera/internal/logger"
	"github.com/tesserakit/tessera/internal/tui"
	"github.com/tesserakit/tessera/pkg/components"
)

func newGalleryCmd(log *logger.Logger, flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "gallery",
		Short: "Browse every component interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(log, flags)
		},
	}
}

func runGallery(log *logger.Logger, flags *rootFlags) error {
	if flags.verbose {
		verbose, err := logger.New(logger.Options{Level: "debug", Pretty: true})
		if err != nil {
			return err
		}
		log = verbose
	}

	if err := applyTheme(log, flags.themePath); err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the gallery needs an interactive terminal")
	}

	log.Info("starting gallery")
	program := tea.NewProgram(tui.NewModel(log), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Error(err, "gallery exited")
		return err
	}
	return nil
}

func applyTheme(log *logger.Logger, path string) error {
	if path == "" {
		return nil
	}

	theme, err := config.LoadTheme(path)
	if err != nil {
		return err
	}
	components.SetTheme(theme)
	log.WithFields(map[string]any{"theme": theme.Name}).Info("theme loaded")
	return nil
}
