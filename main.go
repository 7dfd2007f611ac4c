package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/qyinm/nearby/api"
	"github.com/qyinm/nearby/config"
	"github.com/qyinm/nearby/location"
	"github.com/qyinm/nearby/logging"
	"github.com/qyinm/nearby/types"
	"github.com/qyinm/nearby/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("nearby needs an interactive terminal")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, closeLog, err := logging.NewFile(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	// Query the terminal background before the program takes over stdin.
	// lipgloss caches the answer, so the theme loader returns immediately.
	lipgloss.HasDarkBackground()

	client := api.New(cfg.APIURL, cfg.APITimeout, log)

	var granted *types.Location
	if cfg.Location != nil {
		granted = &types.Location{Latitude: cfg.Location.Latitude, Longitude: cfg.Location.Longitude}
	}

	log.Info("starting", "api", cfg.APIURL, "location", granted != nil)

	m := ui.NewModel(client, location.NewStatic(granted), ui.Options{Log: log})
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
