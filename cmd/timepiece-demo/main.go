package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"timepiece/ics"
	"timepiece/internal/config"
)

func main() {
	configPath := flag.String("config", "timepiece.yaml", "path to the YAML config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := log.NewWithOptions(logFile, log.Options{ReportTimestamp: true})

	a, err := newApp(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	loadActivity(a, cfg, logger)

	p := tea.NewProgram(a, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadActivity feeds the heatmap from the configured ICS files. A broken
// source is logged and skipped.
func loadActivity(a *app, cfg *config.Config, logger *log.Logger) {
	loc, err := cfg.Location()
	if err != nil {
		logger.Error("bad timezone, using local", "timezone", cfg.Timezone, "err", err)
		loc = nil
	}

	for _, src := range cfg.ICS {
		f, err := os.Open(src.Path)
		if err != nil {
			logger.Error("ics open failed", "name", src.Name, "path", src.Path, "err", err)
			continue
		}
		events, err := ics.Parse(f)
		f.Close()
		if err != nil {
			logger.Error("ics parse failed", "name", src.Name, "path", src.Path, "err", err)
			continue
		}

		totals, err := ics.DailyTotals(events, cfg.Year, loc)
		if err != nil {
			logger.Error("ics totals failed", "name", src.Name, "err", err)
			continue
		}
		for day, hours := range totals {
			a.manager.Add(day, hours)
		}
		logger.Info("ics loaded", "name", src.Name, "events", len(events), "days", len(totals))
	}
}
