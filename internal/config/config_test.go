package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WeekStart != "monday" {
		t.Errorf("WeekStart = %q, want monday", cfg.WeekStart)
	}
	if cfg.Year != time.Now().Year() {
		t.Errorf("Year = %d, want current year", cfg.Year)
	}
}

func TestLoadNormalizesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "week_start: friday\nyear: 2024\nics:\n  - path: cal.ics\n    name: Work\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WeekStart != "monday" {
		t.Errorf("unknown week_start not normalized, got %q", cfg.WeekStart)
	}
	if cfg.Year != 2024 {
		t.Errorf("Year = %d, want 2024", cfg.Year)
	}
	if len(cfg.ICS) != 1 || cfg.ICS[0].Path != "cal.ics" {
		t.Errorf("ICS = %+v", cfg.ICS)
	}
	if cfg.WeekStartDay() != time.Monday {
		t.Errorf("WeekStartDay = %s", cfg.WeekStartDay())
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "config.yaml")
	want := Default()
	want.WeekStart = "sunday"
	want.Year = 2023

	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.WeekStart != "sunday" || got.Year != 2023 {
		t.Fatalf("round trip produced %+v", got)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("config mode = %v, want 0600", info.Mode().Perm())
	}
}
