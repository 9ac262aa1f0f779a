package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	day, err := cfg.WeekStartDay()
	if err != nil || day != time.Monday {
		t.Fatalf("week start=%v err=%v, want Monday", day, err)
	}
	window, err := cfg.NotifyWindowDuration()
	if err != nil || window != 5*time.Minute {
		t.Fatalf("window=%v err=%v, want 5m", window, err)
	}
}

func TestLoadFromParsesOverrides(t *testing.T) {
	path := writeConfig(t, "week_start: sunday\nnotify_window: 10m\ndb_path: /tmp/lq.db\n")
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if day, _ := cfg.WeekStartDay(); day != time.Sunday {
		t.Fatalf("week start=%v, want Sunday", day)
	}
	if window, _ := cfg.NotifyWindowDuration(); window != 10*time.Minute {
		t.Fatalf("window=%v, want 10m", window)
	}
	if cfg.DBPath != "/tmp/lq.db" {
		t.Fatalf("db_path=%q", cfg.DBPath)
	}
}

func TestLoadFromRejectsBadValues(t *testing.T) {
	path := writeConfig(t, "week_start: friday\n")
	if _, err := LoadFrom(path); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for week_start, got %v", err)
	}

	path = writeConfig(t, "notify_window: -3m\n")
	if _, err := LoadFrom(path); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for notify_window, got %v", err)
	}
}
