package config

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := SaveTo(path, DefaultConfig()); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan Config, 4)
	err := Watch(ctx, path, log, func(cfg Config, err error) {
		if err != nil {
			t.Errorf("reload error: %v", err)
			return
		}
		got <- cfg
	})
	if err != nil {
		t.Fatalf("Watch() error: %v", err)
	}

	if err := os.WriteFile(path, []byte(`{"ui": {"frame_interval_ms": 50}}`), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	select {
	case cfg := <-got:
		if cfg.UI.FrameIntervalMs != 50 {
			t.Errorf("reloaded frame interval = %d, want 50", cfg.UI.FrameIntervalMs)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within 5s")
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "settings.json")
	err := Watch(context.Background(), path, logrus.New(), func(Config, error) {})
	if err == nil {
		t.Fatal("expected error watching a missing directory")
	}
}
