package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Baseline.ReferenceWidth != 1920 || cfg.Baseline.ReferenceHeight != 1080 {
		t.Fatalf("unexpected default baseline: %dx%d",
			cfg.Baseline.ReferenceWidth, cfg.Baseline.ReferenceHeight)
	}
	if cfg.Fallback.Width != 1920 || cfg.Fallback.Height != 1080 {
		t.Fatalf("unexpected default fallback: %dx%d", cfg.Fallback.Width, cfg.Fallback.Height)
	}
	if !cfg.Window.Fullscreen {
		t.Fatalf("expected fullscreen default to be true")
	}
}

func TestLoadFromPath_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
window:
  title: Glass Fortress
  fullscreen: false
baseline:
  reference_width: 2560
  reference_height: 1440
  tile_size: 32
fallback:
  width: 1280
  height: 720
logging:
  level: debug
`)

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Window.Title != "Glass Fortress" {
		t.Fatalf("unexpected title %q", cfg.Window.Title)
	}
	if cfg.Window.Fullscreen {
		t.Fatalf("expected fullscreen false")
	}
	if cfg.Baseline.ReferenceWidth != 2560 || cfg.Baseline.ReferenceHeight != 1440 {
		t.Fatalf("unexpected baseline: %dx%d",
			cfg.Baseline.ReferenceWidth, cfg.Baseline.ReferenceHeight)
	}
	if cfg.Baseline.TileSize != 32 {
		t.Fatalf("unexpected tile size %v", cfg.Baseline.TileSize)
	}
	// Unset keys keep their defaults.
	if cfg.Baseline.Margin != 8 {
		t.Fatalf("expected default margin 8, got %v", cfg.Baseline.Margin)
	}
	if cfg.Fallback.Width != 1280 || cfg.Fallback.Height != 720 {
		t.Fatalf("unexpected fallback: %dx%d", cfg.Fallback.Width, cfg.Fallback.Height)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging level %q", cfg.Logging.Level)
	}
}

func TestLoadFromPath_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			content: "window: [title",
			wantErr: "failed to parse config",
		},
		{
			name: "zero baseline",
			content: `
baseline:
  reference_width: 0
`,
			wantErr: "baseline reference must be positive",
		},
		{
			name: "negative fallback",
			content: `
fallback:
  width: -1
`,
			wantErr: "fallback resolution must be positive",
		},
		{
			name: "bad logging level",
			content: `
logging:
  level: loud
`,
			wantErr: "unknown logging level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := LoadFromPath(path)
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %q", tt.wantErr, err)
			}
		})
	}
}

func TestScalingBaselineConversion(t *testing.T) {
	cfg := DefaultConfig()
	baseline := cfg.ScalingBaseline()
	if baseline.ReferencePixels() != 1920*1080 {
		t.Fatalf("unexpected reference pixels %d", baseline.ReferencePixels())
	}
	if baseline.TileSize != cfg.Baseline.TileSize {
		t.Fatalf("tile size mismatch: %v vs %v", baseline.TileSize, cfg.Baseline.TileSize)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
