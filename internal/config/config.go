package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/janekbaraniewski/perfstats/internal/core"
	"github.com/janekbaraniewski/perfstats/internal/stats"
)

type UIConfig struct {
	FrameIntervalMs int    `json:"frame_interval_ms"`
	Layout          string `json:"layout"`
	Theme           string `json:"theme"`
}

// WidgetConfig describes one widget. Preset seeds every field; explicit
// fields override it.
type WidgetConfig struct {
	Name     string    `json:"name,omitempty"`
	Preset   string    `json:"preset,omitempty"`
	Mode     string    `json:"mode,omitempty"`
	PeriodMs *int      `json:"period_ms,omitempty"` // 0 renders on every update
	Palette  string    `json:"palette,omitempty"`
	FG       *core.RGB `json:"fg,omitempty"`
	BG       *core.RGB `json:"bg,omitempty"`
	Width    int       `json:"width,omitempty"`
	Height   int       `json:"height,omitempty"`
	Source   string    `json:"source,omitempty"`
}

type Config struct {
	UI      UIConfig       `json:"ui"`
	Widgets []WidgetConfig `json:"widgets"`
}

func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			FrameIntervalMs: 16,
			Layout:          "horizontal",
			Theme:           "Gruvbox",
		},
		Widgets: []WidgetConfig{
			{Preset: "fps"},
			{Preset: "ms"},
			{Preset: "mem"},
		},
	}
}

func ConfigDir() string {
	if dir := os.Getenv("PERFSTATS_CONFIG_DIR"); dir != "" {
		return dir
	}
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), "perfstats")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "perfstats")
}

func ConfigPath() string {
	return filepath.Join(ConfigDir(), "settings.json")
}

func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads a settings file. A missing file yields DefaultConfig; keys
// absent from the file keep their defaults.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	// Array elements decode in place, so widgets start empty.
	cfg.Widgets = nil
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Widgets == nil {
		cfg.Widgets = DefaultConfig().Widgets
	}

	if cfg.UI.FrameIntervalMs <= 0 {
		cfg.UI.FrameIntervalMs = 16
	}
	if strings.TrimSpace(cfg.UI.Layout) == "" {
		cfg.UI.Layout = DefaultConfig().UI.Layout
	}
	if strings.TrimSpace(cfg.UI.Theme) == "" {
		cfg.UI.Theme = DefaultConfig().UI.Theme
	}

	return cfg, nil
}

func (c Config) FrameInterval() time.Duration {
	return time.Duration(c.UI.FrameIntervalMs) * time.Millisecond
}

func Save(cfg Config) error {
	return SaveTo(ConfigPath(), cfg)
}

func SaveTo(path string, cfg Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// StatsConfig resolves the entry into a widget configuration.
func (wc WidgetConfig) StatsConfig() (stats.Config, error) {
	var sc stats.Config
	if wc.Preset != "" {
		preset, err := stats.PresetConfig(wc.Preset)
		if err != nil {
			return sc, err
		}
		sc = preset
	}

	if name := strings.TrimSpace(wc.Name); name != "" {
		sc.Name = name
	}
	if sc.Name == "" {
		sc.Name = "metric"
	}

	if wc.Mode != "" {
		mode, err := core.ParseMode(wc.Mode)
		if err != nil {
			return sc, err
		}
		sc.Mode = mode
	}
	if wc.PeriodMs != nil {
		sc.Period = time.Duration(*wc.PeriodMs) * time.Millisecond
	}

	if wc.Palette != "" {
		p, err := core.ParsePalette(wc.Palette)
		if err != nil {
			return sc, err
		}
		sc.Palette = p
	}
	if wc.FG != nil || wc.BG != nil {
		if sc.Palette.IsZero() {
			sc.Palette = core.PaletteGrayscale
		}
		if wc.FG != nil {
			sc.Palette.FG = *wc.FG
		}
		if wc.BG != nil {
			sc.Palette.BG = *wc.BG
		}
	}

	if wc.Width != 0 {
		sc.Width = wc.Width
	}
	if wc.Height != 0 {
		sc.Height = wc.Height
	}

	if wc.Source != "" {
		ns, err := core.ParseSource(wc.Source)
		if err != nil {
			return sc, err
		}
		sc.Source = ns.Source
		sc.SampleOnDue = ns.Costly
	}
	return sc, nil
}
