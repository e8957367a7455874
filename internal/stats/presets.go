package stats

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/janekbaraniewski/perfstats/internal/core"
)

// FPSConfig counts Tick calls per second.
func FPSConfig() Config {
	return Config{
		Name:    "fps",
		Period:  time.Second,
		Palette: core.PaletteCyan,
		Mode:    core.ModeCumulative,
	}
}

// MSConfig graphs the milliseconds between consecutive Tick calls.
func MSConfig() Config {
	return Config{
		Name:    "ms",
		Palette: core.PaletteGreen,
		Mode:    core.ModeInterval,
	}
}

// MemConfig graphs memory in use, in MiB, once per second. A nil reader
// uses the Go runtime heap.
func MemConfig(read core.MemoryReader) Config {
	return Config{
		Name:        "mem",
		Period:      time.Second,
		Palette:     core.PaletteRed,
		Mode:        core.ModeSingle,
		Source:      core.MemorySource(read),
		SampleOnDue: true,
	}
}

func FPS() (*Widget, error) { return New(FPSConfig()) }

func MS() (*Widget, error) { return New(MSConfig()) }

func Mem(read core.MemoryReader) (*Widget, error) { return New(MemConfig(read)) }

var ErrUnknownPreset = errors.New("unknown preset")

var presets = map[string]func() Config{
	"fps": FPSConfig,
	"ms":  MSConfig,
	"mem": func() Config { return MemConfig(nil) },
}

// PresetConfig returns the configuration of a named preset.
func PresetConfig(name string) (Config, error) {
	mk, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return mk(), nil
}

// PresetNames lists preset names in sorted order.
func PresetNames() []string {
	names := lo.Keys(presets)
	sort.Strings(names)
	return names
}
