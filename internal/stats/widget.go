// Package stats implements the rolling-history performance widget: a sample
// aggregator that emits at most once per period and a scrolling bar graph
// drawn on a raster.Raster.
//
// A Widget is driven entirely by its host calling Update (or Tick) from its
// own frame loop. It owns no goroutines and is not safe for concurrent use.
package stats

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/janekbaraniewski/perfstats/internal/core"
	"github.com/janekbaraniewski/perfstats/internal/raster"
)

const (
	DefaultWidth  = 74
	DefaultHeight = 30

	// headroom keeps the tallest bar below the top edge.
	headroom = 1.2
)

// Config is the static configuration of a widget. Zero fields fall back to
// defaults: Grayscale palette, 74×30 pixels, Average mode, no period.
type Config struct {
	Name    string
	Period  time.Duration
	Palette core.Palette
	Width   int
	Height  int
	Mode    core.Mode

	// Source supplies the raw value folded on each update. Defaults to
	// core.CallerValue.
	Source core.SampleSource
	// SampleOnDue skips updates entirely until the current window is due,
	// so Source is read at most once per period.
	SampleOnDue bool

	Clock  core.Clock
	Raster raster.Raster
	Logger logrus.FieldLogger
}

// Widget tracks one metric.
type Widget struct {
	name    string
	mode    core.Mode
	period  int64 // ms
	palette core.Palette
	width   int
	height  int

	source      core.SampleSource
	sampleOnDue bool
	clock       core.Clock
	surface     raster.Raster

	min, max   float64
	last       float64
	window     core.Window
	started    bool
	lastUpdate int64 // ms since epoch
	lastRender int64 // ms since epoch
	emissions  int
	label      string

	log      logrus.FieldLogger
	logEvery *rate.Sometimes
}

// New builds a widget. It fails when no drawing surface of the configured
// size can be obtained.
func New(cfg Config) (*Widget, error) {
	if cfg.Palette.IsZero() {
		cfg.Palette = core.PaletteGrayscale
	}
	if cfg.Width == 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height == 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.Source == nil {
		cfg.Source = core.CallerValue
	}
	if cfg.Clock == nil {
		cfg.Clock = core.SystemClock{}
	}
	if cfg.Logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		cfg.Logger = discard
	}
	if cfg.Period < 0 {
		cfg.Period = 0
	}

	surface := cfg.Raster
	if surface == nil {
		mem, err := raster.NewMemory(cfg.Width, cfg.Height, cfg.Palette.BG)
		if err != nil {
			return nil, fmt.Errorf("allocating surface for %q: %w", cfg.Name, err)
		}
		surface = mem
	} else {
		if surface.Width() != cfg.Width || surface.Height() != cfg.Height {
			return nil, fmt.Errorf("surface for %q is %dx%d, want %dx%d: %w",
				cfg.Name, surface.Width(), surface.Height(), cfg.Width, cfg.Height, raster.ErrInvalidSize)
		}
		surface.Fill(cfg.Palette.BG)
	}

	return &Widget{
		name:        cfg.Name,
		mode:        cfg.Mode,
		period:      cfg.Period.Milliseconds(),
		palette:     cfg.Palette,
		width:       cfg.Width,
		height:      cfg.Height,
		source:      cfg.Source,
		sampleOnDue: cfg.SampleOnDue,
		clock:       cfg.Clock,
		surface:     surface,
		min:         math.Inf(1),
		label:       cfg.Name,
		log:         cfg.Logger.WithField("widget", cfg.Name),
		logEvery:    &rate.Sometimes{Interval: time.Second},
	}, nil
}

// Tick records one occurrence. It is Update(1).
func (w *Widget) Tick() { w.Update(1) }

// Update feeds one raw sample and renders when the current window closes.
func (w *Widget) Update(v float64) {
	now := w.clock.Now().UnixMilli()

	if w.sampleOnDue && w.started && now <= w.lastRender+w.period {
		return
	}

	// The first call only establishes the baseline.
	if !w.started {
		w.started = true
		w.lastRender = now
		w.lastUpdate = now
		return
	}

	if value, ok := w.aggregate(now, w.source.Sample(v)); ok && !math.IsNaN(value) {
		w.emit(now, value)
	}
	w.lastUpdate = now
}

// aggregate folds sample into the window and reports the emitted value once
// the window closes.
func (w *Widget) aggregate(now int64, sample float64) (float64, bool) {
	if w.period > 0 {
		w.window = w.mode.Fold(w.window, sample)
		if now <= w.lastRender+w.period {
			return 0, false
		}
		value := w.mode.Finalize(w.window)
		w.window = core.Window{}
		return value, true
	}
	if w.mode == core.ModeInterval {
		return float64(now - w.lastUpdate), true
	}
	return sample, true
}

func (w *Widget) emit(now int64, v float64) {
	if v < w.min {
		w.min = v
	}
	if v > w.max {
		w.surface.ShiftDown(translateRows(v-w.max, w.height), w.palette.BG)
		w.max = v
	}
	if w.max > 0 {
		w.drawColumn(math.Min(float64(w.height), v/w.max*float64(w.height)/headroom))
	}

	w.last = v
	w.lastRender = now
	w.emissions++
	w.label = fmt.Sprintf("%s %s (%s-%s)",
		core.FormatValue(v), w.name, core.FormatValue(w.min), core.FormatValue(w.max))

	w.logEvery.Do(func() {
		w.log.WithFields(logrus.Fields{
			"value": v,
			"min":   w.min,
			"max":   w.max,
		}).Debug("widget emitted")
	})
}

// translateRows converts growth of the maximum, in value units, into the
// number of pixel rows the history is pushed down. Old bars are not
// rescaled.
func translateRows(growth float64, height int) int {
	if growth <= 0 || math.IsNaN(growth) {
		return 0
	}
	if growth >= float64(height) {
		return height
	}
	return int(growth)
}

// drawColumn scrolls the history and paints a bar of the given fill height
// into the rightmost column.
func (w *Widget) drawColumn(fill float64) {
	top := float64(w.height) - fill
	col := make([]core.RGB, w.height)
	for y := range col {
		if float64(y) < top {
			col[y] = w.palette.BG
		} else {
			col[y] = w.palette.FG
		}
	}
	w.surface.ShiftLeft()
	w.surface.SetColumn(w.width-1, col)
}

// Element is the mountable view of a widget. The raster is shared with the
// widget; hosts must only read from it.
type Element struct {
	Name    string
	Label   string
	Palette core.Palette
	Raster  raster.Raster
}

// Element returns the handle a host attaches to its display tree.
func (w *Widget) Element() Element {
	return Element{
		Name:    w.name,
		Label:   w.label,
		Palette: w.palette,
		Raster:  w.surface,
	}
}

// Snapshot is a read-only copy of the widget's running statistics.
type Snapshot struct {
	Name      string
	Mode      core.Mode
	Last      float64
	Min       float64
	Max       float64
	Emissions int
}

func (w *Widget) Snapshot() Snapshot {
	return Snapshot{
		Name:      w.name,
		Mode:      w.mode,
		Last:      w.last,
		Min:       w.min,
		Max:       w.max,
		Emissions: w.emissions,
	}
}

func (w *Widget) Name() string { return w.name }
