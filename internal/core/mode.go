package core

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects how raw samples inside one window are reduced to the value
// that gets rendered.
type Mode int

const (
	ModeAverage    Mode = iota // mean of the samples in the window
	ModeCumulative             // sum of the samples in the window
	ModeSingle                 // last sample in the window
	ModeInterval               // milliseconds between consecutive updates
)

var ValidModes = []Mode{
	ModeAverage,
	ModeCumulative,
	ModeSingle,
	ModeInterval,
}

var ErrUnknownMode = errors.New("unknown aggregation mode")

// Window is the working state of one aggregation period.
type Window struct {
	Accumulated float64
	Count       int
}

// Fold adds one raw sample to the window.
func (m Mode) Fold(w Window, sample float64) Window {
	switch m {
	case ModeAverage:
		w.Count++
		w.Accumulated += sample
	case ModeCumulative:
		w.Accumulated += sample
	case ModeSingle, ModeInterval:
		w.Accumulated = sample
	default:
		w.Accumulated = sample
	}
	return w
}

// Finalize reduces a closed window to its emitted value. Only Average
// windows carry a sample count, so only they are divided.
func (m Mode) Finalize(w Window) float64 {
	if w.Count > 0 {
		return w.Accumulated / float64(w.Count)
	}
	return w.Accumulated
}

func (m Mode) String() string {
	switch m {
	case ModeAverage:
		return "average"
	case ModeCumulative:
		return "cumulative"
	case ModeSingle:
		return "single"
	case ModeInterval:
		return "interval"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode accepts the lower-case names produced by String.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, m := range ValidModes {
		if m.String() == name {
			return m, nil
		}
	}
	return ModeAverage, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
