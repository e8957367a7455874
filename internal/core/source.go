package core

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// SampleSource yields the raw value folded into a widget's window. arg is
// whatever the host passed to Update; sources that measure something
// themselves ignore it.
type SampleSource interface {
	Sample(arg float64) float64
}

// SourceFunc adapts a plain function to SampleSource.
type SourceFunc func(arg float64) float64

func (f SourceFunc) Sample(arg float64) float64 { return f(arg) }

// CallerValue passes the host-supplied value through unchanged.
var CallerValue SampleSource = SourceFunc(func(arg float64) float64 { return arg })

// MemoryReader reports memory in use, in bytes.
type MemoryReader func() uint64

// RuntimeHeap reads the live heap size of the current process.
// runtime.ReadMemStats stops the world, so callers should not poll it
// every frame.
func RuntimeHeap() uint64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms.HeapAlloc
}

const bytesPerMiB = 1 << 20

// MemorySource reports memory usage in MiB. A nil reader uses RuntimeHeap.
func MemorySource(read MemoryReader) SampleSource {
	if read == nil {
		read = RuntimeHeap
	}
	return SourceFunc(func(float64) float64 {
		return float64(read()) / bytesPerMiB
	})
}

// GoroutineSource reports the number of live goroutines.
var GoroutineSource SampleSource = SourceFunc(func(float64) float64 {
	return float64(runtime.NumGoroutine())
})

// GCSource reports the number of completed GC cycles.
func GCSource() SampleSource {
	return SourceFunc(func(float64) float64 {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		return float64(ms.NumGC)
	})
}

var ErrUnknownSource = errors.New("unknown sample source")

// NamedSource describes a source selectable from configuration.
type NamedSource struct {
	Source SampleSource
	// Costly sources are only read when a window is about to close.
	Costly bool
}

var namedSources = map[string]func() NamedSource{
	"caller":     func() NamedSource { return NamedSource{Source: CallerValue} },
	"memory":     func() NamedSource { return NamedSource{Source: MemorySource(nil), Costly: true} },
	"goroutines": func() NamedSource { return NamedSource{Source: GoroutineSource} },
	"gc":         func() NamedSource { return NamedSource{Source: GCSource(), Costly: true} },
}

// ParseSource resolves a configured source name. The empty name is "caller".
func ParseSource(name string) (NamedSource, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = "caller"
	}
	mk, ok := namedSources[key]
	if !ok {
		return NamedSource{Source: CallerValue}, fmt.Errorf("%w: %q", ErrUnknownSource, name)
	}
	return mk(), nil
}

// SourceNames lists configurable source names in sorted order.
func SourceNames() []string {
	names := lo.Keys(namedSources)
	sort.Strings(names)
	return names
}
