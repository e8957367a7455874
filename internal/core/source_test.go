package core

import (
	"errors"
	"testing"
	"time"
)

func TestCallerValue(t *testing.T) {
	if got := CallerValue.Sample(42); got != 42 {
		t.Errorf("CallerValue.Sample(42) = %v", got)
	}
}

func TestMemorySource_MiB(t *testing.T) {
	src := MemorySource(func() uint64 { return 3 << 20 })
	if got := src.Sample(1); got != 3 {
		t.Errorf("MemorySource = %v, want 3", got)
	}
}

func TestMemorySource_DefaultReader(t *testing.T) {
	if got := MemorySource(nil).Sample(1); got <= 0 {
		t.Errorf("runtime heap should be positive, got %v", got)
	}
}

func TestParseSource(t *testing.T) {
	tests := []struct {
		name   string
		costly bool
	}{
		{"", false},
		{"caller", false},
		{"Memory", true},
		{"goroutines", false},
		{"gc", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ns, err := ParseSource(tt.name)
			if err != nil {
				t.Fatalf("ParseSource(%q) error: %v", tt.name, err)
			}
			if ns.Costly != tt.costly {
				t.Errorf("ParseSource(%q).Costly = %v, want %v", tt.name, ns.Costly, tt.costly)
			}
			if ns.Source == nil {
				t.Fatal("nil source")
			}
		})
	}

	if _, err := ParseSource("cpu"); !errors.Is(err, ErrUnknownSource) {
		t.Errorf("ParseSource(cpu) error = %v, want ErrUnknownSource", err)
	}
}

func TestGoroutineSource(t *testing.T) {
	if got := GoroutineSource.Sample(0); got < 1 {
		t.Errorf("expected at least one goroutine, got %v", got)
	}
}

func TestSourceNames(t *testing.T) {
	names := SourceNames()
	if len(names) != 4 || names[0] != "caller" || names[3] != "memory" {
		t.Errorf("SourceNames() = %v", names)
	}
}

func TestManualClock(t *testing.T) {
	start := time.UnixMilli(1_000)
	c := NewManualClock(start)
	c.Advance(250 * time.Millisecond)
	if got := c.Now().UnixMilli(); got != 1_250 {
		t.Errorf("Now() = %d, want 1250", got)
	}
	c.Set(start)
	if !c.Now().Equal(start) {
		t.Errorf("Set did not move clock back")
	}
}
