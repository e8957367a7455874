package raster

import (
	"errors"
	"testing"

	"github.com/janekbaraniewski/perfstats/internal/core"
)

var (
	bg = core.RGB{16, 16, 16}
	fg = core.RGB{200, 200, 200}
	hi = core.RGB{255, 0, 0}
)

func mustMemory(t *testing.T, w, h int) *Memory {
	t.Helper()
	m, err := NewMemory(w, h, bg)
	if err != nil {
		t.Fatalf("NewMemory(%d, %d) error: %v", w, h, err)
	}
	return m
}

func TestNewMemory_InvalidSize(t *testing.T) {
	for _, sz := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		if _, err := NewMemory(sz[0], sz[1], bg); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewMemory(%d, %d) error = %v, want ErrInvalidSize", sz[0], sz[1], err)
		}
	}
}

func TestMemory_StartsFilled(t *testing.T) {
	m := mustMemory(t, 4, 3)
	if m.Width() != 4 || m.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", m.Width(), m.Height())
	}
	for x := 0; x < 4; x++ {
		for y := 0; y < 3; y++ {
			if m.Pixel(x, y) != bg {
				t.Fatalf("pixel (%d,%d) = %v, want background", x, y, m.Pixel(x, y))
			}
		}
	}
}

func TestMemory_ColumnIsCopy(t *testing.T) {
	m := mustMemory(t, 2, 2)
	col := m.Column(0)
	col[0] = hi
	if m.Pixel(0, 0) != bg {
		t.Fatal("mutating a returned column must not change the raster")
	}
	if m.Column(2) != nil || m.Column(-1) != nil {
		t.Fatal("out of range column should be nil")
	}
}

func TestMemory_ShiftLeftThenSet(t *testing.T) {
	m := mustMemory(t, 3, 2)
	for x := 0; x < 3; x++ {
		m.ShiftLeft()
		m.SetColumn(2, []core.RGB{core.RGB{uint8(x), 0, 0}, fg})
	}
	for x := 0; x < 3; x++ {
		if got := m.Pixel(x, 0); got != (core.RGB{uint8(x), 0, 0}) {
			t.Errorf("column %d top = %v, want marker %d", x, got, x)
		}
	}

	m.ShiftLeft()
	if m.Width() != 3 {
		t.Fatalf("width changed to %d", m.Width())
	}
	if got := m.Pixel(0, 0); got != (core.RGB{1, 0, 0}) {
		t.Errorf("after shift column 0 top = %v, want marker 1", got)
	}
	if got := m.Pixel(2, 0); got != (core.RGB{2, 0, 0}) {
		t.Errorf("rightmost column should keep previous pixels, got %v", got)
	}
}

func TestMemory_ShiftDown(t *testing.T) {
	m := mustMemory(t, 1, 4)
	m.SetColumn(0, []core.RGB{hi, fg, fg, fg})
	m.ShiftDown(1, bg)
	want := []core.RGB{bg, hi, fg, fg}
	got := m.Column(0)
	for y := range want {
		if got[y] != want[y] {
			t.Fatalf("after ShiftDown(1) column = %v, want %v", got, want)
		}
	}

	m.ShiftDown(10, bg)
	for y, c := range m.Column(0) {
		if c != bg {
			t.Fatalf("row %d = %v, shifting past height should clear everything", y, c)
		}
	}
}

func TestMemory_Fill(t *testing.T) {
	m := mustMemory(t, 2, 2)
	m.Fill(hi)
	if m.Pixel(1, 1) != hi || m.Pixel(0, 0) != hi {
		t.Fatal("Fill did not paint every pixel")
	}
	if m.Pixel(5, 5) != (core.RGB{}) {
		t.Fatal("out of range pixel should be zero")
	}
}
