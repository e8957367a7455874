package raster

import (
	"github.com/gammazero/deque"

	"github.com/janekbaraniewski/perfstats/internal/core"
)

// Memory is an in-memory Raster. Columns live in a deque so scrolling is a
// pop at the front and a push at the back.
type Memory struct {
	cols   deque.Deque[[]core.RGB]
	width  int
	height int
}

// NewMemory allocates a w×h surface painted with bg.
func NewMemory(w, h int, bg core.RGB) (*Memory, error) {
	if err := CheckSize(w, h); err != nil {
		return nil, err
	}
	m := &Memory{width: w, height: h}
	for x := 0; x < w; x++ {
		m.cols.PushBack(solid(h, bg))
	}
	return m, nil
}

func (m *Memory) Width() int  { return m.width }
func (m *Memory) Height() int { return m.height }

func (m *Memory) Fill(c core.RGB) {
	for x := 0; x < m.cols.Len(); x++ {
		col := m.cols.At(x)
		for y := range col {
			col[y] = c
		}
	}
}

func (m *Memory) Column(x int) []core.RGB {
	if x < 0 || x >= m.cols.Len() {
		return nil
	}
	src := m.cols.At(x)
	out := make([]core.RGB, len(src))
	copy(out, src)
	return out
}

func (m *Memory) SetColumn(x int, px []core.RGB) {
	if x < 0 || x >= m.cols.Len() {
		return
	}
	copy(m.cols.At(x), px)
}

func (m *Memory) ShiftLeft() {
	if m.cols.Len() < 2 {
		return
	}
	dropped := m.cols.PopFront()
	copy(dropped, m.cols.Back())
	m.cols.PushBack(dropped)
}

func (m *Memory) ShiftDown(rows int, fill core.RGB) {
	if rows <= 0 {
		return
	}
	if rows > m.height {
		rows = m.height
	}
	for x := 0; x < m.cols.Len(); x++ {
		col := m.cols.At(x)
		copy(col[rows:], col[:m.height-rows])
		for y := 0; y < rows; y++ {
			col[y] = fill
		}
	}
}

// Pixel returns the colour at (x, y), or the zero colour out of range.
func (m *Memory) Pixel(x, y int) core.RGB {
	if x < 0 || x >= m.cols.Len() || y < 0 || y >= m.height {
		return core.RGB{}
	}
	return m.cols.At(x)[y]
}

func solid(h int, c core.RGB) []core.RGB {
	col := make([]core.RGB, h)
	for y := range col {
		col[y] = c
	}
	return col
}
