// Package raster holds the pixel surfaces widgets draw their history on.
//
// A surface is addressed by columns: column 0 is the oldest (leftmost) slice
// of the graph and each column is a top-to-bottom run of Height pixels.
package raster

import (
	"errors"
	"fmt"

	"github.com/janekbaraniewski/perfstats/internal/core"
)

// Raster is a fixed-size drawable surface.
type Raster interface {
	Width() int
	Height() int
	// Fill paints every pixel with c.
	Fill(c core.RGB)
	// Column returns a copy of column x, or nil when x is out of range.
	Column(x int) []core.RGB
	// SetColumn overwrites column x. Missing rows keep their colour.
	SetColumn(x int, px []core.RGB)
	// ShiftLeft drops column 0 and moves every other column one step left.
	// The rightmost column keeps its previous pixels until overwritten.
	ShiftLeft()
	// ShiftDown moves the image down by rows and paints the vacated top
	// rows with fill. Rows shifted past the bottom edge are lost.
	ShiftDown(rows int, fill core.RGB)
}

var ErrInvalidSize = errors.New("invalid raster size")

// CheckSize validates surface dimensions.
func CheckSize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	return nil
}
