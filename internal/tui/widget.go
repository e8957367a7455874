package tui

import (
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/janekbaraniewski/perfstats/internal/core"
	"github.com/janekbaraniewski/perfstats/internal/stats"
)

// halfBlock packs two pixel rows into one terminal cell: the foreground
// paints the upper pixel and the background the lower one.
const halfBlock = '▀'

func hexColor(c core.RGB) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// paintRaster draws the element's raster onto a canvas, two pixel rows per
// terminal row. An odd last row is padded with the container colour.
func paintRaster(el stats.Element) canvas.Model {
	r := el.Raster
	w, h := r.Width(), r.Height()
	rows := (h + 1) / 2
	cv := canvas.New(w, rows)

	pad := el.Palette.BG.Half()
	for x := 0; x < w; x++ {
		col := r.Column(x)
		for row := 0; row < rows; row++ {
			top := col[2*row]
			bottom := pad
			if 2*row+1 < len(col) {
				bottom = col[2*row+1]
			}
			style := lipgloss.NewStyle().
				Foreground(hexColor(top)).
				Background(hexColor(bottom))
			cv.SetCell(canvas.Point{X: x, Y: row}, canvas.NewCellWithStyle(halfBlock, style))
		}
	}
	return cv
}

// RenderElement renders a mounted widget: an upper-cased label above the
// history graph, inside a container tinted with half the background colour.
func RenderElement(el stats.Element) string {
	w := el.Raster.Width()

	title := ansi.Truncate(strings.ToUpper(el.Label), w, "…")
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(hexColor(el.Palette.FG))

	cv := paintRaster(el)

	container := lipgloss.NewStyle().
		Background(hexColor(el.Palette.BG.Half())).
		Foreground(hexColor(el.Palette.FG)).
		PaddingLeft(1).
		Width(w + 1)

	return container.Render(padLine(titleStyle.Render(title), w) + "\n" + cv.View())
}

func padLine(line string, w int) string {
	lineW := lipgloss.Width(line)
	if lineW >= w {
		return line
	}
	return line + strings.Repeat(" ", w-lineW)
}
