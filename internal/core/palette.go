package core

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// RGB is a single opaque colour. It marshals to JSON as [r, g, b].
type RGB [3]uint8

// Hex returns the colour as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}

// Half darkens the colour by halving every channel.
func (c RGB) Half() RGB {
	return RGB{c[0] / 2, c[1] / 2, c[2] / 2}
}

// Palette is the foreground (bar fill, label) and background colour pair
// of a widget.
type Palette struct {
	FG RGB `json:"fg"`
	BG RGB `json:"bg"`
}

// IsZero reports whether the palette was left unset.
func (p Palette) IsZero() bool {
	return p == Palette{}
}

var (
	PaletteGrayscale = Palette{FG: RGB{200, 200, 200}, BG: RGB{16, 16, 16}}
	PaletteGreen     = Palette{FG: RGB{0, 255, 0}, BG: RGB{16, 48, 16}}
	PaletteCyan      = Palette{FG: RGB{0, 255, 255}, BG: RGB{16, 16, 48}}
	PaletteRed       = Palette{FG: RGB{255, 0, 0}, BG: RGB{48, 16, 16}}
)

var ErrUnknownPalette = errors.New("unknown palette")

var namedPalettes = map[string]Palette{
	"grayscale": PaletteGrayscale,
	"green":     PaletteGreen,
	"cyan":      PaletteCyan,
	"red":       PaletteRed,
}

// ParsePalette looks up a built-in palette by case-insensitive name.
func ParsePalette(name string) (Palette, error) {
	p, ok := namedPalettes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return PaletteGrayscale, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
	}
	return p, nil
}

// PaletteNames lists the built-in palette names in sorted order.
func PaletteNames() []string {
	names := lo.Keys(namedPalettes)
	sort.Strings(names)
	return names
}
