package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme colours the dashboard chrome. Widgets keep their own palettes.
type Theme struct {
	Name string `json:"name"`
	Icon string `json:"icon"`

	Subtext  lipgloss.Color `json:"subtext"`
	Dim      lipgloss.Color `json:"dim"`
	Accent   lipgloss.Color `json:"accent"`
	Lavender lipgloss.Color `json:"lavender"`
	Yellow   lipgloss.Color `json:"yellow"`
}

var (
	themeMu        sync.RWMutex
	themes         []Theme
	activeThemeIdx int
)

func init() {
	themes = builtinThemes()
	activeThemeIdx = defaultThemeIndex(themes)
	applyTheme(themes[activeThemeIdx])
}

func builtinThemes() []Theme {
	return []Theme{
		{
			Name: "Gruvbox", Icon: "🌻",
			Subtext: "#D5C4A1", Dim: "#665C54",
			Accent: "#D3869B", Lavender: "#D3869B", Yellow: "#FABD2F",
		},
		{
			Name: "Catppuccin Mocha", Icon: "🐱",
			Subtext: "#A6ADC8", Dim: "#585B70",
			Accent: "#CBA6F7", Lavender: "#B4BEFE", Yellow: "#F9E2AF",
		},
		{
			Name: "Nord", Icon: "❄",
			Subtext: "#D8DEE9", Dim: "#4C566A",
			Accent: "#B48EAD", Lavender: "#B48EAD", Yellow: "#EBCB8B",
		},
	}
}

func defaultThemeIndex(all []Theme) int {
	for i, t := range all {
		if strings.EqualFold(strings.TrimSpace(t.Name), "Gruvbox") {
			return i
		}
	}
	return 0
}

func setActiveThemeByNameLocked(name string) bool {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return false
	}
	for i, t := range themes {
		if strings.ToLower(t.Name) == needle {
			activeThemeIdx = i
			applyTheme(t)
			return true
		}
	}
	return false
}

func ActiveTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return themes[activeThemeIdx]
}

// CycleTheme switches to the next built-in theme and returns its name.
func CycleTheme() string {
	themeMu.Lock()
	defer themeMu.Unlock()

	activeThemeIdx = (activeThemeIdx + 1) % len(themes)
	applyTheme(themes[activeThemeIdx])
	return themes[activeThemeIdx].Name
}

func ThemeName() string {
	t := ActiveTheme()
	if strings.TrimSpace(t.Icon) == "" {
		return t.Name
	}
	return t.Icon + " " + t.Name
}

// SetThemeByName activates a theme by case-insensitive name. Unknown names
// leave the current theme in place.
func SetThemeByName(name string) bool {
	themeMu.Lock()
	defer themeMu.Unlock()
	return setActiveThemeByNameLocked(name)
}
