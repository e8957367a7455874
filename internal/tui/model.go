package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/janekbaraniewski/perfstats/internal/stats"
)

const defaultFrameInterval = 16 * time.Millisecond

// Layout arranges mounted widgets.
type Layout string

const (
	LayoutHorizontal Layout = "horizontal"
	LayoutVertical   Layout = "vertical"
)

// ParseLayout maps a configured layout name, defaulting to horizontal.
func ParseLayout(s string) Layout {
	if strings.EqualFold(strings.TrimSpace(s), string(LayoutVertical)) {
		return LayoutVertical
	}
	return LayoutHorizontal
}

type frameMsg time.Time

func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// WidgetsMsg replaces the mounted widgets, e.g. after a config reload.
type WidgetsMsg struct {
	Widgets []*stats.Widget
	Layout  Layout
	Theme   string
}

// StatusMsg shows a one-line message in the header.
type StatusMsg string

// Model hosts a set of widgets and drives them from the frame loop: every
// frame each widget is ticked once, so an fps widget counts frames and an ms
// widget measures frame time.
type Model struct {
	widgets []*stats.Widget
	frame   time.Duration
	layout  Layout

	paused bool
	frames int
	status string
	width  int
	height int

	keys keyMap
	help help.Model
	log  logrus.FieldLogger
}

func NewModel(widgets []*stats.Widget, frame time.Duration, layout Layout, log logrus.FieldLogger) Model {
	if frame <= 0 {
		frame = defaultFrameInterval
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return Model{
		widgets: widgets,
		frame:   frame,
		layout:  layout,
		keys:    defaultKeyMap(),
		help:    help.New(),
		log:     log,
	}
}

func (m Model) Init() tea.Cmd { return frameCmd(m.frame) }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if !m.paused {
			for _, w := range m.widgets {
				w.Tick()
			}
			m.frames++
		}
		return m, frameCmd(m.frame)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case WidgetsMsg:
		m.widgets = msg.Widgets
		if msg.Layout != "" {
			m.layout = msg.Layout
		}
		if msg.Theme != "" {
			SetThemeByName(msg.Theme)
		}
		m.status = fmt.Sprintf("reloaded %d widget(s)", len(msg.Widgets))
		m.log.WithField("widgets", len(msg.Widgets)).Info("widgets replaced")
		return m, nil

	case StatusMsg:
		m.status = string(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		m.log.WithField("paused", m.paused).Debug("pause toggled")
	case key.Matches(msg, m.keys.Layout):
		if m.layout == LayoutVertical {
			m.layout = LayoutHorizontal
		} else {
			m.layout = LayoutVertical
		}
	case key.Matches(msg, m.keys.Theme):
		m.status = "theme: " + CycleTheme()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// Widget looks up a mounted widget by name.
func (m Model) Widget(name string) (*stats.Widget, bool) {
	return lo.Find(m.widgets, func(w *stats.Widget) bool {
		return w.Name() == name
	})
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.renderHeader())
	sb.WriteString("\n\n")
	sb.WriteString(m.renderWidgets())
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))

	if m.width > 0 && m.height > 0 {
		return padToSize(sb.String(), m.width, m.height)
	}
	return sb.String()
}

func (m Model) renderHeader() string {
	parts := []string{
		headerBrandStyle.Render("perfstats"),
		headerStyle.Render(fmt.Sprintf("%d widget(s)", len(m.widgets))),
		dimStyle.Render(fmt.Sprintf("frame %s", m.frame)),
	}
	if m.paused {
		parts = append(parts, pausedStyle.Render("PAUSED"))
	}
	if m.status != "" {
		parts = append(parts, statusStyle.Render(m.status))
	}
	return strings.Join(parts, dimStyle.Render(" · "))
}

func (m Model) renderWidgets() string {
	if len(m.widgets) == 0 {
		return dimStyle.Render("no widgets configured")
	}
	panels := lo.Map(m.widgets, func(w *stats.Widget, _ int) string {
		return RenderElement(w.Element())
	})
	if m.layout == LayoutVertical {
		return lipgloss.JoinVertical(lipgloss.Left, intersperseStr(panels, "")...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, intersperseStr(panels, " ")...)
}
