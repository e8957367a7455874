package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/janekbaraniewski/perfstats/internal/core"
	"github.com/janekbaraniewski/perfstats/internal/stats"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testModel(t *testing.T) (Model, *core.ManualClock) {
	t.Helper()
	clock := core.NewManualClock(time.UnixMilli(1_700_000_000_000))

	fpsCfg := stats.FPSConfig()
	fpsCfg.Clock = clock
	fpsCfg.Width, fpsCfg.Height = 12, 6
	fps, err := stats.New(fpsCfg)
	if err != nil {
		t.Fatalf("fps: %v", err)
	}

	msCfg := stats.MSConfig()
	msCfg.Clock = clock
	msCfg.Width, msCfg.Height = 12, 6
	ms, err := stats.New(msCfg)
	if err != nil {
		t.Fatalf("ms: %v", err)
	}

	return NewModel([]*stats.Widget{fps, ms}, 10*time.Millisecond, LayoutHorizontal, nil), clock
}

func step(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModel_FramesTickWidgets(t *testing.T) {
	m, clock := testModel(t)
	for i := 0; i < 30; i++ {
		m = step(m, frameMsg(clock.Now()))
		clock.Advance(20 * time.Millisecond)
	}
	ms, ok := m.Widget("ms")
	if !ok {
		t.Fatal("ms widget not mounted")
	}
	snap := ms.Snapshot()
	if snap.Emissions != 29 || snap.Last != 20 {
		t.Errorf("ms snapshot = %+v, want 29 emissions of 20", snap)
	}

	fps, _ := m.Widget("fps")
	if got := fps.Snapshot().Emissions; got != 0 {
		t.Errorf("fps emitted %d times within the first second", got)
	}
	for i := 0; i < 30; i++ {
		m = step(m, frameMsg(clock.Now()))
		clock.Advance(20 * time.Millisecond)
	}
	if got := fps.Snapshot(); got.Emissions != 1 || got.Last != 51 {
		t.Errorf("fps snapshot = %+v, want one emission of 51", got)
	}
}

func TestModel_PauseStopsTicking(t *testing.T) {
	m, clock := testModel(t)
	m = step(m, runeKey("p"))
	for i := 0; i < 5; i++ {
		m = step(m, frameMsg(clock.Now()))
		clock.Advance(20 * time.Millisecond)
	}
	ms, _ := m.Widget("ms")
	if got := ms.Snapshot().Emissions; got != 0 {
		t.Fatalf("paused model ticked widgets (%d emissions)", got)
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("header should show PAUSED")
	}

	m = step(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	if m.paused {
		t.Error("space should resume")
	}
}

func TestModel_FrameReschedules(t *testing.T) {
	m, clock := testModel(t)
	_, cmd := m.Update(frameMsg(clock.Now()))
	if cmd == nil {
		t.Fatal("frame should schedule the next frame")
	}
}

func TestModel_QuitKey(t *testing.T) {
	m, _ := testModel(t)
	_, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestModel_LayoutToggle(t *testing.T) {
	m, _ := testModel(t)
	horizontal := m.renderWidgets()
	m = step(m, runeKey("l"))
	if m.layout != LayoutVertical {
		t.Fatalf("layout = %q, want vertical", m.layout)
	}
	vertical := m.renderWidgets()
	if lipgloss.Height(vertical) <= lipgloss.Height(horizontal) {
		t.Errorf("vertical layout should be taller: %d <= %d", lipgloss.Height(vertical), lipgloss.Height(horizontal))
	}
	if lipgloss.Width(vertical) >= lipgloss.Width(horizontal) {
		t.Errorf("vertical layout should be narrower: %d >= %d", lipgloss.Width(vertical), lipgloss.Width(horizontal))
	}
}

func TestModel_WidgetsMsgReplaces(t *testing.T) {
	m, _ := testModel(t)
	mem, err := stats.New(stats.MemConfig(func() uint64 { return 1 << 20 }))
	if err != nil {
		t.Fatalf("mem: %v", err)
	}
	m = step(m, WidgetsMsg{Widgets: []*stats.Widget{mem}, Layout: LayoutVertical})
	if len(m.widgets) != 1 || m.layout != LayoutVertical {
		t.Fatalf("widgets=%d layout=%q", len(m.widgets), m.layout)
	}
	if _, ok := m.Widget("fps"); ok {
		t.Error("old widgets should be gone")
	}
	if !strings.Contains(m.View(), "reloaded 1 widget(s)") {
		t.Error("status should mention the reload")
	}
}

func TestModel_ViewFitsWindow(t *testing.T) {
	m, _ := testModel(t)
	m = step(m, tea.WindowSizeMsg{Width: 40, Height: 12})
	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 12 {
		t.Fatalf("view has %d lines, want 12", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 40 {
			t.Fatalf("line %d width = %d, want 40", i, w)
		}
	}
}

func TestModel_EmptyWidgets(t *testing.T) {
	m := NewModel(nil, 0, ParseLayout(""), nil)
	if m.frame != defaultFrameInterval {
		t.Errorf("frame = %v, want default", m.frame)
	}
	if !strings.Contains(m.View(), "no widgets configured") {
		t.Error("empty model should say so")
	}
}

func TestParseLayout(t *testing.T) {
	if ParseLayout("Vertical") != LayoutVertical {
		t.Error("Vertical should parse")
	}
	if ParseLayout("grid") != LayoutHorizontal {
		t.Error("unknown layouts fall back to horizontal")
	}
}
