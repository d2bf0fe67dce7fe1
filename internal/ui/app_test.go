package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yildizm/freqsum/internal/analyzer"
	"github.com/yildizm/freqsum/internal/formatter"
)

func newTestModel(t *testing.T, reload ReloadFunc) *Model {
	t.Helper()
	analysis, err := analyzer.Analyze("1 2 3 4 5 apple", "<3,3-5,apple,abc-def")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	m := NewModel(analysis, Options{Theme: "default", ChartWidth: 10, Reload: reload})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, nil)
	view := m.View()

	for _, want := range []string{"Frequency Analysis", "Category/Range", "Total", "100%", "Proportion", "invalid range: abc-def", "q: quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "r: reload") {
		t.Errorf("reload hint shown without a reload func")
	}
}

func TestModelNotReady(t *testing.T) {
	analysis, _ := analyzer.Analyze("1", "1")
	m := NewModel(analysis, Options{})
	if m.View() != "Initializing..." {
		t.Errorf("expected initializing view before the first resize")
	}
}

func TestModelToggleChart(t *testing.T) {
	m := newTestModel(t, nil)

	if m.ChartKind() != formatter.ChartProportion {
		t.Fatalf("initial chart = %s", m.ChartKind())
	}
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.ChartKind() != formatter.ChartMagnitude {
		t.Errorf("after tab chart = %s", m.ChartKind())
	}
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.ChartKind() != formatter.ChartProportion {
		t.Errorf("after second tab chart = %s", m.ChartKind())
	}
}

func TestModelCycleTheme(t *testing.T) {
	m := newTestModel(t, nil)

	var seen []string
	for i := 0; i < 3; i++ {
		m.Update(runeKey('t'))
		seen = append(seen, m.ThemeName())
	}
	if strings.Join(seen, ",") != "high-contrast,minimal,default" {
		t.Errorf("theme cycle = %v", seen)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)

	_, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg")
	}
	if !strings.Contains(m.View(), "Bye") {
		t.Errorf("expected goodbye view after quitting")
	}
}

func TestModelReload(t *testing.T) {
	calls := 0
	reload := func() (*analyzer.Analysis, error) {
		calls++
		return analyzer.Analyze("7 8 9", "7,>7")
	}
	m := newTestModel(t, reload)

	_, cmd := m.Update(runeKey('r'))
	if cmd == nil {
		t.Fatal("expected reload command")
	}
	if !strings.Contains(m.View(), "reloading...") {
		t.Errorf("expected reloading hint")
	}

	// A second press while reloading is ignored
	if _, again := m.Update(runeKey('r')); again != nil {
		t.Errorf("expected no second reload while one is pending")
	}

	m.Update(cmd())
	if calls != 1 {
		t.Errorf("reload called %d times", calls)
	}
	if len(m.charts.Magnitude.Points) != 2 || m.charts.Magnitude.Points[1].Label != ">7" {
		t.Errorf("charts not rebuilt from the new analysis: %+v", m.charts.Magnitude.Points)
	}
}

func TestModelReloadError(t *testing.T) {
	m := newTestModel(t, func() (*analyzer.Analysis, error) {
		return nil, errors.New("file vanished")
	})

	_, cmd := m.Update(runeKey('r'))
	m.Update(cmd())

	if !strings.Contains(m.View(), "reload failed: file vanished") {
		t.Errorf("expected reload error in view")
	}
	if m.analysis == nil {
		t.Errorf("previous analysis should be kept on reload failure")
	}
}

func TestThemes(t *testing.T) {
	if got := GetAvailableThemes(); strings.Join(got, ",") != "default,high-contrast,minimal" {
		t.Errorf("GetAvailableThemes() = %v", got)
	}
	if _, ok := ThemeByName("neon"); ok {
		t.Errorf("unknown theme should not be found")
	}
	if th, ok := ThemeByName("minimal"); !ok || th.Name != "minimal" {
		t.Errorf("ThemeByName(minimal) = %v, %v", th.Name, ok)
	}
	if NextTheme("unknown").Name != "default" {
		t.Errorf("NextTheme should fall back to default")
	}
}

func TestNoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	analysis, _ := analyzer.Analyze("1", "1")
	m := NewModel(analysis, Options{Color: true})
	if m.color {
		t.Errorf("NO_COLOR should disable color")
	}
}
