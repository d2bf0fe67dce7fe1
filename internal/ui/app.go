package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/freqsum/internal/analyzer"
	"github.com/yildizm/freqsum/internal/emoji"
	"github.com/yildizm/freqsum/internal/formatter"
)

// Options configures the results viewer
type Options struct {
	Theme      string
	Color      bool
	ChartWidth int
	Reload     ReloadFunc // optional; enables the r key
}

// Model shows the frequency table and one chart at a time. The chart data
// belongs to the model and is rebuilt whenever the analysis changes.
type Model struct {
	width  int
	height int

	analysis  *analyzer.Analysis
	charts    formatter.Charts
	chartKind formatter.ChartKind

	theme      Theme
	styles     *Styles
	color      bool
	chartWidth int

	reload    ReloadFunc
	reloading bool
	err       error

	ready    bool
	quitting bool
}

// NewModel creates a viewer for analysis
func NewModel(analysis *analyzer.Analysis, opts Options) *Model {
	theme, _ := ThemeByName(opts.Theme)
	color := opts.Color && !IsColorDisabled()

	m := &Model{
		chartKind:  formatter.ChartProportion,
		theme:      theme,
		styles:     NewStyles(theme, color),
		color:      color,
		chartWidth: opts.ChartWidth,
		reload:     opts.Reload,
	}
	m.setAnalysis(analysis)
	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case tea.KeyMsg:
		return m.handleKey(msg)

	case analysisCompleteMsg:
		m.reloading = false
		m.err = nil
		m.setAnalysis(msg.analysis)

	case analysisErrorMsg:
		m.reloading = false
		m.err = msg.err
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "tab":
		m.toggleChart()
	case "t":
		m.theme = NextTheme(m.theme.Name)
		m.styles = NewStyles(m.theme, m.color)
	case "r":
		if m.reload != nil && !m.reloading {
			m.reloading = true
			return m, CreateAnalysisCommand(m.reload)
		}
	}
	return m, nil
}

// setAnalysis replaces the analysis and rebuilds the chart data from it
func (m *Model) setAnalysis(analysis *analyzer.Analysis) {
	m.analysis = analysis
	m.charts = formatter.BuildCharts(analysis)
}

func (m *Model) toggleChart() {
	if m.chartKind == formatter.ChartProportion {
		m.chartKind = formatter.ChartMagnitude
	} else {
		m.chartKind = formatter.ChartProportion
	}
}

// ChartKind returns the chart currently shown
func (m *Model) ChartKind() formatter.ChartKind {
	return m.chartKind
}

// ThemeName returns the active theme name
func (m *Model) ThemeName() string {
	return m.theme.Name
}

// View renders the model
func (m *Model) View() string {
	if m.quitting {
		return emoji.GetEmoji("door") + " Bye!\n"
	}
	if !m.ready {
		return "Initializing..."
	}
	if m.analysis == nil {
		return "No analysis available\n\nPress 'q' to quit"
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render(emoji.GetEmoji("statistics")+" Frequency Analysis") + "\n")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("%d tokens, %d numeric, %d categories",
		m.analysis.TokenCount, m.analysis.NumericCount, len(m.analysis.Results))) + "\n\n")

	b.WriteString(formatter.RenderTable(m.analysis, m.color) + "\n\n")

	b.WriteString(m.renderChartTabs() + "\n")
	chart := m.charts.Get(m.chartKind)
	b.WriteString(m.styles.Box.Render(strings.TrimRight(formatter.RenderChart(chart, m.chartWidth, m.color), "\n")) + "\n")

	if m.analysis.HasWarnings() {
		b.WriteString("\n")
		for _, w := range m.analysis.Warnings {
			b.WriteString(m.styles.Warning.Render(emoji.GetEmoji("warning")+" "+w.Error()) + "\n")
		}
	}

	if m.err != nil {
		b.WriteString("\n" + m.styles.Error.Render(emoji.GetEmoji("error")+" reload failed: "+m.err.Error()) + "\n")
	}

	b.WriteString("\n" + m.styles.Muted.Render(m.helpLine()))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m *Model) renderChartTabs() string {
	tabs := []struct {
		kind  formatter.ChartKind
		label string
	}{
		{formatter.ChartProportion, emoji.GetEmoji("pie") + " Proportion"},
		{formatter.ChartMagnitude, emoji.GetEmoji("bar") + " Magnitude"},
	}

	parts := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		if tab.kind == m.chartKind {
			parts = append(parts, m.styles.Active.Render(tab.label))
		} else {
			parts = append(parts, m.styles.Muted.Render(tab.label))
		}
	}
	return strings.Join(parts, "   ")
}

func (m *Model) helpLine() string {
	help := "tab: switch chart • t: theme (" + m.theme.Name + ")"
	if m.reload != nil {
		if m.reloading {
			help += " • reloading..."
		} else {
			help += " • r: reload"
		}
	}
	return help + " • q: quit"
}

// Run shows the viewer until the user quits
func Run(analysis *analyzer.Analysis, opts Options) error {
	model := NewModel(analysis, opts)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
