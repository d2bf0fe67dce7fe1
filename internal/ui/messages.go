package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/yildizm/freqsum/internal/analyzer"
)

// ReloadFunc recomputes the analysis from its original inputs
type ReloadFunc func() (*analyzer.Analysis, error)

type analysisCompleteMsg struct {
	analysis *analyzer.Analysis
}

type analysisErrorMsg struct {
	err error
}

// CreateAnalysisCommand creates a tea command that reruns the analysis
func CreateAnalysisCommand(reload ReloadFunc) tea.Cmd {
	return func() tea.Msg {
		analysis, err := reload()
		if err != nil {
			return analysisErrorMsg{err: err}
		}
		return analysisCompleteMsg{analysis: analysis}
	}
}
