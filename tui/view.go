package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
)

func (m *ReportModel) View() string {
	switch m.loadState {
	case LoadStateLoading:
		return m.renderLoadingView()
	case LoadStateError:
		return m.renderErrorView()
	}

	if !m.ready {
		return ""
	}

	var builder strings.Builder
	builder.WriteString(m.renderTitle())
	builder.WriteString("\n")
	builder.WriteString(m.renderTabs())
	builder.WriteString("\n")
	builder.WriteString(m.table.View())
	builder.WriteString("\n")
	builder.WriteString(m.renderStatusBar())

	return builder.String()
}

func (m *ReportModel) renderTitle() string {
	title := TitleStyle.Render("harlens")
	file := SubtitleStyle.Render(" " + m.fileName)
	return title + file
}

func (m *ReportModel) renderTabs() string {
	tabs := make([]string, 0, len(m.tables))
	for i, t := range m.tables {
		label := fmt.Sprintf("%d %s", i+1, t.Name)
		if i == m.activeTab {
			tabs = append(tabs, ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, InactiveTabStyle.Render(label))
		}
	}
	return strings.Join(tabs, " ")
}

func (m *ReportModel) renderStatusBar() string {
	summary := m.result.Summary
	stats := SubtitleStyle.Render(fmt.Sprintf(
		"%d requests · %d slow · %d errors · analyzed in %s",
		summary.TotalRequests, summary.SlowRequests, summary.ErrorRequests,
		m.analysisTime.Round(time.Millisecond)))

	help := HelpStyle.Render(" | ") +
		HelpKeyStyle.Render("tab") + HelpStyle.Render(" switch · ") +
		HelpKeyStyle.Render("↑/↓") + HelpStyle.Render(" scroll · ") +
		HelpKeyStyle.Render("q") + HelpStyle.Render(" quit")

	return stats + help
}

func (m *ReportModel) renderLoadingView() string {
	spinnerStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center)

	title := TitleStyle.Render("Analyzing HAR File")
	fileInfo := SubtitleStyle.Render(fmt.Sprintf("\n%s", m.fileName))

	return spinnerStyle.Render(fmt.Sprintf("%s %s%s", m.loadingSpinner.View(), title, fileInfo))
}

func (m *ReportModel) renderErrorView() string {
	errorStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(RGBRed).
		Bold(true)

	return errorStyle.Render(fmt.Sprintf("❌ Error analyzing HAR file\n\n%v\n\nPress 'q' to quit", m.err))
}
